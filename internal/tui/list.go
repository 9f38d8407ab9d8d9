package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
)

// linesPerItem is the number of terminal lines each participant occupies.
const linesPerItem = 1

// renderList renders the left panel: the filtered participants with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No participants")
	}

	var lines []string
	for i, name := range m.visible {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatParticipantLine(name, m.counts[name], width, i == m.cursor))
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatParticipantLine formats one row as "[>] name  count", truncating the
// name so the message count stays visible.
func formatParticipantLine(name string, count, width int, selected bool) string {
	n := humanize.Comma(int64(count))

	nameMax := width - 2 - 1 - len(n)
	if nameMax < 0 {
		nameMax = 0
	}
	label := name
	if runewidth.StringWidth(label) > nameMax {
		label = runewidth.Truncate(label, nameMax, "…")
	}
	pad := nameMax - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}

	styled := label
	if name == parse.Overall {
		styled = styleOverall.Render(label)
	}

	line := styled + strings.Repeat(" ", pad) + " " + styleCount.Render(n)
	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// filterParticipants keeps the names containing query, ignoring case.
// Overall is always kept.
func filterParticipants(all []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	var out []string
	for _, name := range all {
		if name == parse.Overall || strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
