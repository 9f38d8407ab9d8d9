package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

const debounceDelay = 150 * time.Millisecond

type debounceTickMsg struct {
	query string
}

type model struct {
	analyzer    *stats.Analyzer
	all         []string // Overall first, then senders
	counts      map[string]int
	visible     []string
	query       string
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewKey  string // "participant:width" to avoid duplicate renders
	width       int
	height      int
	ready       bool
	quitting    bool
	chosen      string
}

func initialModel(a *stats.Analyzer, participant string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter participants..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 128

	counts := map[string]int{parse.Overall: len(a.Messages())}
	for _, s := range a.MostActiveParticipants().Shares {
		counts[s.Name] = s.Count
	}

	all := a.Participants()
	m := model{
		analyzer:    a,
		all:         all,
		counts:      counts,
		visible:     all,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
	for i, name := range all {
		if name == participant {
			m.cursor = i
		}
	}
	return m
}

// Run starts the participant selector and blocks until it exits. Choosing a
// participant with enter copies their plain-text report to the clipboard; if
// the clipboard is unavailable the report is written to out instead.
func Run(a *stats.Analyzer, participant string, out io.Writer) error {
	m := initialModel(a, participant)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.chosen == "" {
		return nil
	}
	return copyReport(a, fm.chosen, out)
}

func copyReport(a *stats.Analyzer, participant string, out io.Writer) error {
	text := render.Report(a.Report(participant), render.Options{})
	if err := clipboard.WriteAll(text); err != nil {
		_, werr := io.WriteString(out, text)
		return werr
	}
	_, err := fmt.Fprintf(out, "Copied report for %s to clipboard\n", participant)
	return err
}

// Init starts the cursor blink. The first report loads once the window size
// is known.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewKey = ""
		m.adjustListScroll(m.panelHeight())
		cmds = append(cmds, m.loadCurrentReport())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if name, ok := m.selected(); ok {
				m.chosen = name
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentReport())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentReport())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// remaining keys edit the filter
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if q := m.filterInput.Value(); q != m.query {
			m.query = q
			cmds = append(cmds, scheduleFilter(q))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.visible) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			maxOffset := len(m.visible) - m.panelHeight()/linesPerItem
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentReport())
			}
			return m, tea.Batch(cmds...)

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			if vpCmd != nil {
				cmds = append(cmds, vpCmd)
			}
			return m, tea.Batch(cmds...)
		}

		return m, nil

	case debounceTickMsg:
		// only refilter if the query hasn't changed since the tick was scheduled
		if msg.query != m.query {
			return m, nil
		}
		m.applyFilter()
		cmds = append(cmds, m.loadCurrentReport())
		return m, tea.Batch(cmds...)

	case reportRenderedMsg:
		name, ok := m.selected()
		if !ok || name != msg.participant || msg.width != m.previewWidth() {
			return m, nil // stale render
		}
		key := reportCacheKey(msg.participant, msg.width)
		if key == m.previewKey {
			return m, nil
		}
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		m.previewKey = key
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return "", false
	}
	return m.visible[m.cursor], true
}

// applyFilter narrows the list to the current query and keeps the cursor on
// the same participant when it is still listed.
func (m *model) applyFilter() {
	prev, _ := m.selected()
	m.visible = filterParticipants(m.all, m.query)
	m.cursor = 0
	m.listOffset = 0
	for i, name := range m.visible {
		if name == prev {
			m.cursor = i
			break
		}
	}
	m.adjustListScroll(m.panelHeight())
	if len(m.visible) == 0 {
		m.preview.SetContent("")
		m.previewKey = ""
	}
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	// 30% for the list, minus border padding
	w := m.width*30/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 70
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY/linesPerItem
	}

	if x > listBoxRight+1 {
		return regionPreview, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	senders := 0
	for _, name := range m.visible {
		if name != parse.Overall {
			senders++
		}
	}
	parts := []string{
		fmt.Sprintf("%d participants", senders),
		"click/up/dn select",
		"scroll/C-u/C-d report",
		"Enter copy report",
		"Esc quit",
	}
	if w := m.analyzer.Warnings(); len(w) > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", len(w)))
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func scheduleFilter(query string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{query: query}
	})
}

func (m model) loadCurrentReport() tea.Cmd {
	name, ok := m.selected()
	if !ok {
		return nil
	}
	if reportCacheKey(name, m.previewWidth()) == m.previewKey {
		return nil // already showing this report
	}
	return loadReportCmd(m.analyzer, name, m.previewWidth())
}
