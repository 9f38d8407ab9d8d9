package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

// reportRenderedMsg is sent when an async report render completes.
type reportRenderedMsg struct {
	participant string
	width       int
	content     string
}

// loadReportCmd returns a tea.Cmd that builds and renders the report for
// participant off the UI goroutine.
func loadReportCmd(a *stats.Analyzer, participant string, width int) tea.Cmd {
	return func() tea.Msg {
		content := render.Report(a.Report(participant), render.Options{
			Width: width,
			Color: true,
		})
		return reportRenderedMsg{
			participant: participant,
			width:       width,
			content:     content,
		}
	}
}

func reportCacheKey(participant string, width int) string {
	return fmt.Sprintf("%s:%d", participant, width)
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
