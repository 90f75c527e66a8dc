// Package historypanel renders the calculation history beside the keypad.
// It reads records through snapshots only; the single mutation it can
// trigger is an explicit clear via its zone-marked button.
package historypanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/calcpad/calcpad/internal/history"
)

const clearZoneID = "historypanel.clear"

// Model defines the state of the history panel.
type Model struct {
	viewport viewport.Model
	zones    *zone.Manager
	width    int

	TitleStyle  lipgloss.Style
	EntryStyle  lipgloss.Style
	ResultStyle lipgloss.Style
	StampStyle  lipgloss.Style
	ClearStyle  lipgloss.Style
	EmptyStyle  lipgloss.Style
}

// New creates a history panel of the given size. Height covers the whole
// panel including its one-line header.
func New(zones *zone.Manager, width, height int) Model {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	vp := viewport.New(width, height-1)
	m := Model{
		viewport: vp,
		zones:    zones,
		width:    width,
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		EntryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		ResultStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")),
		StampStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		ClearStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		EmptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true),
	}
	m.SetRecords(nil)
	return m
}

// SetSize resizes the panel.
func (m *Model) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - 1
}

// SetRecords re-renders the panel from a newest-first snapshot and
// scrolls back to the top, where the newest entry sits.
func (m *Model) SetRecords(records []history.Record) {
	if len(records) == 0 {
		m.viewport.SetContent(m.EmptyStyle.Render("no calculations yet"))
		m.viewport.GotoTop()
		return
	}
	var b strings.Builder
	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.EntryStyle.Render(rec.Expression))
		b.WriteString(m.EntryStyle.Render(" = "))
		b.WriteString(m.ResultStyle.Render(rec.Result))
		b.WriteByte('\n')
		b.WriteString(m.StampStyle.Render(rec.At.Format("15:04:05")))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// Update forwards scroll events (keys and mouse wheel) to the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ClearClicked reports whether a mouse event is a click on the clear
// button.
func (m Model) ClearClicked(msg tea.MouseMsg) bool {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return false
	}
	z := m.zones.Get(clearZoneID)
	return z != nil && !z.IsZero() && z.InBounds(msg)
}

// View renders the header line and the scrollable record list.
func (m Model) View() string {
	title := m.TitleStyle.Render("History")
	clearBtn := m.zones.Mark(clearZoneID, m.ClearStyle.Render("[clear]"))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clearBtn)
	if gap < 1 {
		gap = 1
	}
	header := fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", gap), clearBtn)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}
