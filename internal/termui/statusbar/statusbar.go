// Package statusbar provides the one-line message surface under the
// calculator display. It is the sink for the engine's error notifications.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"
)

// Model defines the state of the status bar.
type Model struct {
	message string
	isError bool
	width   int

	ErrorStyle lipgloss.Style
	InfoStyle  lipgloss.Style
}

// New creates an empty status bar of the given width.
func New(width int) Model {
	return Model{
		width: width,
		ErrorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("124")),
		InfoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

// SetWidth resizes the bar.
func (m *Model) SetWidth(width int) { m.width = width }

// SetError shows msg in the error style until cleared.
func (m *Model) SetError(msg string) {
	m.message = msg
	m.isError = true
}

// SetInfo shows msg in the muted info style until cleared.
func (m *Model) SetInfo(msg string) {
	m.message = msg
	m.isError = false
}

// Clear removes the current message.
func (m *Model) Clear() {
	m.message = ""
	m.isError = false
}

// Message returns the current message text, "" when clear.
func (m Model) Message() string { return m.message }

// View renders one line, padded to the bar's width so stale content
// underneath is always overwritten.
func (m Model) View() string {
	style := m.InfoStyle
	if m.isError {
		style = m.ErrorStyle
	}
	return style.Width(m.width).MaxHeight(1).Render(m.message)
}
