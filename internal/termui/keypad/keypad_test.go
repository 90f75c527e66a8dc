package keypad

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Strip color so rendered output is assertable as plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func newTestKeypad(t *testing.T, opts ...Option) Model {
	t.Helper()
	zones := zone.New()
	t.Cleanup(zones.Close)
	return New(zones, opts...)
}

func TestViewContainsEveryButton(t *testing.T) {
	m := newTestKeypad(t)
	view := m.View()
	for _, label := range []string{
		"sin", "cos", "tan", "log", "ln", "√", "x²", "1/x",
		"π", "e", "^", "%", "C", "⌫", "±", "÷",
		"×", "-", "+", "=", ".",
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	} {
		assert.Contains(t, view, label)
	}
}

func TestViewRowCount(t *testing.T) {
	m := newTestKeypad(t)
	assert.Len(t, strings.Split(m.View(), "\n"), 8)
}

func TestLayoutIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, row := range layout() {
		for _, b := range row {
			require.False(t, seen[b.ID], "duplicate button id %q", b.ID)
			seen[b.ID] = true
		}
	}
	// 10 digits + decimal + equals + clear + backspace + 5 operators +
	// 12 unary functions.
	assert.Len(t, seen, 31)
}

func TestHitTestIgnoresNonClicks(t *testing.T) {
	m := newTestKeypad(t)

	_, ok := m.HitTest(tea.MouseMsg{
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	})
	assert.False(t, ok, "press alone is not a click")

	_, ok = m.HitTest(tea.MouseMsg{
		Button: tea.MouseButtonRight,
		Action: tea.MouseActionRelease,
	})
	assert.False(t, ok, "right button is not a click")
}

func TestHitTestMissesWithoutScannedZones(t *testing.T) {
	m := newTestKeypad(t)
	_, ok := m.HitTest(tea.MouseMsg{
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
		X:      1,
		Y:      1,
	})
	assert.False(t, ok)
}

func TestWidth(t *testing.T) {
	m := newTestKeypad(t, WithCellWidth(5))
	assert.Equal(t, 23, m.Width())

	rows := strings.Split(m.View(), "\n")
	for _, row := range rows {
		assert.Equal(t, m.Width(), lipgloss.Width(row))
	}
}
