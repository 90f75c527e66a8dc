package app

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calcpad/calcpad/internal/config"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(cfg, logger)
	t.Cleanup(a.Close)
	return a
}

// press feeds key names through Update the way the terminal would.
func press(t *testing.T, a *App, keys ...string) *App {
	t.Helper()
	for _, key := range keys {
		var msg tea.KeyMsg
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "ctrl+l":
			msg = tea.KeyMsg{Type: tea.KeyCtrlL}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		m, _ := a.Update(msg)
		a = m.(*App)
	}
	return a
}

func TestKeyboardChainingNoPrecedence(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "2", "+", "3", "*", "4", "enter")

	assert.Equal(t, "20", a.engine.Display())
	all := a.log.All()
	require.Len(t, all, 1)
	assert.Equal(t, "5 × 4", all[0].Expression)
	assert.Equal(t, "20", all[0].Result)
}

func TestKeyboardDivisionByZero(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "5", "/", "0", "enter")

	assert.Equal(t, "5", a.engine.Display())
	assert.Contains(t, a.status.Message(), "division by zero")
	assert.Empty(t, a.log.All())
}

func TestDivisionByZeroRecordedWhenConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.LogDivisionByZero = true
	a := newTestApp(t, cfg)
	a = press(t, a, "5", "/", "0", "enter")

	all := a.log.All()
	require.Len(t, all, 1)
	assert.Equal(t, "5 ÷ 0", all[0].Expression)
	assert.Equal(t, "5", all[0].Result)
}

func TestKeyboardUnaryShortcuts(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "9", "0", "s")
	assert.Equal(t, "1", a.engine.Display())

	a = press(t, a, "p")
	assert.Equal(t, "3.141592653589793", a.engine.Display())

	all := a.log.All()
	require.Len(t, all, 2)
	assert.Equal(t, "π(1)", all[0].Expression)
	assert.Equal(t, "sin(90)", all[1].Expression)
}

func TestEscapeClearsAccumulatorNotHistory(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "6", "^", "2", "enter")
	require.Len(t, a.log.All(), 1)

	a = press(t, a, "esc")
	assert.Equal(t, "0", a.engine.Display())
	assert.Empty(t, a.engine.PendingExpression())
	assert.Len(t, a.log.All(), 1, "clear must not touch history")
}

func TestCtrlLClearsHistory(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "1", "+", "1", "enter")
	require.Len(t, a.log.All(), 1)

	a = press(t, a, "ctrl+l")
	assert.Empty(t, a.log.All())
	assert.Equal(t, "history cleared", a.status.Message())
}

func TestErrorClearsOnNextCommand(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "4")
	a.dispatch("negate")
	a.dispatch("sqrt")
	require.Contains(t, a.status.Message(), "domain")

	a = press(t, a, "1")
	assert.Empty(t, a.status.Message())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		a := newTestApp(t, nil)
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := a.Update(msg)
		require.NotNil(t, cmd, "key %q", key)
		assert.Equal(t, tea.Quit(), cmd(), "key %q", key)
	}
}

func TestMouseClickWithoutZonesIsIgnored(t *testing.T) {
	a := newTestApp(t, nil)
	m, cmd := a.Update(tea.MouseMsg{
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
		X:      3,
		Y:      3,
	})
	a = m.(*App)
	assert.Nil(t, cmd)
	assert.Equal(t, "0", a.engine.Display())
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "7", want: "7"},
		{key: ".", want: "decimal"},
		{key: "+", want: "add"},
		{key: "-", want: "subtract"},
		{key: "*", want: "multiply"},
		{key: "x", want: "multiply"},
		{key: "/", want: "divide"},
		{key: "^", want: "power"},
		{key: "enter", want: "equals"},
		{key: "=", want: "equals"},
		{key: "esc", want: "clear"},
		{key: "backspace", want: "backspace"},
		{key: "p", want: "pi"},
		{key: "s", want: "sin"},
		{key: "c", want: "cos"},
		{key: "t", want: "tan"},
		{key: "ctrl+l", want: "history-clear"},
	}
	for _, tt := range tests {
		got, ok := commandForKey(tt.key)
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.want, got, "key %q", tt.key)
	}

	_, ok := commandForKey("z")
	assert.False(t, ok)
}

func TestViewShowsDisplayAndPending(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "1", "2", ".", "5", "+")

	view := a.View()
	assert.Contains(t, view, "12.5")
	assert.Contains(t, view, "12.5 +")
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "sin")
}

func TestViewShowsHistoryEntries(t *testing.T) {
	a := newTestApp(t, nil)
	a = press(t, a, "6", "^", "2", "enter")

	view := a.View()
	assert.Contains(t, view, "6 ^ 2")
	assert.Contains(t, view, "36")
}
