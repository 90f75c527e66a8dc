// Package app wires the calculator engine, history log, and widgets into
// the root Bubble Tea model. It is the input adapter: keyboard keys and
// pointer clicks both resolve to the keypad's logical command IDs and are
// dispatched through one code path, so the engine never sees anything but
// a serialized command stream.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/calcpad/calcpad/internal/config"
	"github.com/calcpad/calcpad/internal/engine"
	"github.com/calcpad/calcpad/internal/history"
	"github.com/calcpad/calcpad/internal/termui/historypanel"
	"github.com/calcpad/calcpad/internal/termui/keypad"
	"github.com/calcpad/calcpad/internal/termui/statusbar"
)

const (
	historyPanelWidth  = 32
	historyPanelHeight = 18
)

// noticeSink implements engine.Notifier. The engine reports errors
// synchronously during dispatch; the app drains the sink into the status
// bar once the command completes.
type noticeSink struct {
	errs []error
}

func (s *noticeSink) NotifyError(err error) {
	s.errs = append(s.errs, err)
}

func (s *noticeSink) drain() error {
	if len(s.errs) == 0 {
		return nil
	}
	err := s.errs[len(s.errs)-1]
	s.errs = s.errs[:0]
	return err
}

// App is the root model.
type App struct {
	engine  *engine.Engine
	log     *history.Log
	notices *noticeSink
	zones   *zone.Manager
	logger  *slog.Logger

	keypad  keypad.Model
	history historypanel.Model
	status  statusbar.Model

	pendingStyle lipgloss.Style
	displayStyle lipgloss.Style

	width  int
	height int
}

// New builds the application from its configuration.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	zones := zone.New()
	log := history.New(cfg.HistoryCapacity)
	notices := &noticeSink{}
	eng := engine.New(
		engine.WithRecorder(log),
		engine.WithNotifier(notices),
		engine.WithMaxDigits(cfg.MaxDigits),
		engine.WithDivisionByZeroRecords(cfg.LogDivisionByZero),
	)

	pad := keypad.New(zones)
	a := &App{
		engine:  eng,
		log:     log,
		notices: notices,
		zones:   zones,
		logger:  logger,
		keypad:  pad,
		history: historypanel.New(zones, historyPanelWidth, historyPanelHeight),
		status:  statusbar.New(pad.Width()),
		pendingStyle: lipgloss.NewStyle().
			Width(pad.Width()).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("244")),
		displayStyle: lipgloss.NewStyle().
			Width(pad.Width()).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.history.SetSize(historyPanelWidth, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case tea.MouseMsg:
		return a.updateMouse(msg)
	}
	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		a.history, cmd = a.history.Update(msg)
		return a, cmd
	}
	if id, ok := commandForKey(key); ok {
		a.dispatch(id)
	}
	return a, nil
}

func (a *App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		a.history, cmd = a.history.Update(msg)
		return a, cmd
	}
	if id, ok := a.keypad.HitTest(msg); ok {
		a.dispatch(id)
		return a, nil
	}
	if a.history.ClearClicked(msg) {
		a.dispatch(cmdHistoryClear)
	}
	return a, nil
}

// cmdHistoryClear is app-level: it belongs to the history panel, not the
// keypad grid.
const cmdHistoryClear = "history-clear"

// commandForKey translates a physical key into a logical command ID.
func commandForKey(key string) (string, bool) {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return key, true
	case ".":
		return keypad.CmdDecimal, true
	case "+":
		return keypad.CmdAdd, true
	case "-":
		return keypad.CmdSubtract, true
	case "*", "x":
		return keypad.CmdMultiply, true
	case "/":
		return keypad.CmdDivide, true
	case "^":
		return keypad.CmdPower, true
	case "enter", "=":
		return keypad.CmdEquals, true
	case "esc":
		return keypad.CmdClear, true
	case "backspace":
		return keypad.CmdBackspace, true
	case "p":
		return keypad.CmdPi, true
	case "s":
		return keypad.CmdSin, true
	case "c":
		return keypad.CmdCos, true
	case "t":
		return keypad.CmdTan, true
	case "ctrl+l":
		return cmdHistoryClear, true
	}
	return "", false
}

// dispatch runs one logical command to completion: engine mutation, then
// status bar and history panel refresh.
func (a *App) dispatch(id string) {
	a.status.Clear()

	switch id {
	case keypad.CmdDecimal:
		a.engine.EnterDecimal()
	case keypad.CmdEquals:
		a.engine.Equals()
	case keypad.CmdClear:
		a.engine.ClearAll()
	case keypad.CmdBackspace:
		a.engine.Backspace()
	case keypad.CmdAdd:
		a.engine.ChooseOperator(engine.OpAdd)
	case keypad.CmdSubtract:
		a.engine.ChooseOperator(engine.OpSubtract)
	case keypad.CmdMultiply:
		a.engine.ChooseOperator(engine.OpMultiply)
	case keypad.CmdDivide:
		a.engine.ChooseOperator(engine.OpDivide)
	case keypad.CmdPower:
		a.engine.ChooseOperator(engine.OpPower)
	case keypad.CmdSin:
		a.engine.ApplyUnary(engine.UnarySin)
	case keypad.CmdCos:
		a.engine.ApplyUnary(engine.UnaryCos)
	case keypad.CmdTan:
		a.engine.ApplyUnary(engine.UnaryTan)
	case keypad.CmdLog:
		a.engine.ApplyUnary(engine.UnaryLog)
	case keypad.CmdLn:
		a.engine.ApplyUnary(engine.UnaryLn)
	case keypad.CmdSqrt:
		a.engine.ApplyUnary(engine.UnarySqrt)
	case keypad.CmdSquare:
		a.engine.ApplyUnary(engine.UnarySquare)
	case keypad.CmdReciprocal:
		a.engine.ApplyUnary(engine.UnaryReciprocal)
	case keypad.CmdPi:
		a.engine.ApplyUnary(engine.UnaryPi)
	case keypad.CmdE:
		a.engine.ApplyUnary(engine.UnaryE)
	case keypad.CmdNegate:
		a.engine.ApplyUnary(engine.UnaryNegate)
	case keypad.CmdPercent:
		a.engine.ApplyUnary(engine.UnaryPercent)
	case cmdHistoryClear:
		a.log.Clear()
		a.status.SetInfo("history cleared")
	default:
		if len(id) == 1 && id[0] >= '0' && id[0] <= '9' {
			a.engine.EnterDigit(rune(id[0]))
		}
	}

	if err := a.notices.drain(); err != nil {
		a.status.SetError(err.Error())
	}
	a.history.SetRecords(a.log.All())
	a.logger.Debug("command",
		"id", id,
		"display", a.engine.Display(),
		"pending", a.engine.PendingExpression(),
	)
}

// View implements tea.Model. The whole frame is scanned so the keypad and
// history panel zones resolve against it.
func (a *App) View() string {
	pending := a.engine.PendingExpression()
	if pending == "" {
		pending = " "
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		a.pendingStyle.Render(pending),
		a.displayStyle.Render(a.engine.Display()),
		a.status.View(),
		a.keypad.View(),
	)
	frame := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", a.history.View())
	return a.zones.Scan(frame)
}

// Close releases the zone manager's resources.
func (a *App) Close() {
	a.zones.Close()
}
