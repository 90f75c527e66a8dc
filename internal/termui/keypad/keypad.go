// Package keypad provides the calculator button grid for Bubble Tea
// applications. Every button is wrapped in a bubblezone mark so pointer
// events resolve to the same logical command IDs the keyboard produces.
package keypad

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
)

// Logical command identifiers shared by the pointer and keyboard input
// paths. Digit commands are the digit characters themselves ("0".."9").
const (
	CmdDecimal   = "decimal"
	CmdEquals    = "equals"
	CmdClear     = "clear"
	CmdBackspace = "backspace"

	CmdAdd      = "add"
	CmdSubtract = "subtract"
	CmdMultiply = "multiply"
	CmdDivide   = "divide"
	CmdPower    = "power"

	CmdSin        = "sin"
	CmdCos        = "cos"
	CmdTan        = "tan"
	CmdLog        = "log"
	CmdLn         = "ln"
	CmdSqrt       = "sqrt"
	CmdSquare     = "square"
	CmdReciprocal = "reciprocal"
	CmdPi         = "pi"
	CmdE          = "euler"
	CmdNegate     = "negate"
	CmdPercent    = "percent"
)

// Kind selects the style a button is rendered with.
type Kind int

const (
	KindDigit Kind = iota
	KindOperator
	KindFunction
	KindControl
	KindAccent
)

// Button couples a logical command ID with its label and style kind.
// Wide buttons span two grid cells.
type Button struct {
	ID    string
	Label string
	Kind  Kind
	Wide  bool
}

// Model defines the state of the keypad.
type Model struct {
	rows      [][]Button
	zones     *zone.Manager
	prefix    string
	cellWidth int

	DigitStyle    lipgloss.Style
	OperatorStyle lipgloss.Style
	FunctionStyle lipgloss.Style
	ControlStyle  lipgloss.Style
	AccentStyle   lipgloss.Style
}

// Option is used to set options in New.
type Option func(*Model)

// WithCellWidth sets the rendered width of one button cell.
func WithCellWidth(w int) Option {
	return func(m *Model) {
		if w > 2 {
			m.cellWidth = w
		}
	}
}

// WithPrefix namespaces the zone IDs; useful when several zone-marked
// widgets share a manager.
func WithPrefix(prefix string) Option {
	return func(m *Model) { m.prefix = prefix }
}

// New creates a keypad registering its buttons against zones.
func New(zones *zone.Manager, opts ...Option) Model {
	m := Model{
		rows:      layout(),
		zones:     zones,
		prefix:    "keypad.",
		cellWidth: 7,
		DigitStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")),
		OperatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")),
		FunctionStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")),
		ControlStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")),
		AccentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// layout is the fixed 4-column scientific keypad.
func layout() [][]Button {
	return [][]Button{
		{
			{ID: CmdSin, Label: "sin", Kind: KindFunction},
			{ID: CmdCos, Label: "cos", Kind: KindFunction},
			{ID: CmdTan, Label: "tan", Kind: KindFunction},
			{ID: CmdLog, Label: "log", Kind: KindFunction},
		},
		{
			{ID: CmdLn, Label: "ln", Kind: KindFunction},
			{ID: CmdSqrt, Label: "√", Kind: KindFunction},
			{ID: CmdSquare, Label: "x²", Kind: KindFunction},
			{ID: CmdReciprocal, Label: "1/x", Kind: KindFunction},
		},
		{
			{ID: CmdPi, Label: "π", Kind: KindFunction},
			{ID: CmdE, Label: "e", Kind: KindFunction},
			{ID: CmdPower, Label: "^", Kind: KindOperator},
			{ID: CmdPercent, Label: "%", Kind: KindFunction},
		},
		{
			{ID: CmdClear, Label: "C", Kind: KindControl},
			{ID: CmdBackspace, Label: "⌫", Kind: KindControl},
			{ID: CmdNegate, Label: "±", Kind: KindFunction},
			{ID: CmdDivide, Label: "÷", Kind: KindOperator},
		},
		{
			{ID: "7", Label: "7", Kind: KindDigit},
			{ID: "8", Label: "8", Kind: KindDigit},
			{ID: "9", Label: "9", Kind: KindDigit},
			{ID: CmdMultiply, Label: "×", Kind: KindOperator},
		},
		{
			{ID: "4", Label: "4", Kind: KindDigit},
			{ID: "5", Label: "5", Kind: KindDigit},
			{ID: "6", Label: "6", Kind: KindDigit},
			{ID: CmdSubtract, Label: "-", Kind: KindOperator},
		},
		{
			{ID: "1", Label: "1", Kind: KindDigit},
			{ID: "2", Label: "2", Kind: KindDigit},
			{ID: "3", Label: "3", Kind: KindDigit},
			{ID: CmdAdd, Label: "+", Kind: KindOperator},
		},
		{
			{ID: "0", Label: "0", Kind: KindDigit, Wide: true},
			{ID: CmdDecimal, Label: ".", Kind: KindDigit},
			{ID: CmdEquals, Label: "=", Kind: KindAccent},
		},
	}
}

// Width returns the rendered width of the keypad.
func (m Model) Width() int {
	// Four cells separated by single spaces.
	return 4*m.cellWidth + 3
}

// HitTest resolves a mouse event to the logical command of the button
// under it. Only left-button releases register, matching a click. The
// root view must have been scanned for zones to be resolvable.
func (m Model) HitTest(msg tea.MouseMsg) (string, bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return "", false
	}
	for _, row := range m.rows {
		for _, b := range row {
			z := m.zones.Get(m.prefix + b.ID)
			if z == nil || z.IsZero() {
				continue
			}
			if z.InBounds(msg) {
				return b.ID, true
			}
		}
	}
	return "", false
}

// View renders the keypad grid.
func (m Model) View() string {
	lines := make([]string, 0, len(m.rows))
	for _, row := range m.rows {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, m.zones.Mark(m.prefix+b.ID, m.renderButton(b)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderButton(b Button) string {
	width := m.cellWidth
	if b.Wide {
		width = 2*m.cellWidth + 1
	}
	// lipgloss.Width would also do, but the labels are single graphemes or
	// short ASCII; runewidth keeps padding exact for π, √, ⌫ and x².
	pad := width - runewidth.StringWidth(b.Label)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	cell := strings.Repeat(" ", left) + b.Label + strings.Repeat(" ", pad-left)
	return m.style(b.Kind).Render(cell)
}

func (m Model) style(k Kind) lipgloss.Style {
	switch k {
	case KindDigit:
		return m.DigitStyle
	case KindOperator:
		return m.OperatorStyle
	case KindFunction:
		return m.FunctionStyle
	case KindControl:
		return m.ControlStyle
	case KindAccent:
		return m.AccentStyle
	}
	return m.DigitStyle
}
