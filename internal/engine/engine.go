// Package engine implements the calculator's two-operand accumulator: a
// display value being edited, an optional pending (left operand, operator)
// pair, and a flag marking whether the next digit starts a fresh number.
//
// The engine consumes logical input commands (digits, decimal point, binary
// operators, unary functions, clear, backspace, equals) and reports results
// through two collaborator interfaces: completed calculations go to a
// Recorder, recoverable arithmetic errors go to a Notifier. Every operation
// is total; the engine never panics and always leaves the display parseable.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxDigits bounds the display length during digit and decimal
// entry. float64 carries at most 17 significant digits; anything past that
// is silently lossy, so further entry is ignored rather than accepted.
const DefaultMaxDigits = 24

// Recorder receives one completed calculation per equals-resolution or
// unary function application.
type Recorder interface {
	Record(expression, result string)
}

// Notifier receives recoverable arithmetic errors (division by zero,
// domain violations). Presentation decides how to surface them.
type Notifier interface {
	NotifyError(err error)
}

type pendingOp struct {
	left float64
	op   Operator
}

// Engine is the accumulator state machine. The zero value is not usable;
// construct with New.
type Engine struct {
	display  string
	pending  *pendingOp
	awaiting bool

	maxDigits     int
	recordDivZero bool

	recorder Recorder
	notifier Notifier
}

// Option is used to set options in New.
type Option func(*Engine)

// WithRecorder sets the completed-calculation sink.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithNotifier sets the error sink.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithMaxDigits overrides the display-length cap for digit entry.
func WithMaxDigits(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDigits = n
		}
	}
}

// WithDivisionByZeroRecords controls whether an equals that divides by
// zero still records the attempted expression (with the unchanged left
// operand as its result). Off by default.
func WithDivisionByZeroRecords(enabled bool) Option {
	return func(e *Engine) { e.recordDivZero = enabled }
}

// New creates an engine displaying "0" with no pending operation.
func New(opts ...Option) *Engine {
	e := &Engine{
		display:   "0",
		maxDigits: DefaultMaxDigits,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Display returns the current display text.
func (e *Engine) Display() string { return e.display }

// PendingExpression returns "{leftOperand} {operator}" while a binary
// operation is pending, or "" otherwise. Intended for a secondary
// running-total display line.
func (e *Engine) PendingExpression() string {
	if e.pending == nil {
		return ""
	}
	return formatNumber(e.pending.left) + " " + e.pending.op.String()
}

// EnterDigit appends a digit to the display. When a new operand is
// awaited the digit replaces the display instead; a display of exactly
// "0" is also replaced rather than extended. Non-digit runes are ignored.
func (e *Engine) EnterDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if e.awaiting {
		e.display = string(d)
		e.awaiting = false
		return
	}
	if e.display == "0" {
		e.display = string(d)
		return
	}
	if len(e.display) >= e.maxDigits {
		return
	}
	e.display += string(d)
}

// EnterDecimal appends the decimal point, or starts "0." when a new
// operand is awaited. A display already containing a point is unchanged.
func (e *Engine) EnterDecimal() {
	if e.awaiting {
		e.display = "0."
		e.awaiting = false
		return
	}
	if strings.ContainsRune(e.display, '.') {
		return
	}
	if len(e.display) >= e.maxDigits {
		return
	}
	e.display += "."
}

// ChooseOperator stores op against the current display value. An already
// pending operation is resolved first against the display, so chained
// operators evaluate strictly left to right with no precedence:
// 2 + 3 × 4 yields (2+3)×4 = 20.
func (e *Engine) ChooseOperator(op Operator) {
	input := e.inputValue()
	left := input
	if e.pending != nil {
		result, err := e.pending.op.Apply(e.pending.left, input)
		if err != nil {
			e.notify(err)
			result = e.pending.left
		}
		e.display = formatNumber(result)
		left = result
	}
	e.pending = &pendingOp{left: left, op: op}
	e.awaiting = true
}

// Equals resolves the pending operation against the current display
// value, records the calculation, and shows the result. Without a pending
// operation it is a no-op. A division by zero is reported, the display
// keeps the left operand, and the record is suppressed unless
// WithDivisionByZeroRecords was enabled; either way the pending operation
// is cleared so the machine lands in a valid resting state.
func (e *Engine) Equals() {
	if e.pending == nil {
		return
	}
	left, op := e.pending.left, e.pending.op
	input := e.inputValue()

	result, err := op.Apply(left, input)
	if err != nil {
		e.notify(err)
		result = left
	}
	text := formatNumber(result)
	if err == nil || e.recordDivZero {
		e.record(fmt.Sprintf("%s %s %s", formatNumber(left), op, formatNumber(input)), text)
	}
	e.display = text
	e.pending = nil
	e.awaiting = true
}

// ClearAll resets the display to "0" and drops any pending operation.
// History is not touched.
func (e *Engine) ClearAll() {
	e.display = "0"
	e.pending = nil
	e.awaiting = false
}

// Backspace removes the last display character, bottoming out at "0".
// The pending operation and awaiting flag are unaffected.
func (e *Engine) Backspace() {
	if len(e.display) > 1 {
		e.display = e.display[:len(e.display)-1]
		// A negated value can shrink to a bare sign; keep the display
		// parseable.
		if e.display == "-" {
			e.display = "0"
		}
		return
	}
	e.display = "0"
}

// ApplyUnary evaluates fn against the current display value, records the
// calculation, and shows the result. A domain violation is reported and
// leaves every field untouched. A pending binary operation stays pending;
// it will resolve against the unary result on the next operator or equals.
func (e *Engine) ApplyUnary(fn Unary) {
	input := e.inputValue()
	result, err := fn.Apply(input)
	if err != nil {
		e.notify(err)
		return
	}
	text := formatNumber(result)
	e.record(fmt.Sprintf("%s(%s)", fn, formatNumber(input)), text)
	e.display = text
	e.awaiting = true
}

func (e *Engine) inputValue() float64 {
	// The display invariant keeps this parseable; "0." and friends parse
	// to their obvious values.
	v, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		return 0
	}
	return v
}

func (e *Engine) record(expression, result string) {
	if e.recorder != nil {
		e.recorder.Record(expression, result)
	}
}

func (e *Engine) notify(err error) {
	if e.notifier != nil {
		e.notifier.NotifyError(err)
	}
}
