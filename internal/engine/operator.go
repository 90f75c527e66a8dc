package engine

import (
	"fmt"
	"math"
)

// Operator identifies one of the binary operations. The set is closed;
// Apply dispatches exhaustively over it.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

// String returns the display symbol used in expressions and the
// running-total line.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	case OpPower:
		return "^"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Apply evaluates a op b. Division by zero is the only failure mode;
// power follows math.Pow, so fractional and negative exponents produce
// NaN where mathematically undefined rather than an error.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("%s ÷ 0: %w", formatNumber(a), ErrDivisionByZero)
		}
		return a / b, nil
	case OpPower:
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf("unknown operator %d", int(op))
}
