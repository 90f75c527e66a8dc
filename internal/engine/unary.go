package engine

import (
	"fmt"
	"math"
)

// Unary identifies one of the single-argument functions. Trigonometric
// functions take their argument in degrees; π and e ignore the argument
// entirely and produce their constant.
type Unary int

const (
	UnarySin Unary = iota
	UnaryCos
	UnaryTan
	UnaryLog // base 10
	UnaryLn
	UnarySqrt
	UnarySquare
	UnaryReciprocal
	UnaryPi
	UnaryE
	UnaryNegate
	UnaryPercent
)

// String returns the name used in recorded expressions, e.g. "√(16)".
func (fn Unary) String() string {
	switch fn {
	case UnarySin:
		return "sin"
	case UnaryCos:
		return "cos"
	case UnaryTan:
		return "tan"
	case UnaryLog:
		return "log"
	case UnaryLn:
		return "ln"
	case UnarySqrt:
		return "√"
	case UnarySquare:
		return "x²"
	case UnaryReciprocal:
		return "1/x"
	case UnaryPi:
		return "π"
	case UnaryE:
		return "e"
	case UnaryNegate:
		return "±"
	case UnaryPercent:
		return "%"
	}
	return fmt.Sprintf("Unary(%d)", int(fn))
}

// Apply evaluates fn(x). log, ln, √ and 1/x reject arguments outside
// their domain; everything else is total.
func (fn Unary) Apply(x float64) (float64, error) {
	switch fn {
	case UnarySin:
		return math.Sin(x * math.Pi / 180), nil
	case UnaryCos:
		return math.Cos(x * math.Pi / 180), nil
	case UnaryTan:
		return math.Tan(x * math.Pi / 180), nil
	case UnaryLog:
		if x <= 0 {
			return 0, fmt.Errorf("log(%s): %w", formatNumber(x), ErrDomain)
		}
		return math.Log10(x), nil
	case UnaryLn:
		if x <= 0 {
			return 0, fmt.Errorf("ln(%s): %w", formatNumber(x), ErrDomain)
		}
		return math.Log(x), nil
	case UnarySqrt:
		if x < 0 {
			return 0, fmt.Errorf("√(%s): %w", formatNumber(x), ErrDomain)
		}
		return math.Sqrt(x), nil
	case UnarySquare:
		return x * x, nil
	case UnaryReciprocal:
		if x == 0 {
			return 0, fmt.Errorf("1/x: %w", ErrDivisionByZero)
		}
		return 1 / x, nil
	case UnaryPi:
		return math.Pi, nil
	case UnaryE:
		return math.E, nil
	case UnaryNegate:
		return -x, nil
	case UnaryPercent:
		return x / 100, nil
	}
	return 0, fmt.Errorf("unknown function %d", int(fn))
}
