package engine

import "errors"

// Sentinel errors for the two recoverable failure modes. Callers match
// with errors.Is; the wrapped messages carry the offending operands.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("argument outside domain")
)
