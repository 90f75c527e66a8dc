package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnaryApply(t *testing.T) {
	tests := []struct {
		name string
		fn   Unary
		x    float64
		want float64
	}{
		{name: "sin degrees", fn: UnarySin, x: 90, want: 1},
		{name: "cos degrees", fn: UnaryCos, x: 0, want: 1},
		{name: "tan degrees", fn: UnaryTan, x: 45, want: 1},
		{name: "log base 10", fn: UnaryLog, x: 1000, want: 3},
		{name: "natural log", fn: UnaryLn, x: math.E, want: 1},
		{name: "square root", fn: UnarySqrt, x: 144, want: 12},
		{name: "square", fn: UnarySquare, x: -9, want: 81},
		{name: "reciprocal", fn: UnaryReciprocal, x: 8, want: 0.125},
		{name: "pi ignores argument", fn: UnaryPi, x: 42, want: math.Pi},
		{name: "e ignores argument", fn: UnaryE, x: 42, want: math.E},
		{name: "negate", fn: UnaryNegate, x: 3.5, want: -3.5},
		{name: "negate negative", fn: UnaryNegate, x: -2, want: 2},
		{name: "percent", fn: UnaryPercent, x: 50, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn.Apply(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestUnaryApplyDomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		fn      Unary
		x       float64
		wantErr error
	}{
		{name: "log of zero", fn: UnaryLog, x: 0, wantErr: ErrDomain},
		{name: "log of negative", fn: UnaryLog, x: -1, wantErr: ErrDomain},
		{name: "ln of zero", fn: UnaryLn, x: 0, wantErr: ErrDomain},
		{name: "ln of negative", fn: UnaryLn, x: -0.5, wantErr: ErrDomain},
		{name: "sqrt of negative", fn: UnarySqrt, x: -4, wantErr: ErrDomain},
		{name: "reciprocal of zero", fn: UnaryReciprocal, x: 0, wantErr: ErrDivisionByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn.Apply(tt.x)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUnaryStringNames(t *testing.T) {
	want := map[Unary]string{
		UnarySin:        "sin",
		UnaryCos:        "cos",
		UnaryTan:        "tan",
		UnaryLog:        "log",
		UnaryLn:         "ln",
		UnarySqrt:       "√",
		UnarySquare:     "x²",
		UnaryReciprocal: "1/x",
		UnaryPi:         "π",
		UnaryE:          "e",
		UnaryNegate:     "±",
		UnaryPercent:    "%",
	}
	for fn, name := range want {
		assert.Equal(t, name, fn.String())
	}
}
