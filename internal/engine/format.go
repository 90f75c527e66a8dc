package engine

import (
	"math"
	"strconv"
)

// formatNumber renders v the way the display shows numbers: plain decimal
// notation for readable magnitudes, scientific notation once 'f' would
// degenerate into long runs of zeros. -1 precision keeps the shortest
// round-tripping form.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if abs := math.Abs(v); abs >= 1e15 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
