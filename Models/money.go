package Models

import "math"

// All monetary columns hold int64 minor units (euro cents). Percentage
// arithmetic runs on integer basis points so repeated splits of the same
// treatment never drift.

// SplitAmount returns pct percent of base cents, rounded half up. pct may
// carry up to two decimal places; anything finer is rounded away when it is
// converted to basis points.
func SplitAmount(base int64, pct float64) int64 {
	bp := int64(math.Round(pct * 100))
	raw := base * bp
	if raw < 0 {
		return (raw - 5000) / 10000
	}
	return (raw + 5000) / 10000
}
