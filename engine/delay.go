package engine

import "math"

// decayFactor implements spec.md §4.4's piecewise decay curve.
func decayFactor(bytecodesUsed uint32, freeThreshold, limit int64) float64 {
	u := float64(bytecodesUsed)
	switch {
	case u <= float64(freeThreshold):
		return 1.0
	case u >= float64(limit):
		return 0.7
	default:
		return 1.0 - 0.3*math.Pow(u/float64(limit), 1.5)
	}
}

// decayDelay subtracts the decay owed for one turn's bytecode usage from
// cur, saturating at 0 (spec.md §4.4 "Delays saturate at 0").
func decayDelay(cur float64, bytecodesUsed uint32, freeThreshold, limit int64) float64 {
	next := cur - decayFactor(bytecodesUsed, freeThreshold, limit)
	if next < 0 {
		return 0
	}
	return next
}
