package chain

import "math"

// metropolis decides acceptance of a proposal with Hamiltonians h0
// (current) and h1 (proposed), given one uniform variate u in [0, 1):
// accept iff u < min(1, exp(h0 − h1)).
//
// h1 = +Inf (divergent trajectory) gives probability 0. A NaN difference
// (both Hamiltonians infinite) also rejects; the chain then re-emits the
// current position and continues.
func metropolis(h0, h1, u float64) bool {
	diff := h0 - h1
	if math.IsNaN(diff) {
		return false
	}
	return u < math.Min(1, math.Exp(diff))
}
