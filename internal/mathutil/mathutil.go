package mathutil

import (
	"math"
)

// Clamp limits a to [-1+eps, 1-eps].
// NaN is returned as is.
func Clamp(a, eps float64) float64 {
	if a > 1-eps {
		return 1 - eps
	}
	if a < -1+eps {
		return -1 + eps
	}
	return a
}

// ToRapidity maps an alignment into the unbounded rapidity space.
// The alignment is clamped first, so the result is finite for any finite a
// as long as 0 < eps < 1.
func ToRapidity(a, eps float64) float64 {
	return math.Atanh(Clamp(a, eps))
}

// FromRapidity maps a rapidity back to an alignment in [-1, 1].
func FromRapidity(u float64) float64 {
	return math.Tanh(u)
}

// Weight returns |m|^gamma.
// Weight(0, 0) is 1, as math.Pow defines it.
// Negative and not-a-number exponents are treated as 0.
func Weight(m, gamma float64) float64 {
	switch {
	case gamma == 1:
		return math.Abs(m)
	case !(gamma > 0):
		return 1
	}
	return math.Pow(math.Abs(m), gamma)
}

// WeightedMean returns (w1*u1 + w2*u2) / (w1 + w2), or (0, false)
// if the total weight does not exceed guard.
// Weights are scaled by the larger one, so the sums can not overflow.
// If a weight is infinite, infinite weights count as 1 and finite ones as 0.
func WeightedMean(u1, w1, u2, w2, guard float64) (float64, bool) {
	if w1+w2 <= guard {
		return 0, false
	}
	wmax := math.Max(w1, w2)
	if math.IsInf(wmax, 1) {
		w1, w2 = unitIfInf(w1), unitIfInf(w2)
	} else {
		w1, w2 = w1/wmax, w2/wmax
	}
	return (w1*u1 + w2*u2) / (w1 + w2), true
}

func unitIfInf(w float64) float64 {
	if math.IsInf(w, 1) {
		return 1
	}
	return 0
}
