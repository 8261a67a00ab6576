package spectrum

import (
	"math"
	"math/cmplx"
)

// Phase returns arg(X[k]) in radians, in the range [-pi, pi].
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a continuous copy of phase. Each step between
// neighbours is reduced to the range [-pi, pi] and accumulated from phase[0].
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	for i := 1; i < len(phase); i++ {
		out[i] = out[i-1] + math.Remainder(phase[i]-phase[i-1], 2*math.Pi)
	}
	return out
}

// OneSidedPhase returns the unwrapped phase of bins 0..N/2 of s, aligned with
// the bins of [OneSided].
func OneSidedPhase(s []complex128) []float64 {
	if len(s) == 0 {
		return nil
	}
	return UnwrapPhase(Phase(s[:OneSidedLen(len(s))]))
}
