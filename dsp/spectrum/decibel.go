package spectrum

import "math"

// PowerToDB converts linear power to decibels (10*log10). Zero maps to -Inf
// and negative values to NaN.
func PowerToDB(power float64) float64 {
	switch {
	case power < 0:
		return math.NaN()
	case power == 0:
		return math.Inf(-1)
	default:
		return 10 * math.Log10(power)
	}
}

// PowerDB converts a power spectrum to decibels relative to ref, clamping
// every bin at floor dB. A ref <= 0 uses the spectrum maximum, so the
// strongest bin reads 0 dB. An all-zero spectrum yields floor everywhere.
func PowerDB(power []float64, ref, floor float64) []float64 {
	out := make([]float64, len(power))
	if ref <= 0 {
		for _, v := range power {
			ref = math.Max(ref, v)
		}
	}
	if ref <= 0 {
		for i := range out {
			out[i] = floor
		}
		return out
	}

	for i, v := range power {
		out[i] = math.Max(PowerToDB(v/ref), floor)
	}
	return out
}
