// Package frequency summarizes one-sided power spectra.
package frequency

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	errEmpty          = errors.New("frequency: empty spectrum")
	errLengthMismatch = errors.New("frequency: frequency and power lengths differ")
)

// Summary holds descriptors of a power spectrum over a frequency axis.
type Summary struct {
	Bins         int     `json:"bins"`         // number of power bins
	TotalPower   float64 `json:"total_power"`  // sum of power over all bins
	MeanPower    float64 `json:"mean_power"`   // TotalPower / Bins
	DominantBin  int     `json:"dominant_bin"` // arg-max of power, lowest bin on ties
	DominantFreq float64 `json:"dominant_hz"`  // frequency of DominantBin
	Centroid     float64 `json:"centroid_hz"`  // power-weighted mean frequency
	Spread       float64 `json:"spread_hz"`    // power-weighted standard deviation around Centroid
	Flatness     float64 `json:"flatness"`     // geometric / arithmetic mean of bins 1..N-1, 0..1
}

// Summarize computes a [Summary] of power sampled at freqs.
//
// freqs and power must have equal, non-zero length. A spectrum with zero total
// power reports Centroid and Spread as 0.
func Summarize(freqs, power []float64) (Summary, error) {
	if len(freqs) != len(power) {
		return Summary{}, fmt.Errorf("%w: %d != %d", errLengthMismatch, len(freqs), len(power))
	}
	if len(power) == 0 {
		return Summary{}, errEmpty
	}

	s := Summary{Bins: len(power)}
	s.TotalPower = floats.Sum(power)
	s.MeanPower = s.TotalPower / float64(len(power))
	s.DominantBin = floats.MaxIdx(power)
	s.DominantFreq = freqs[s.DominantBin]

	if s.TotalPower > 0 {
		s.Centroid = stat.Mean(freqs, power)
		s.Spread = spread(freqs, power, s.Centroid, s.TotalPower)
	}
	s.Flatness = Flatness(power)

	return s, nil
}

func spread(freqs, power []float64, centroid, total float64) float64 {
	d := make([]float64, len(freqs))
	copy(d, freqs)
	floats.AddConst(-centroid, d)
	floats.Mul(d, d)
	return math.Sqrt(floats.Dot(d, power) / total)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// The DC bin is excluded. Any zero bin yields 0, as does a spectrum with fewer
// than two bins.
func Flatness(power []float64) float64 {
	if len(power) < 2 {
		return 0
	}

	bins := power[1:]
	mean := stat.Mean(bins, nil)
	if mean == 0 {
		return 0
	}
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
	}

	return stat.GeometricMean(bins, nil) / mean
}
