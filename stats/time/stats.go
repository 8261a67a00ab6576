// Package time summarizes time-domain signals ahead of a transform.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length int     `json:"length"`  // sample count
	DC     float64 `json:"dc"`      // mean
	RMS    float64 `json:"rms"`     // root mean square
	Min    float64 `json:"min"`     // smallest sample
	Max    float64 `json:"max"`     // largest sample
	Peak   float64 `json:"peak"`    // max(|Max|, |Min|)
	StdDev float64 `json:"std_dev"` // population standard deviation
	Energy float64 `json:"energy"`  // sum of squares
}

// Calculate computes the statistics of signal. An empty signal yields the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	s := Stats{Length: n}
	s.DC = stat.Mean(signal, nil)
	s.Energy = floats.Dot(signal, signal)
	s.RMS = math.Sqrt(s.Energy / float64(n))
	s.Min = floats.Min(signal)
	s.Max = floats.Max(signal)
	s.Peak = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	s.StdDev = math.Sqrt(math.Max(s.Energy/float64(n)-s.DC*s.DC, 0))

	return s
}

// RemoveDC returns a copy of signal with its mean subtracted.
func RemoveDC(signal []float64) []float64 {
	if len(signal) == 0 {
		return nil
	}
	out := make([]float64, len(signal))
	copy(out, signal)
	floats.AddConst(-stat.Mean(signal, nil), out)
	return out
}
