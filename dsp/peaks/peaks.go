package peaks

import (
	"fmt"
	"math"
	"sort"
)

// Peak is a local maximum of a power spectrum.
type Peak struct {
	Bin       int     `json:"bin"`          // index into the power spectrum
	Frequency float64 `json:"frequency_hz"` // frequency of Bin taken from the axis
	Power     float64 `json:"power"`        // power at Bin
}

// Gradient returns the first difference d[i] = p[i+1] - p[i].
// The result has len(p)-1 entries, or nil when len(p) < 2.
func Gradient(p []float64) []float64 {
	if len(p) < 2 {
		return nil
	}
	d := make([]float64, len(p)-1)
	for i := range d {
		d[i] = p[i+1] - p[i]
	}
	return d
}

// Find returns the peaks of power in ascending bin order.
//
// Bin i (1 <= i <= len-2) is a candidate when the first difference changes
// sign from positive to negative across it, i.e. grad[i-1] > 0 and
// grad[i] < 0. A candidate is kept when its power strictly exceeds the
// threshold. The first and last bins are never candidates. An empty result
// is not an error.
func Find(freqs, power []float64, opts ...Option) ([]Peak, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(freqs) != len(power) {
		return nil, fmt.Errorf("%w: %d frequencies, %d power bins", ErrLengthMismatch, len(freqs), len(power))
	}
	if math.IsNaN(cfg.threshold) {
		return nil, ErrInvalidThreshold
	}

	grad := Gradient(power)
	var found []Peak
	for i := 1; i < len(power)-1; i++ {
		if grad[i-1] > 0 && grad[i] < 0 && power[i] > cfg.threshold {
			found = append(found, Peak{Bin: i, Frequency: freqs[i], Power: power[i]})
		}
	}

	if cfg.maxPeaks > 0 && len(found) > cfg.maxPeaks {
		found = strongest(found, cfg.maxPeaks)
	}

	return found, nil
}

// strongest keeps the n highest-power peaks and restores bin order.
func strongest(in []Peak, n int) []Peak {
	out := make([]Peak, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Power > out[j].Power
	})
	out = out[:n]
	sort.Slice(out, func(i, j int) bool {
		return out[i].Bin < out[j].Bin
	})
	return out
}

// Frequencies returns the frequencies of the peaks found by [Find].
func Frequencies(freqs, power []float64, opts ...Option) ([]float64, error) {
	found, err := Find(freqs, power, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(found))
	for i, p := range found {
		out[i] = p.Frequency
	}
	return out, nil
}

// Dominant returns the bin with the largest power. Ties resolve to the lowest
// bin. Unlike [Find], boundary bins (including DC) are eligible.
func Dominant(freqs, power []float64) (Peak, error) {
	if len(freqs) != len(power) {
		return Peak{}, fmt.Errorf("%w: %d frequencies, %d power bins", ErrLengthMismatch, len(freqs), len(power))
	}
	if len(power) == 0 {
		return Peak{}, ErrEmpty
	}

	best := 0
	for i, v := range power {
		if v > power[best] {
			best = i
		}
	}
	return Peak{Bin: best, Frequency: freqs[best], Power: power[best]}, nil
}
