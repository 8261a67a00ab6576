package peaks

import (
	"fmt"
	"math"
)

func validateAxis(sampleRate float64, n int) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

// Resolution returns the bin spacing sampleRate/n in Hz.
func Resolution(sampleRate float64, n int) (float64, error) {
	if err := validateAxis(sampleRate, n); err != nil {
		return 0, err
	}
	return sampleRate / float64(n), nil
}

// FrequencyAxis returns the frequency of every bin of an n-point transform.
//
// Bins below the split point ceil(n/2) map to i*fs/n, the remaining bins wrap
// to the negative frequencies (i-n)*fs/n. For even n the split is n/2, so the
// Nyquist bin is reported as -fs/2. For odd n the positive and negative halves
// differ in size by one, with the extra bin on the positive side:
//
//	FrequencyAxis(12, 12) = [0 1 2 3 4 5 -6 -5 -4 -3 -2 -1]
//	FrequencyAxis(5, 5)   = [0 1 2 -2 -1]
func FrequencyAxis(sampleRate float64, n int) ([]float64, error) {
	res, err := Resolution(sampleRate, n)
	if err != nil {
		return nil, err
	}

	split := (n + 1) / 2
	axis := make([]float64, n)
	for i := range axis {
		if i < split {
			axis[i] = float64(i) * res
		} else {
			axis[i] = float64(i-n) * res
		}
	}
	return axis, nil
}

// OneSidedAxis returns k*fs/n for k = 0..n/2, matching the bins of a
// one-sided spectrum of an n-point transform.
func OneSidedAxis(sampleRate float64, n int) ([]float64, error) {
	res, err := Resolution(sampleRate, n)
	if err != nil {
		return nil, err
	}

	axis := make([]float64, n/2+1)
	for k := range axis {
		axis[k] = float64(k) * res
	}
	return axis, nil
}
