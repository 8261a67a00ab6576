package peaks_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/peaks"
)

func ExampleFrequencyAxis() {
	axis, _ := peaks.FrequencyAxis(12, 12)
	fmt.Println(axis)
	// Output:
	// [0 1 2 3 4 5 -6 -5 -4 -3 -2 -1]
}

func ExampleFrequencies() {
	freqs := []float64{0, 100, 200, 300, 400}
	power := []float64{0.1, 2, 0.2, 0.9, 0.3}
	got, _ := peaks.Frequencies(freqs, power)
	fmt.Println(got)
	// Output:
	// [100 300]
}
