package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleOneSided() {
	// 4-point transform of [1 2 3 4].
	bins := []complex128{10, -2 + 2i, -2, -2 - 2i}
	power, magnitude := spectrum.OneSided(bins)
	fmt.Printf("power=%.2f\n", power)
	fmt.Printf("magnitude=%.2f\n", magnitude)
	// Output:
	// power=[25.00 4.00 1.00]
	// magnitude=[2.50 1.41 0.50]
}
