package transform

import (
	"math"
	"math/cmplx"
)

// Direct returns the discrete Fourier transform of x.
//
// The sum for each bin is accumulated in ascending sample order. The product
// k*j is reduced modulo N before forming the angle, which keeps the twiddle
// argument inside [0, 2*pi) for large N.
func Direct(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	if n == 0 {
		return out
	}

	step := -2 * math.Pi / float64(n)
	for k := range n {
		var acc complex128
		for j, v := range x {
			idx := (k * j) % n
			acc += v * cmplx.Exp(complex(0, step*float64(idx)))
		}
		out[k] = acc
	}

	return out
}

// DirectReal returns the discrete Fourier transform of a real signal.
func DirectReal(x []float64) []complex128 {
	return Direct(FromReal(x))
}

// FromReal lifts a real signal into a freshly allocated complex slice.
func FromReal(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
