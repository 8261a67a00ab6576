// Package transform computes discrete Fourier transforms of complex signals.
//
// Three engines are provided:
//
//   - [Direct] evaluates the O(N^2) DFT definition for any length.
//   - [Recursive] is a radix-2 decimation-in-time FFT that delegates odd-length
//     segments to [Direct]. It is O(N log N) only for power-of-two lengths.
//   - [Planned] runs a precomputed algo-fft plan and falls back to [Recursive]
//     when no plan exists for the length.
//
// All engines use the forward sign convention
//
//	X[k] = sum_{j=0}^{N-1} x[j] * exp(-2*pi*i*k*j/N)
//
// and never modify their input. The package does not log: fallback decisions
// are reported through an injected [Observer].
package transform
