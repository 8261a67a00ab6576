// Package spectrum derives real-valued spectra from complex transform bins.
//
// The package does not implement a transform itself. It operates on bins
// produced by the transform package (or any other FFT backend) and provides
// element-wise magnitude/power/phase helpers plus the one-sided power and
// magnitude spectrum used for feature extraction.
package spectrum
