package spectrum

// OneSidedLen returns the number of bins in the one-sided spectrum of an
// N-point transform: N/2 + 1 for N >= 1, 0 otherwise.
func OneSidedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// OneSided folds an N-point complex spectrum into one-sided power and
// magnitude spectra of length N/2+1, each normalized by N.
//
//	power[0]       = |S[0]|^2
//	power[k]       = |S[k]|^2 + |S[N-k]|^2     for 1 <= k < N/2 (k <= N/2 for odd N)
//	power[N/2]     = |S[N/2]|^2                for even N
//
// Magnitude follows the same layout with |S| in place of |S|^2. Entries
// between DC and Nyquist therefore carry the energy of both the positive and
// the mirrored negative frequency.
//
// Spectra with N <= 1 short-circuit without folding: an empty input yields
// (nil, nil) and a single bin yields ([|S[0]|^2], [|S[0]|]). The single bin
// is not passed through as is: the results are real, so a bin of -3 reads
// as power 9 and magnitude 3. This matches the general formula with nothing
// to fold and N = 1.
func OneSided(s []complex128) (power, magnitude []float64) {
	n := len(s)
	if n == 0 {
		return nil, nil
	}

	fullPow := Power(s)
	fullMag := Magnitude(s)
	if n == 1 {
		return fullPow, fullMag
	}

	bins := OneSidedLen(n)
	power = make([]float64, bins)
	magnitude = make([]float64, bins)

	power[0] = fullPow[0]
	magnitude[0] = fullMag[0]

	// For odd N the last one-sided bin (N-1)/2 still has a distinct mirror.
	foldEnd := bins
	if n%2 == 0 {
		foldEnd = bins - 1
		power[n/2] = fullPow[n/2]
		magnitude[n/2] = fullMag[n/2]
	}

	for k := 1; k < foldEnd; k++ {
		power[k] = fullPow[k] + fullPow[n-k]
		magnitude[k] = fullMag[k] + fullMag[n-k]
	}

	inv := 1 / float64(n)
	for k := range power {
		power[k] *= inv
		magnitude[k] *= inv
	}

	return power, magnitude
}

// Energy returns sum |S[k]|^2 over all bins.
//
// For any spectrum of length N >= 1, N times the sum of the one-sided power
// spectrum equals Energy(S).
func Energy(s []complex128) float64 {
	total := 0.0
	for _, v := range PowerBins(SliceBins(s)) {
		total += v
	}
	return total
}
