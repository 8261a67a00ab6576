package peaks

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/transform"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestGradient(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Gradient([]float64{1, 3, 2, 2}), []float64{2, -1, 0}, 0)
	if Gradient([]float64{1}) != nil || Gradient(nil) != nil {
		t.Fatal("expected nil gradient for fewer than two points")
	}
}

func TestFindLocalMaxima(t *testing.T) {
	freqs := []float64{0, 10, 20, 30, 40, 50, 60}
	power := []float64{0, 2, 0.1, 0.4, 0.3, 5, 9}

	found, err := Find(freqs, power)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}

	// Bin 6 is the global maximum but a boundary bin; bin 3 is a local
	// maximum below the default threshold.
	if len(found) != 1 {
		t.Fatalf("found %d peaks, want 1: %+v", len(found), found)
	}
	want := Peak{Bin: 1, Frequency: 10, Power: 2}
	if found[0] != want {
		t.Fatalf("peak = %+v, want %+v", found[0], want)
	}
}

func TestFindThreshold(t *testing.T) {
	freqs := []float64{0, 1, 2, 3, 4}
	power := []float64{0, 0.5, 0, 0.7, 0}

	got, err := Frequencies(freqs, power)
	if err != nil {
		t.Fatalf("Frequencies error: %v", err)
	}
	// 0.5 does not exceed the default threshold.
	testutil.RequireSliceNearlyEqual(t, got, []float64{3}, 0)

	got, err = Frequencies(freqs, power, WithThreshold(0))
	if err != nil {
		t.Fatalf("Frequencies error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3}, 0)
}

func TestFindPlateauIsNotPeak(t *testing.T) {
	freqs := []float64{0, 1, 2, 3, 4}
	power := []float64{0, 4, 4, 0, 0}
	found, err := Find(freqs, power)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("plateau produced peaks: %+v", found)
	}
}

func TestFindFlatSpectrumIsEmpty(t *testing.T) {
	freqs, err := OneSidedAxis(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	found, err := Find(freqs, testutil.DC(3, len(freqs)), WithThreshold(-1))
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("flat spectrum produced %d peaks", len(found))
	}
}

func TestFindShortInputs(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		found, err := Find(make([]float64, n), testutil.DC(1, n), WithThreshold(-1))
		if err != nil {
			t.Fatalf("n=%d: Find error: %v", n, err)
		}
		if len(found) != 0 {
			t.Fatalf("n=%d: found %d peaks, want 0", n, len(found))
		}
	}
}

func TestFindErrors(t *testing.T) {
	if _, err := Find([]float64{0, 1}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := Find([]float64{0}, []float64{0}, WithThreshold(math.NaN())); !errors.Is(err, ErrInvalidThreshold) {
		t.Fatalf("error = %v, want ErrInvalidThreshold", err)
	}
	if _, err := Frequencies(nil, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}

func TestFindMaxPeaks(t *testing.T) {
	freqs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	power := []float64{0, 3, 0, 9, 0, 1, 0, 6, 0}

	found, err := Find(freqs, power, WithMaxPeaks(2), WithThreshold(0))
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(found) != 2 || found[0].Bin != 3 || found[1].Bin != 7 {
		t.Fatalf("found = %+v, want bins 3 and 7", found)
	}

	all, err := Find(freqs, power, WithMaxPeaks(0), WithThreshold(0))
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("WithMaxPeaks(0) kept %d peaks, want 4", len(all))
	}
}

func TestFindTonesEndToEnd(t *testing.T) {
	const n = 64
	const fs = 64.0
	x := testutil.DeterministicSine(3, fs, 1, n)
	tone := testutil.DeterministicSine(7, fs, 0.5, n)
	for i := range x {
		x[i] += tone[i]
	}

	power, _ := spectrum.OneSided(transform.RecursiveReal(x))
	freqs, err := OneSidedAxis(fs, n)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Frequencies(freqs, power)
	if err != nil {
		t.Fatalf("Frequencies error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 7}, 1e-9)
}

func TestDominant(t *testing.T) {
	p, err := Dominant([]float64{0, 1, 2, 3}, []float64{9, 1, 9, 2})
	if err != nil {
		t.Fatalf("Dominant error: %v", err)
	}
	if p.Bin != 0 || p.Power != 9 {
		t.Fatalf("Dominant = %+v, want bin 0", p)
	}

	if _, err := Dominant(nil, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	if _, err := Dominant([]float64{1}, nil); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
}
