package transform

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"gonum.org/v1/gonum/dsp/fourier"
)

func TestDirectGoldenFourPoint(t *testing.T) {
	got := DirectReal([]float64{1, 2, 3, 4})
	want := []complex128{10, -2 + 2i, -2, -2 - 2i}
	testutil.RequireComplexNearlyEqual(t, got, want, testutil.SpectrumTolerance)
}

func TestDirectEmptyAndSingle(t *testing.T) {
	if got := Direct(nil); len(got) != 0 {
		t.Fatalf("Direct(nil) length = %d, want 0", len(got))
	}

	got := Direct([]complex128{3 - 1i})
	if len(got) != 1 || got[0] != 3-1i {
		t.Fatalf("Direct single = %v, want [3-1i]", got)
	}
}

func TestDirectMatchesGonum(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7, 10, 16, 17, 31} {
		x := testutil.DeterministicComplexNoise(int64(n), 1, n)
		want := fourier.NewCmplxFFT(n).Coefficients(nil, x)
		testutil.RequireComplexNearlyEqual(t, Direct(x), want, testutil.SpectrumTolerance)
	}
}

func TestDirectLinearity(t *testing.T) {
	const n = 12
	x := testutil.DeterministicComplexNoise(1, 1, n)
	y := testutil.DeterministicComplexNoise(2, 1, n)
	a := complex(0.75, -0.25)
	b := complex(-1.5, 2)

	combined := make([]complex128, n)
	for i := range combined {
		combined[i] = a*x[i] + b*y[i]
	}

	fx := Direct(x)
	fy := Direct(y)
	want := make([]complex128, n)
	for i := range want {
		want[i] = a*fx[i] + b*fy[i]
	}

	testutil.RequireComplexNearlyEqual(t, Direct(combined), want, testutil.SpectrumTolerance)
}

func TestDirectSineBin(t *testing.T) {
	const n = 16
	x := testutil.DeterministicSine(2, n, 1, n)
	got := DirectReal(x)

	for k, v := range got {
		mag := math.Hypot(real(v), imag(v))
		switch k {
		case 2, n - 2:
			if math.Abs(mag-n/2) > 1e-9 {
				t.Fatalf("|X[%d]| = %v, want %v", k, mag, n/2)
			}
		default:
			if mag > 1e-9 {
				t.Fatalf("|X[%d]| = %v, want 0", k, mag)
			}
		}
	}
}

func TestDirectDoesNotMutateInput(t *testing.T) {
	x := []complex128{1, 2i, -3, 4}
	snapshot := append([]complex128(nil), x...)
	_ = Direct(x)
	for i := range x {
		if x[i] != snapshot[i] {
			t.Fatalf("input modified at %d: %v != %v", i, x[i], snapshot[i])
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{0: false, 1: true, 2: true, 3: false, 6: false, 64: true, -4: false}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Fatalf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}
