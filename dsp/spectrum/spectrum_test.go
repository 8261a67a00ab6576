package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudePhasePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}

	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 {
		t.Fatalf("Power[0]=%f want=25", pow[0])
	}

	phase := Phase(bins)
	if math.Abs(phase[0]-math.Atan2(4, 3)) > 1e-12 {
		t.Fatalf("Phase[0]=%f mismatch", phase[0])
	}
}

func TestEmptyHelpers(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil || UnwrapPhase(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
	if PowerBins(nil) != nil {
		t.Fatal("PowerBins(nil) should be nil")
	}
}

func TestPowerBinsAdapter(t *testing.T) {
	pow := PowerBins(SliceBins([]complex128{1 + 0i, 0 + 2i}))
	if len(pow) != 2 || math.Abs(pow[0]-1) > 1e-12 || math.Abs(pow[1]-4) > 1e-12 {
		t.Fatalf("unexpected PowerBins output: %v", pow)
	}
}

