package dsp

import (
	"math"
	"testing"
)

func TestDBToGainRoundTrip(t *testing.T) {
	for _, db := range []float64{-40, -6, 0, 3.5, 14} {
		got := GainToDB(DBToGain(db))
		if math.Abs(got-db) > 1e-9 {
			t.Fatalf("GainToDB(DBToGain(%f)) = %f", db, got)
		}
	}
	if g := DBToGain(-6.0206); math.Abs(g-0.5) > 1e-4 {
		t.Fatalf("expected -6.02 dB to halve amplitude, got %f", g)
	}
	if !math.IsInf(GainToDB(0), -1) {
		t.Fatalf("expected -Inf for zero gain")
	}
}

func TestScaleDoesNotMutateInput(t *testing.T) {
	src := []float64{0.5, -0.25, 1e-320, 0}
	out := Scale(src, 2)
	if src[0] != 0.5 || src[1] != -0.25 {
		t.Fatalf("input modified: %v", src)
	}
	if out[0] != 1 || out[1] != -0.5 {
		t.Fatalf("unexpected scaled values: %v", out)
	}
	if out[2] != 0 {
		t.Fatalf("expected denormal flushed to zero, got %g", out[2])
	}

	same := Scale(src, 1)
	same[0] = 9
	if src[0] != 0.5 {
		t.Fatalf("unity scale must still copy")
	}
}

func TestPeak(t *testing.T) {
	if p := Peak([]float64{0.1, -0.9, 0.3}); p != 0.9 {
		t.Fatalf("Peak = %f, want 0.9", p)
	}
	if p := Peak(nil); p != 0 {
		t.Fatalf("Peak(nil) = %f, want 0", p)
	}
}

func TestRampWeightIsLinear(t *testing.T) {
	const n = 8
	prev := RampWeight(0, n)
	if prev != 0 {
		t.Fatalf("ramp must start at 0, got %f", prev)
	}
	for j := 1; j < n; j++ {
		w := RampWeight(j, n)
		if math.Abs((w-prev)-1.0/n) > 1e-12 {
			t.Fatalf("step %d not linear: %f -> %f", j, prev, w)
		}
		prev = w
	}
}
