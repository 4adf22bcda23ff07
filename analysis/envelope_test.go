package analysis

import (
	"math"
	"testing"
)

func makeStereoSine(sr int, freq float64, amp float64, seconds float64) []float64 {
	n := int(float64(sr) * seconds)
	out := make([]float64, n*2)
	for i := 0; i < n; i++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}

func TestLevelEnvelopeOfSine(t *testing.T) {
	x := makeStereoSine(8000, 500, 0.5, 1.0)
	env := LevelEnvelopeDB(x, 2, 800, 400)
	if len(env) != 19 {
		t.Fatalf("envelope length = %d, want 19", len(env))
	}
	want := 20 * math.Log10(0.5/math.Sqrt2)
	for i, v := range env {
		if math.Abs(v-want) > 0.05 {
			t.Fatalf("env[%d] = %f, want %f", i, v, want)
		}
	}
}

func TestLevelEnvelopeTooShort(t *testing.T) {
	if env := LevelEnvelopeDB(make([]float64, 10), 2, 100, 50); env != nil {
		t.Fatalf("expected nil envelope, got %v", env)
	}
}

func TestSpreadIgnoresFloor(t *testing.T) {
	env := []float64{-120, -20, -20, -10, -10, -120}
	if s := Spread(env, -70, 0, 1); s != 10 {
		t.Fatalf("Spread = %f, want 10", s)
	}
	if s := Spread([]float64{-10}, -70, 0, 1); s != 0 {
		t.Fatalf("Spread of single value = %f, want 0", s)
	}
}

func TestMaxStep(t *testing.T) {
	env := []float64{0, 1, 5, 4, 4}
	if s := MaxStep(env, 0, len(env)); s != 4 {
		t.Fatalf("MaxStep = %f, want 4", s)
	}
	if s := MaxStep(env, 3, len(env)); s != 1 {
		t.Fatalf("MaxStep from 3 = %f, want 1", s)
	}
}
