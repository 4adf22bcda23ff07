package analysis

import (
	"math"
	"testing"
)

func TestCompareLevelsConstantGain(t *testing.T) {
	sr := 4000
	ref := makeStereoSine(sr, 250, 0.1, 10)
	cand := make([]float64, len(ref))
	for i, v := range ref {
		cand[i] = v * 2
	}
	m := CompareLevels(ref, cand, 2, sr, 1.0)
	if m.EnvelopeFrames != 19 {
		t.Fatalf("envelope frames = %d, want 19", m.EnvelopeFrames)
	}
	if math.Abs(m.MeanGainDB-20*math.Log10(2)) > 1e-6 {
		t.Fatalf("mean gain = %f dB, want 6.02", m.MeanGainDB)
	}
	if m.GainDeviationDB > 1e-6 {
		t.Fatalf("constant gain must have no deviation, got %f", m.GainDeviationDB)
	}
	if m.RefSpreadDB > 1e-6 || m.CandSpreadDB > 1e-6 {
		t.Fatalf("steady sine must have no spread: %f %f", m.RefSpreadDB, m.CandSpreadDB)
	}
}

func TestCompareLevelsDetectsFlattening(t *testing.T) {
	sr := 4000
	ref := makeStereoSine(sr, 250, 0.02, 10)
	for i := len(ref) / 2; i < len(ref); i++ {
		ref[i] *= 10
	}
	flat := makeStereoSine(sr, 250, 0.1, 10)

	m := CompareLevels(ref, flat, 2, sr, 1.0)
	if m.RefSpreadDB < 19 {
		t.Fatalf("reference spread = %f, want about 20 dB", m.RefSpreadDB)
	}
	if m.CandSpreadDB > 1e-6 {
		t.Fatalf("flat candidate spread = %f, want 0", m.CandSpreadDB)
	}
	if m.GainDeviationDB < 5 {
		t.Fatalf("expected large gain deviation, got %f", m.GainDeviationDB)
	}
}

func TestCompareLevelsInvalidInput(t *testing.T) {
	m := CompareLevels(nil, nil, 2, 0, 1)
	if m.EnvelopeFrames != 0 {
		t.Fatalf("expected empty metrics, got %+v", m)
	}
}
