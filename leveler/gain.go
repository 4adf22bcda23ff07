package leveler

import (
	"math"

	"github.com/cwbudde/algo-leveler/dsp"
)

// GainDecision is the outcome of ComputeGain.
type GainDecision struct {
	DesiredDB float64
	AppliedDB float64
	Clamped   bool
	// Silent is set when the block measured below the absolute gate and
	// was left uncorrected.
	Silent bool
}

// ComputeGain derives the per-block correction that moves measured towards
// target. With clamp set the correction is limited to ±maxGainDB. Silent
// blocks get no correction.
func ComputeGain(measured, target, maxGainDB float64, clamp bool) GainDecision {
	if isSilent(measured) {
		return GainDecision{Silent: true}
	}
	desired := target - measured
	d := GainDecision{DesiredDB: desired, AppliedDB: desired}
	if clamp && math.Abs(desired) > maxGainDB {
		d.AppliedDB = math.Copysign(maxGainDB, desired)
		d.Clamped = true
	}
	return d
}

// ApplyGain returns a copy of b scaled by gainDB.
func ApplyGain(b Buffer, gainDB float64) Buffer {
	return Buffer{
		Samples:    dsp.Scale(b.Samples, dsp.DBToGain(gainDB)),
		SampleRate: b.SampleRate,
	}
}

// Correct measures block, computes its bounded correction and returns the
// corrected copy together with the measurement and the decision.
func Correct(m Meter, block Buffer, cfg Config) (Buffer, float64, GainDecision) {
	measured := m.Integrated(block)
	d := ComputeGain(measured, cfg.TargetLUFS, cfg.MaxGainDB, cfg.ClampGain)
	return ApplyGain(block, d.AppliedDB), measured, d
}
