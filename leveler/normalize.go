package leveler

import (
	"github.com/cwbudde/algo-leveler/analysis"
)

// NormalizeResult is the outcome of the final global gain stage.
type NormalizeResult struct {
	Output       Buffer
	MeasuredLUFS float64
	GainDB       float64
	// PeakDBFS is the sample peak of Output. Values above 0 mean the
	// output exceeds full scale; nothing is clipped or limited here.
	PeakDBFS float64
	Clipped  bool
	// TruePeakDBTP is only set when true-peak estimation was requested.
	TruePeakDBTP *float64
}

// Normalize scales b by a single unclamped gain so that its integrated
// loudness equals target. Silent input is passed through unchanged.
func Normalize(b Buffer, target float64, m Meter) NormalizeResult {
	measured := m.Integrated(b)
	var gain float64
	if !isSilent(measured) {
		gain = target - measured
	}
	out := ApplyGain(b, gain)
	peak := analysis.SamplePeakDBFS(out.Samples)
	return NormalizeResult{
		Output:       out,
		MeasuredLUFS: measured,
		GainDB:       gain,
		PeakDBFS:     peak,
		Clipped:      peak > 0,
	}
}
