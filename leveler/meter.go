package leveler

import (
	"math"

	"github.com/cwbudde/algo-dsp/measure/loudness"
)

// AbsoluteGateLUFS is the BS.1770 absolute gating threshold. Blocks measured
// at or below it are treated as silence.
const AbsoluteGateLUFS = -70.0

// Meter measures integrated loudness of a stereo buffer in LUFS. A Meter
// must not carry state between calls; silence is reported as -Inf.
type Meter interface {
	Integrated(b Buffer) float64
}

// MeterFunc adapts a plain function to the Meter interface.
type MeterFunc func(b Buffer) float64

// Integrated calls f(b).
func (f MeterFunc) Integrated(b Buffer) float64 { return f(b) }

// BS1770Meter measures ITU-R BS.1770 integrated loudness (K-weighting,
// absolute and relative gating) using the algo-dsp loudness meter.
type BS1770Meter struct{}

// Integrated runs a fresh meter over b so that no filter or gating state
// leaks from one block into the next.
func (BS1770Meter) Integrated(b Buffer) float64 {
	if b.Frames() == 0 || b.SampleRate <= 0 {
		return math.Inf(-1)
	}
	m := loudness.NewMeter(
		loudness.WithSampleRate(float64(b.SampleRate)),
		loudness.WithChannels(Channels),
	)
	m.StartIntegration()
	m.ProcessBlock(b.Samples)
	return m.Integrated()
}

// isSilent reports whether a measurement carries no usable loudness.
func isSilent(lufs float64) bool {
	return math.IsNaN(lufs) || math.IsInf(lufs, -1) || lufs <= AbsoluteGateLUFS
}
