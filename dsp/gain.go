package dsp

import (
	"math"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
)

// DBToGain converts a level change in dB to a linear amplitude factor.
func DBToGain(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}

// GainToDB converts a linear amplitude factor to dB. Zero or negative
// factors map to -Inf.
func GainToDB(g float64) float64 {
	if g <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(g)
}

// Scale returns a new slice holding src multiplied by the linear gain g.
// Denormal results are flushed to zero.
func Scale(src []float64, g float64) []float64 {
	out := make([]float64, len(src))
	if g == 1 {
		copy(out, src)
		return out
	}
	for i, v := range src {
		out[i] = dspcore.FlushDenormals(v * g)
	}
	return out
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// RampWeight is the incoming weight of a linear ramp of length n at offset j.
// It is 0 at j=0 and rises by exactly 1/n per step.
func RampWeight(j, n int) float64 {
	if n <= 0 {
		return 1
	}
	return float64(j) * (1.0 / float64(n))
}
