package analysis

import (
	"math"

	dspresample "github.com/cwbudde/algo-dsp/dsp/resample"
)

// SamplePeakDBFS returns 20*log10 of the largest absolute sample value.
// Silence returns -Inf.
func SamplePeakDBFS(samples []float64) float64 {
	var peak float64
	for _, v := range samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return ampToDB(peak)
}

// TruePeakDBTP estimates the inter-sample peak of interleaved audio by
// oversampling each channel and taking the largest absolute value.
func TruePeakDBTP(interleaved []float64, channels int, sampleRate int, oversample int) (float64, error) {
	if channels <= 0 || len(interleaved) == 0 {
		return math.Inf(-1), nil
	}
	if oversample < 1 {
		oversample = 1
	}
	var peak float64
	for ch := 0; ch < channels; ch++ {
		x := deinterleave(interleaved, channels, ch)
		if oversample > 1 {
			r, err := dspresample.NewForRates(
				float64(sampleRate),
				float64(sampleRate*oversample),
				dspresample.WithQuality(dspresample.QualityBest),
			)
			if err != nil {
				return 0, err
			}
			x = r.Process(x)
		}
		for _, v := range x {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	return ampToDB(peak), nil
}

func deinterleave(x []float64, channels int, ch int) []float64 {
	n := len(x) / channels
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x[i*channels+ch]
	}
	return out
}

func ampToDB(a float64) float64 {
	if a <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(a)
}
