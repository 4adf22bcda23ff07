package leveler

import (
	"math"
)

// meanSquareMeter is a deterministic stand-in for BS.1770 without
// K-weighting or gating: -0.691 + 10*log10(sum of channel mean squares).
var meanSquareMeter = MeterFunc(func(b Buffer) float64 {
	frames := b.Frames()
	if frames == 0 {
		return math.Inf(-1)
	}
	var sum float64
	for _, v := range b.Samples {
		sum += v * v
	}
	ms := sum / float64(frames)
	if ms <= 0 {
		return math.Inf(-1)
	}
	return -0.691 + 10*math.Log10(ms)
})

// amplitudeFor returns the per-channel square-wave amplitude that the
// mean-square meter reads as lufs.
func amplitudeFor(lufs float64) float64 {
	return math.Sqrt(math.Pow(10, (lufs+0.691)/10) / Channels)
}

// squareWave alternates ±amp every frame on both channels; its mean square
// is amp² over any window of even length.
func squareWave(frames int, amp float64) []float64 {
	out := make([]float64, frames*Channels)
	for i := 0; i < frames; i++ {
		v := amp
		if i%2 == 1 {
			v = -amp
		}
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}

func stereoSine(sr int, freq float64, amp float64, seconds float64) []float64 {
	n := int(float64(sr) * seconds)
	out := make([]float64, n*Channels)
	for i := 0; i < n; i++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
		out[i*2] = v
		out[i*2+1] = v
	}
	return out
}

// stepSignal is a square wave whose first half measures quiet and second
// half loud.
func stepSignal(frames int, quiet, loud float64) []float64 {
	out := squareWave(frames, amplitudeFor(quiet))
	hi := amplitudeFor(loud) / amplitudeFor(quiet)
	for i := frames / 2 * Channels; i < len(out); i++ {
		out[i] *= hi
	}
	return out
}

func mustBuffer(samples []float64, sr int) Buffer {
	b, err := NewBuffer(samples, sr)
	if err != nil {
		panic(err)
	}
	return b
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DivisionSeconds = 2
	cfg.TargetLUFS = -20
	cfg.MaxGainDB = 20
	return cfg
}
