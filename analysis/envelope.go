package analysis

import (
	"math"
	"sort"
)

// LevelEnvelopeDB returns the RMS level in dBFS of interleaved audio over
// frames of frame samples per channel, advancing by hop. All channels are
// pooled into one value per frame.
func LevelEnvelopeDB(interleaved []float64, channels int, frame int, hop int) []float64 {
	if channels <= 0 || frame <= 0 || hop <= 0 {
		return nil
	}
	frames := len(interleaved) / channels
	if frames < frame {
		return nil
	}
	n := 1 + (frames-frame)/hop
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		start := i * hop * channels
		out[i] = linToDB(rms1(interleaved[start : start+frame*channels]))
	}
	return out
}

// Spread returns the distance in dB between the lo and hi percentiles of an
// envelope, ignoring frames below floorDB. It summarizes how much the level
// wanders over a recording.
func Spread(envDB []float64, floorDB float64, lo, hi float64) float64 {
	v := make([]float64, 0, len(envDB))
	for _, x := range envDB {
		if x > floorDB {
			v = append(v, x)
		}
	}
	if len(v) < 2 {
		return 0
	}
	sort.Float64s(v)
	return percentile(v, hi) - percentile(v, lo)
}

// MaxStep returns the largest absolute difference between neighbouring
// envelope values in [from, to).
func MaxStep(envDB []float64, from, to int) float64 {
	if from < 1 {
		from = 1
	}
	if to > len(envDB) {
		to = len(envDB)
	}
	var best float64
	for i := from; i < to; i++ {
		if d := math.Abs(envDB[i] - envDB[i-1]); d > best {
			best = d
		}
	}
	return best
}

func percentile(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	i := int(pos)
	frac := pos - float64(i)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

func rms1(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func linToDB(x float64) float64 {
	if x < 1e-12 {
		x = 1e-12
	}
	return 20.0 * math.Log10(x)
}
