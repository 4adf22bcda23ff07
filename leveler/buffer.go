package leveler

import "fmt"

// Channels is the only supported channel count.
const Channels = 2

// Buffer holds interleaved stereo samples (L, R, L, R, ...).
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// NewBuffer wraps interleaved stereo samples.
func NewBuffer(samples []float64, sampleRate int) (Buffer, error) {
	if sampleRate <= 0 {
		return Buffer{}, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if len(samples)%Channels != 0 {
		return Buffer{}, fmt.Errorf("sample count %d is not a multiple of %d channels", len(samples), Channels)
	}
	return Buffer{Samples: samples, SampleRate: sampleRate}, nil
}

// Frames returns the number of stereo frames.
func (b Buffer) Frames() int {
	return len(b.Samples) / Channels
}

// Seconds returns the buffer duration.
func (b Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Slice returns frames [start, stop). The result shares memory with b.
func (b Buffer) Slice(start, stop int) Buffer {
	return Buffer{
		Samples:    b.Samples[start*Channels : stop*Channels],
		SampleRate: b.SampleRate,
	}
}

// Clone returns a deep copy.
func (b Buffer) Clone() Buffer {
	s := make([]float64, len(b.Samples))
	copy(s, b.Samples)
	return Buffer{Samples: s, SampleRate: b.SampleRate}
}

// Concat returns a new buffer holding a followed by b.
func Concat(a, b Buffer) Buffer {
	s := make([]float64, 0, len(a.Samples)+len(b.Samples))
	s = append(s, a.Samples...)
	s = append(s, b.Samples...)
	return Buffer{Samples: s, SampleRate: a.SampleRate}
}
