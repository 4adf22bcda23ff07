package leveler

import (
	"fmt"
	"math"
)

// BlockWindow is one block of a plan, in frames. The first FadeIn frames
// overlap the tail of the previous block.
type BlockWindow struct {
	Start  int `json:"start"`
	Stop   int `json:"stop"`
	FadeIn int `json:"fade_in"`
}

// Len returns the window length in frames.
func (w BlockWindow) Len() int { return w.Stop - w.Start }

// BlockPlan is the window sequence covering one buffer.
type BlockPlan struct {
	BlockSize int
	FadeSize  int
	Windows   []BlockWindow
}

// PlanBlocks splits frames frames into blocks of seconds*sampleRate frames.
// Every block after the first starts fadesize frames early so that it
// overlaps the previous block; the last block runs to the end of the buffer.
func PlanBlocks(frames, sampleRate, seconds int, crossfade float64) (BlockPlan, error) {
	if frames <= 0 {
		return BlockPlan{}, fmt.Errorf("empty buffer")
	}
	if math.IsNaN(crossfade) || crossfade <= 0 || crossfade >= 1 {
		return BlockPlan{}, fmt.Errorf("crossfade %g outside (0, 1)", crossfade)
	}
	blockSize := seconds * sampleRate
	if blockSize <= 0 {
		return BlockPlan{}, fmt.Errorf("invalid block size %d (%ds at %d Hz)", blockSize, seconds, sampleRate)
	}
	fadeSize := int(float64(blockSize) * crossfade)

	count := (frames + blockSize - 1) / blockSize
	windows := make([]BlockWindow, count)
	for i := range windows {
		w := BlockWindow{
			Start:  i*blockSize - fadeSize,
			Stop:   (i + 1) * blockSize,
			FadeIn: fadeSize,
		}
		if i == 0 {
			w.Start = 0
			w.FadeIn = 0
		}
		if i == count-1 {
			w.Stop = frames
		}
		windows[i] = w
	}

	return BlockPlan{BlockSize: blockSize, FadeSize: fadeSize, Windows: windows}, nil
}
