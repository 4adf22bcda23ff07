package leveler

import (
	"fmt"

	"github.com/cwbudde/algo-leveler/dsp"
)

// Crossfade blends the tail of the previous block into the head of the
// current one with a linear ramp. Both slices hold interleaved stereo
// frames of equal length. At frame j of n the result is
// (1-j/n)*prevTail[j] + (j/n)*currHead[j] on each channel. The inputs are
// not modified.
func Crossfade(prevTail, currHead []float64) ([]float64, error) {
	if len(prevTail) != len(currHead) {
		return nil, fmt.Errorf("crossfade length mismatch: %d vs %d samples", len(prevTail), len(currHead))
	}
	if len(prevTail)%Channels != 0 {
		return nil, fmt.Errorf("crossfade region of %d samples is not whole frames", len(prevTail))
	}
	n := len(prevTail) / Channels
	out := make([]float64, len(prevTail))
	for j := 0; j < n; j++ {
		in := dsp.RampWeight(j, n)
		keep := 1.0 - in
		for ch := 0; ch < Channels; ch++ {
			k := j*Channels + ch
			out[k] = keep*prevTail[k] + in*currHead[k]
		}
	}
	return out, nil
}
