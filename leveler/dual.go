package leveler

// DualResult holds both passes and the spliced output.
type DualResult struct {
	Phase1 PhaseResult
	// Phase2 is nil when the second pass was disabled or skipped.
	Phase2 *PhaseResult
	// Shift is the number of frames phase 2 was offset by.
	Shift  int
	Output Buffer
}

// Curves returns the gain curve of every pass that ran.
func (r DualResult) Curves() []GainCurve {
	curves := []GainCurve{r.Phase1.Curve()}
	if r.Phase2 != nil {
		curves = append(curves, r.Phase2.Curve())
	}
	return curves
}

// Average runs phase 1 over b and, with cfg.Phase2 set, a second pass over
// phase 1's output minus its first half block. The result is the first half
// block of phase 1 followed by the whole of phase 2, which puts every block
// boundary of the second pass at a block midpoint of the first.
//
// Phase 2 is skipped when the buffer is not longer than half a block.
func Average(b Buffer, cfg Config, m Meter, observe Observer) (DualResult, error) {
	p1, err := RunPhase(b, cfg, m, 1, observe)
	if err != nil {
		return DualResult{}, err
	}
	res := DualResult{Phase1: p1, Output: p1.Output}
	if !cfg.Phase2 {
		return res, nil
	}

	shift := cfg.BlockFrames(b.SampleRate) / 2
	if shift <= 0 || p1.Output.Frames() <= shift {
		return res, nil
	}

	p2, err := RunPhase(p1.Output.Slice(shift, p1.Output.Frames()), cfg, m, 2, observe)
	if err != nil {
		return DualResult{}, err
	}
	res.Phase2 = &p2
	res.Shift = shift
	res.Output = Concat(p1.Output.Slice(0, shift), p2.Output)
	return res, nil
}
