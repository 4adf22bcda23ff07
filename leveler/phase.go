package leveler

import "fmt"

// BlockResult describes one corrected block of a phase pass.
type BlockResult struct {
	Phase        int         `json:"phase"`
	Index        int         `json:"index"`
	Window       BlockWindow `json:"window"`
	LoudnessLUFS float64     `json:"loudness_lufs"`
	DesiredDB    float64     `json:"desired_db"`
	GainDB       float64     `json:"gain_db"`
	Clamped      bool        `json:"clamped"`
	Silent       bool        `json:"silent"`
}

// BlockEvent is passed to an Observer after each block has been corrected.
type BlockEvent struct {
	Phase  int
	Index  int
	Count  int
	Result BlockResult
}

// Observer receives per-block progress. It is called synchronously.
type Observer func(BlockEvent)

// PhaseResult is the outcome of one pass over a buffer.
type PhaseResult struct {
	Phase  int
	Plan   BlockPlan
	Blocks []BlockResult
	Output Buffer
}

// Curve returns the per-block gain curve of the pass.
func (r PhaseResult) Curve() GainCurve {
	pts := make([]CurvePoint, len(r.Blocks))
	for i, b := range r.Blocks {
		pts[i] = CurvePoint{Block: b.Index, GainDB: b.GainDB}
	}
	return GainCurve{Phase: r.Phase, Points: pts}
}

// stitchState is the accumulator folded over the blocks of a pass. out
// holds finalized samples; held is the latest corrected block whose tail
// still waits for the next block's crossfade. held is nil before the first
// block.
type stitchState struct {
	out  []float64
	held []float64
}

// push folds the next corrected block into the state. fade is the number of
// leading frames of block that overlap the tail of the held block.
func (s stitchState) push(block []float64, fade int) (stitchState, error) {
	if s.held == nil {
		return stitchState{out: s.out, held: block}, nil
	}
	n := fade * Channels
	if n > len(s.held) || n > len(block) {
		return s, fmt.Errorf("crossfade of %d frames exceeds block (held %d, next %d frames)",
			fade, len(s.held)/Channels, len(block)/Channels)
	}
	cut := len(s.held) - n
	blended, err := Crossfade(s.held[cut:], block[:n])
	if err != nil {
		return s, err
	}
	out := append(s.out, s.held[:cut]...)
	out = append(out, blended...)
	return stitchState{out: out, held: block[n:]}, nil
}

// flush finalizes the held block.
func (s stitchState) flush() []float64 {
	return append(s.out, s.held...)
}

// RunPhase runs one pass of plan → measure → correct → crossfade over b and
// returns the stitched output. The output has exactly as many frames as b.
func RunPhase(b Buffer, cfg Config, m Meter, phase int, observe Observer) (PhaseResult, error) {
	plan, err := PlanBlocks(b.Frames(), b.SampleRate, cfg.DivisionSeconds, cfg.Crossfade)
	if err != nil {
		return PhaseResult{}, fmt.Errorf("phase %d: %w", phase, err)
	}

	res := PhaseResult{
		Phase:  phase,
		Plan:   plan,
		Blocks: make([]BlockResult, 0, len(plan.Windows)),
	}
	st := stitchState{out: make([]float64, 0, len(b.Samples))}

	for i, w := range plan.Windows {
		corrected, measured, d := Correct(m, b.Slice(w.Start, w.Stop), cfg)
		br := BlockResult{
			Phase:        phase,
			Index:        i,
			Window:       w,
			LoudnessLUFS: measured,
			DesiredDB:    d.DesiredDB,
			GainDB:       d.AppliedDB,
			Clamped:      d.Clamped,
			Silent:       d.Silent,
		}
		res.Blocks = append(res.Blocks, br)
		if observe != nil {
			observe(BlockEvent{Phase: phase, Index: i, Count: len(plan.Windows), Result: br})
		}

		st, err = st.push(corrected.Samples, w.FadeIn)
		if err != nil {
			return PhaseResult{}, fmt.Errorf("phase %d block %d: %w", phase, i, err)
		}
	}

	out := st.flush()
	if len(out) != len(b.Samples) {
		return PhaseResult{}, fmt.Errorf("phase %d: stitched %d samples, want %d", phase, len(out), len(b.Samples))
	}
	res.Output = Buffer{Samples: out, SampleRate: b.SampleRate}
	return res, nil
}
