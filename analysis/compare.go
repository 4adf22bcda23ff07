package analysis

import "math"

// LevelMetrics compares the level trajectories of a reference recording and
// its processed candidate.
type LevelMetrics struct {
	SampleRate      int     `json:"sample_rate"`
	ReferenceFrames int     `json:"reference_frames"`
	CandidateFrames int     `json:"candidate_frames"`
	EnvelopeFrames  int     `json:"envelope_frames"`
	FrameSeconds    float64 `json:"frame_seconds"`

	RefSpreadDB     float64 `json:"ref_spread_db"`
	CandSpreadDB    float64 `json:"cand_spread_db"`
	RefMaxStepDB    float64 `json:"ref_max_step_db"`
	CandMaxStepDB   float64 `json:"cand_max_step_db"`
	MeanGainDB      float64 `json:"mean_gain_db"`
	GainDeviationDB float64 `json:"gain_deviation_db"`
}

// CompareLevels computes level envelopes of two interleaved recordings over
// frameSec windows with half-window hops and summarizes how the candidate
// changed the level trajectory. MeanGainDB and GainDeviationDB describe the
// per-window level difference candidate minus reference over windows where
// both are above -70 dBFS.
func CompareLevels(reference, candidate []float64, channels int, sampleRate int, frameSec float64) LevelMetrics {
	m := LevelMetrics{
		SampleRate:   sampleRate,
		FrameSeconds: frameSec,
	}
	if channels <= 0 || sampleRate <= 0 || frameSec <= 0 {
		return m
	}
	m.ReferenceFrames = len(reference) / channels
	m.CandidateFrames = len(candidate) / channels

	frame := int(frameSec * float64(sampleRate))
	hop := frame / 2
	if hop < 1 {
		hop = 1
	}
	ref := LevelEnvelopeDB(reference, channels, frame, hop)
	cand := LevelEnvelopeDB(candidate, channels, frame, hop)
	n := len(ref)
	if len(cand) < n {
		n = len(cand)
	}
	m.EnvelopeFrames = n
	if n == 0 {
		return m
	}

	m.RefSpreadDB = Spread(ref, -70, 0.10, 0.95)
	m.CandSpreadDB = Spread(cand, -70, 0.10, 0.95)
	m.RefMaxStepDB = MaxStep(ref, 0, len(ref))
	m.CandMaxStepDB = MaxStep(cand, 0, len(cand))

	diff := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if ref[i] > -70 && cand[i] > -70 {
			diff = append(diff, cand[i]-ref[i])
		}
	}
	if len(diff) == 0 {
		return m
	}
	var sum float64
	for _, d := range diff {
		sum += d
	}
	m.MeanGainDB = sum / float64(len(diff))
	var sq float64
	for _, d := range diff {
		sq += (d - m.MeanGainDB) * (d - m.MeanGainDB)
	}
	m.GainDeviationDB = math.Sqrt(sq / float64(len(diff)))
	return m
}
