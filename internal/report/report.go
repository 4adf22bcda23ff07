// Package report writes a JSON summary of a leveler run.
package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-leveler/analysis"
	"github.com/cwbudde/algo-leveler/leveler"
)

// Run is the JSON document written by Write. Loudness values that are
// -Inf (silence) are written as null.
type Run struct {
	InputPath   string        `json:"input_path"`
	OutputPath  string        `json:"output_path"`
	SampleRate  int           `json:"sample_rate"`
	Frames      int           `json:"frames"`
	DurationSec float64       `json:"duration_seconds"`
	Config      configJSON    `json:"config"`
	Corrections []string      `json:"corrections,omitempty"`
	Phases      []phaseJSON   `json:"phases"`
	Final       finalJSON     `json:"final"`
	Spread      *spreadReport `json:"level_spread,omitempty"`
}

type configJSON struct {
	TargetLUFS      float64 `json:"target_lufs"`
	DivisionSeconds int     `json:"division_seconds"`
	Crossfade       float64 `json:"crossfade"`
	MaxGainDB       float64 `json:"max_gain_db"`
	ClampGain       bool    `json:"clamp_gain"`
	Phase2          bool    `json:"phase2"`
}

type phaseJSON struct {
	Phase     int         `json:"phase"`
	Offset    int         `json:"offset_frames"`
	BlockSize int         `json:"block_frames"`
	FadeSize  int         `json:"fade_frames"`
	Blocks    []blockJSON `json:"blocks"`
}

type blockJSON struct {
	Index        int      `json:"index"`
	Start        int      `json:"start"`
	Stop         int      `json:"stop"`
	FadeIn       int      `json:"fade_in"`
	LoudnessLUFS *float64 `json:"loudness_lufs"`
	DesiredDB    float64  `json:"desired_db"`
	GainDB       float64  `json:"gain_db"`
	Clamped      bool     `json:"clamped"`
	Silent       bool     `json:"silent"`
}

type finalJSON struct {
	MeasuredLUFS *float64 `json:"measured_lufs"`
	GainDB       float64  `json:"gain_db"`
	PeakDBFS     *float64 `json:"peak_dbfs"`
	TruePeakDBTP *float64 `json:"true_peak_dbtp,omitempty"`
	Clipped      bool     `json:"clipped"`
}

type spreadReport struct {
	InputDB  float64 `json:"input_db"`
	OutputDB float64 `json:"output_db"`
}

// Build assembles the report of a finished run. in is the decoded input,
// used for the before/after level spread.
func Build(inputPath, outputPath string, in leveler.Buffer, res *leveler.Result) Run {
	cfg := res.Config
	r := Run{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		SampleRate:  in.SampleRate,
		Frames:      in.Frames(),
		DurationSec: in.Seconds(),
		Config: configJSON{
			TargetLUFS:      cfg.TargetLUFS,
			DivisionSeconds: cfg.DivisionSeconds,
			Crossfade:       cfg.Crossfade,
			MaxGainDB:       cfg.MaxGainDB,
			ClampGain:       cfg.ClampGain,
			Phase2:          cfg.Phase2,
		},
		Final: finalJSON{
			MeasuredLUFS: finite(res.Final.MeasuredLUFS),
			GainDB:       res.Final.GainDB,
			PeakDBFS:     finite(res.Final.PeakDBFS),
			TruePeakDBTP: res.Final.TruePeakDBTP,
			Clipped:      res.Final.Clipped,
		},
	}
	for _, c := range res.Corrections {
		r.Corrections = append(r.Corrections, c.String())
	}

	r.Phases = append(r.Phases, phaseFrom(res.Dual.Phase1, 0))
	if res.Dual.Phase2 != nil {
		r.Phases = append(r.Phases, phaseFrom(*res.Dual.Phase2, res.Dual.Shift))
	}

	if s, ok := levelSpread(in, res.Output()); ok {
		r.Spread = &s
	}
	return r
}

// Write writes the report as indented JSON.
func Write(path string, r Run) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func phaseFrom(p leveler.PhaseResult, offset int) phaseJSON {
	out := phaseJSON{
		Phase:     p.Phase,
		Offset:    offset,
		BlockSize: p.Plan.BlockSize,
		FadeSize:  p.Plan.FadeSize,
		Blocks:    make([]blockJSON, len(p.Blocks)),
	}
	for i, b := range p.Blocks {
		out.Blocks[i] = blockJSON{
			Index:        b.Index,
			Start:        b.Window.Start,
			Stop:         b.Window.Stop,
			FadeIn:       b.Window.FadeIn,
			LoudnessLUFS: finite(b.LoudnessLUFS),
			DesiredDB:    b.DesiredDB,
			GainDB:       b.GainDB,
			Clamped:      b.Clamped,
			Silent:       b.Silent,
		}
	}
	return out
}

// levelSpread compares the 10–95 percentile range of the 3 s level envelope
// before and after processing.
func levelSpread(in, out leveler.Buffer) (spreadReport, bool) {
	frame := 3 * in.SampleRate
	hop := in.SampleRate
	inEnv := analysis.LevelEnvelopeDB(in.Samples, leveler.Channels, frame, hop)
	outEnv := analysis.LevelEnvelopeDB(out.Samples, leveler.Channels, frame, hop)
	if len(inEnv) < 2 || len(outEnv) < 2 {
		return spreadReport{}, false
	}
	return spreadReport{
		InputDB:  analysis.Spread(inEnv, -70, 0.10, 0.95),
		OutputDB: analysis.Spread(outEnv, -70, 0.10, 0.95),
	}, true
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
