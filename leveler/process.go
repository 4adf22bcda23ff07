package leveler

import (
	"fmt"

	"github.com/cwbudde/algo-leveler/analysis"
)

// Result is the outcome of a complete run.
type Result struct {
	Config      Config
	Corrections []Correction
	Dual        DualResult
	Final       NormalizeResult
}

// Output returns the final buffer.
func (r *Result) Output() Buffer { return r.Final.Output }

// Curves returns the gain curve of every pass that ran.
func (r *Result) Curves() []GainCurve { return r.Dual.Curves() }

// Process runs the whole pipeline on in: sanitize cfg, average in one or
// two passes, then normalize globally to the target. in is not modified.
func Process(in Buffer, cfg Config, opts ...Option) (*Result, error) {
	o := ApplyOptions(opts...)
	if in.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", in.SampleRate)
	}
	if in.Frames() == 0 {
		return nil, fmt.Errorf("empty input")
	}
	cfg, fixes := cfg.Sanitize()

	dual, err := Average(in, cfg, o.Meter, o.Observer)
	if err != nil {
		return nil, err
	}

	final := Normalize(dual.Output, cfg.TargetLUFS, o.Meter)
	if o.TruePeakOversample > 0 {
		tp, err := analysis.TruePeakDBTP(final.Output.Samples, Channels, final.Output.SampleRate, o.TruePeakOversample)
		if err != nil {
			return nil, fmt.Errorf("true peak: %w", err)
		}
		final.TruePeakDBTP = &tp
	}

	return &Result{
		Config:      cfg,
		Corrections: fixes,
		Dual:        dual,
		Final:       final,
	}, nil
}
