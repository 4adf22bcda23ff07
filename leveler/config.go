package leveler

import (
	"fmt"
	"math"
)

// Defaults applied when a configuration value is missing or out of range.
const (
	DefaultTargetLUFS      = -16.0
	DefaultDivisionSeconds = 8
	DefaultCrossfade       = 0.6
	DefaultMaxGainDB       = 2.0
)

// Config is the immutable session configuration of one run.
type Config struct {
	// TargetLUFS is the loudness goal. Must be negative.
	TargetLUFS float64
	// DivisionSeconds is the block length. Must be a positive even integer.
	DivisionSeconds int
	// Crossfade is the overlap into the previous block as a fraction of
	// the block length, in (0, 1).
	Crossfade float64
	// MaxGainDB bounds the per-block correction when ClampGain is set.
	MaxGainDB float64
	ClampGain bool
	// Phase2 enables the half-block shifted second pass.
	Phase2 bool
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		TargetLUFS:      DefaultTargetLUFS,
		DivisionSeconds: DefaultDivisionSeconds,
		Crossfade:       DefaultCrossfade,
		MaxGainDB:       DefaultMaxGainDB,
		ClampGain:       true,
		Phase2:          true,
	}
}

// Correction records one configuration value that was replaced during
// sanitizing. Corrections are informational; they never abort a run.
type Correction struct {
	Field   string
	Given   float64
	Applied float64
}

func (c Correction) String() string {
	return fmt.Sprintf("%s: %g replaced by %g", c.Field, c.Given, c.Applied)
}

// Sanitize returns a copy of c with every out-of-range value replaced:
// odd divisions are rounded up to the next even number, non-positive
// divisions, non-negative targets and crossfades outside (0, 1) fall back
// to their defaults, and the maximum gain is made non-negative.
func (c Config) Sanitize() (Config, []Correction) {
	var fixes []Correction
	out := c

	if out.DivisionSeconds <= 0 {
		fixes = append(fixes, Correction{"division", float64(c.DivisionSeconds), DefaultDivisionSeconds})
		out.DivisionSeconds = DefaultDivisionSeconds
	} else if out.DivisionSeconds%2 != 0 {
		out.DivisionSeconds++
		fixes = append(fixes, Correction{"division", float64(c.DivisionSeconds), float64(out.DivisionSeconds)})
	}

	if math.IsNaN(out.TargetLUFS) || math.IsInf(out.TargetLUFS, 0) || out.TargetLUFS >= 0 {
		fixes = append(fixes, Correction{"loudness", c.TargetLUFS, DefaultTargetLUFS})
		out.TargetLUFS = DefaultTargetLUFS
	}

	if math.IsNaN(out.Crossfade) || out.Crossfade <= 0 || out.Crossfade >= 1 {
		fixes = append(fixes, Correction{"crossfade", c.Crossfade, DefaultCrossfade})
		out.Crossfade = DefaultCrossfade
	}

	switch {
	case math.IsNaN(out.MaxGainDB):
		fixes = append(fixes, Correction{"maxgain", c.MaxGainDB, DefaultMaxGainDB})
		out.MaxGainDB = DefaultMaxGainDB
	case out.MaxGainDB < 0:
		out.MaxGainDB = math.Abs(out.MaxGainDB)
		fixes = append(fixes, Correction{"maxgain", c.MaxGainDB, out.MaxGainDB})
	}

	return out, fixes
}

// NewConfig sanitizes c. See Config.Sanitize.
func NewConfig(c Config) (Config, []Correction) {
	return c.Sanitize()
}

// BlockFrames returns the block length in frames at the given sample rate.
func (c Config) BlockFrames(sampleRate int) int {
	return c.DivisionSeconds * sampleRate
}
