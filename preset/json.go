package preset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-leveler/leveler"
)

// File is the JSON schema for session presets. Absent fields keep the
// value they already have.
type File struct {
	TargetLUFS      *float64 `json:"target_lufs"`
	DivisionSeconds *int     `json:"division_seconds"`
	Crossfade       *float64 `json:"crossfade"`
	MaxGainDB       *float64 `json:"max_gain_db"`
	ClampGain       *bool    `json:"clamp_gain"`
	Phase2          *bool    `json:"phase2"`
}

// LoadJSON loads a preset JSON file and applies it on top of the default
// configuration. Out-of-range values are kept as given; they are corrected
// later by leveler.Config.Sanitize like any other input.
func LoadJSON(path string) (leveler.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return leveler.Config{}, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return leveler.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := leveler.DefaultConfig()
	if err := ApplyFile(&cfg, &f); err != nil {
		return leveler.Config{}, err
	}
	return cfg, nil
}

// ApplyFile applies a parsed preset file onto an existing configuration.
func ApplyFile(dst *leveler.Config, f *File) error {
	if dst == nil {
		return fmt.Errorf("nil destination config")
	}
	if f == nil {
		return nil
	}

	if f.TargetLUFS != nil {
		dst.TargetLUFS = *f.TargetLUFS
	}
	if f.DivisionSeconds != nil {
		dst.DivisionSeconds = *f.DivisionSeconds
	}
	if f.Crossfade != nil {
		dst.Crossfade = *f.Crossfade
	}
	if f.MaxGainDB != nil {
		dst.MaxGainDB = *f.MaxGainDB
	}
	if f.ClampGain != nil {
		dst.ClampGain = *f.ClampGain
	}
	if f.Phase2 != nil {
		dst.Phase2 = *f.Phase2
	}
	return nil
}

// FromConfig returns a File with every field set from cfg.
func FromConfig(cfg leveler.Config) File {
	return File{
		TargetLUFS:      &cfg.TargetLUFS,
		DivisionSeconds: &cfg.DivisionSeconds,
		Crossfade:       &cfg.Crossfade,
		MaxGainDB:       &cfg.MaxGainDB,
		ClampGain:       &cfg.ClampGain,
		Phase2:          &cfg.Phase2,
	}
}

// SaveJSON writes cfg as an indented preset file.
func SaveJSON(path string, cfg leveler.Config) error {
	b, err := json.MarshalIndent(FromConfig(cfg), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
