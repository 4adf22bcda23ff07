package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-leveler/leveler"
)

// Progress prints per-block diagnostics. A quiet Progress prints nothing.
type Progress struct {
	W      io.Writer
	Quiet  bool
	Phase2 bool
}

// Observe is a leveler.Observer.
func (p *Progress) Observe(ev leveler.BlockEvent) {
	if p.Quiet {
		return
	}
	prefix := ""
	if ev.Phase == 2 {
		prefix = "--"
	}
	if ev.Index == 0 {
		switch {
		case ev.Phase == 2:
			fmt.Fprintln(p.W, TitleStyle.Render("Phase 2, shifting by half blocksize"))
		case p.Phase2:
			fmt.Fprintln(p.W, TitleStyle.Render("Phase 1"))
		}
	}
	fmt.Fprintf(p.W, "%sProcessing block %d of %d\n", prefix, ev.Index+1, ev.Count)

	r := ev.Result
	line := fmt.Sprintf("%sBlock loudness (LUFS): %s", prefix, FormatLUFS(r.LoudnessLUFS))
	switch {
	case r.Silent:
		line += KeyStyle.Render("  (silent, no correction)")
	case r.Clamped:
		line += NoticeStyle.Render(fmt.Sprintf("  (gain %+.2f dB clamped to %+.2f dB)", r.DesiredDB, r.GainDB))
	}
	fmt.Fprintln(p.W, line)
}

// PrintSettings prints the effective configuration.
func PrintSettings(w io.Writer, cfg leveler.Config, sampleRate int) {
	PrintKV(w, "Loudness goal", fmt.Sprintf("%g LUFS", cfg.TargetLUFS))
	PrintKV(w, "Division", fmt.Sprintf("%d seconds", cfg.DivisionSeconds))
	PrintKV(w, "Crossfade", fmt.Sprintf("%g", cfg.Crossfade))
	if cfg.ClampGain {
		PrintKV(w, "Max gain", fmt.Sprintf("%g dB", cfg.MaxGainDB))
	} else {
		PrintKV(w, "Max gain", "unlimited")
	}
	if sampleRate > 0 {
		PrintKV(w, "Sample rate", fmt.Sprintf("%d Hz", sampleRate))
	}
}

// PrintCorrections prints a notice for every configuration value that was
// replaced.
func PrintCorrections(w io.Writer, fixes []leveler.Correction) {
	for _, c := range fixes {
		fmt.Fprintf(w, "%s %s\n", NoticeStyle.Render("Notice:"), c.String())
	}
}

// PrintPeak prints the final sample peak and, when available, true peak.
func PrintPeak(w io.Writer, final leveler.NormalizeResult) {
	style := ValueStyle
	if final.Clipped {
		style = ClipStyle
	}
	fmt.Fprintf(w, "Sample peak at %s dBFS\n", style.Render(fmt.Sprintf("%.3f", final.PeakDBFS)))
	if final.TruePeakDBTP != nil {
		fmt.Fprintf(w, "True peak at %s dBTP\n", style.Render(fmt.Sprintf("%.3f", *final.TruePeakDBTP)))
	}
	if final.Clipped {
		fmt.Fprintln(w, ClipStyle.Render("Output exceeds full scale; apply a limiter downstream."))
	}
}

// FormatLUFS formats a loudness value, spelling out silence.
func FormatLUFS(v float64) string {
	if math.IsInf(v, -1) || math.IsNaN(v) {
		return "-inf"
	}
	return fmt.Sprintf("%.3f", v)
}
