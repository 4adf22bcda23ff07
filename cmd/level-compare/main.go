package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-leveler/analysis"
	"github.com/cwbudde/algo-leveler/internal/wavio"
	"github.com/cwbudde/algo-leveler/leveler"
)

type comparison struct {
	ReferencePath string                `json:"reference_path"`
	CandidatePath string                `json:"candidate_path"`
	RefLUFS       *float64              `json:"ref_lufs"`
	CandLUFS      *float64              `json:"cand_lufs"`
	RefPeakDBFS   *float64              `json:"ref_peak_dbfs"`
	CandPeakDBFS  *float64              `json:"cand_peak_dbfs"`
	Levels        analysis.LevelMetrics `json:"levels"`
}

func main() {
	referencePath := flag.String("reference", "", "Original stereo WAV path")
	candidatePath := flag.String("candidate", "", "Processed WAV path; defaults to <reference>_new.wav")
	frameSec := flag.Float64("frame", 3.0, "Level envelope window in seconds")
	jsonOut := flag.Bool("json", false, "Print metrics as JSON")
	flag.Parse()

	if *referencePath == "" {
		die("missing -reference")
	}
	if *candidatePath == "" {
		*candidatePath = wavio.OutputPath(*referencePath)
	}

	ref, err := wavio.ReadStereo(*referencePath)
	if err != nil {
		die("failed to read reference: %v", err)
	}
	cand, err := wavio.ReadStereo(*candidatePath)
	if err != nil {
		die("failed to read candidate: %v", err)
	}
	if ref.SampleRate != cand.SampleRate {
		die("sample rate mismatch: %d vs %d Hz", ref.SampleRate, cand.SampleRate)
	}

	c := compare(*referencePath, *candidatePath, ref, cand, *frameSec)
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			die("json encode failed: %v", err)
		}
		return
	}

	m := c.Levels
	fmt.Printf("Reference frames: %d\n", m.ReferenceFrames)
	fmt.Printf("Candidate frames: %d\n", m.CandidateFrames)
	fmt.Printf("Windows:          %d × %.1f s\n", m.EnvelopeFrames, m.FrameSeconds)
	fmt.Println()
	fmt.Printf("                 Reference    Candidate\n")
	fmt.Printf("─────────────────────────────────────────\n")
	fmt.Printf("%-16s %-12s %-12s\n", "Integrated LUFS", fmtDB(c.RefLUFS), fmtDB(c.CandLUFS))
	fmt.Printf("%-16s %-12s %-12s\n", "Sample peak", fmtDB(c.RefPeakDBFS), fmtDB(c.CandPeakDBFS))
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "Level spread dB", m.RefSpreadDB, m.CandSpreadDB)
	fmt.Printf("%-16s %-12.2f %-12.2f\n", "Max step dB", m.RefMaxStepDB, m.CandMaxStepDB)
	fmt.Printf("─────────────────────────────────────────\n")
	fmt.Printf("Mean gain:        %+.2f dB\n", m.MeanGainDB)
	fmt.Printf("Gain deviation:   %.2f dB\n", m.GainDeviationDB)
}

func compare(refPath, candPath string, ref, cand leveler.Buffer, frameSec float64) comparison {
	meter := leveler.BS1770Meter{}
	return comparison{
		ReferencePath: refPath,
		CandidatePath: candPath,
		RefLUFS:       finite(meter.Integrated(ref)),
		CandLUFS:      finite(meter.Integrated(cand)),
		RefPeakDBFS:   finite(analysis.SamplePeakDBFS(ref.Samples)),
		CandPeakDBFS:  finite(analysis.SamplePeakDBFS(cand.Samples)),
		Levels:        analysis.CompareLevels(ref.Samples, cand.Samples, leveler.Channels, ref.SampleRate, frameSec),
	}
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func fmtDB(v *float64) string {
	if v == nil {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", *v)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
