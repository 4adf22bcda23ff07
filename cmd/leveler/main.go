package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-leveler/internal/cli"
	"github.com/cwbudde/algo-leveler/internal/report"
	"github.com/cwbudde/algo-leveler/internal/wavio"
	"github.com/cwbudde/algo-leveler/leveler"
	"github.com/cwbudde/algo-leveler/preset"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Input     string  `arg:"" name:"input" help:"Stereo input file (*.wav)" type:"path" optional:""`
	Division  int     `short:"d" name:"division" default:"8" help:"Block division in EVEN seconds"`
	Loudness  float64 `short:"l" name:"loudness" default:"-16" help:"Target loudness in LUFS"`
	MaxGain   float64 `short:"m" name:"maxgain" default:"2.0" help:"Maximum positive or negative gain per block in dB"`
	Crossfade float64 `short:"x" name:"crossfade" default:"0.6" help:"Block crossfade value between 0 and 1"`
	NoPhase2  bool    `short:"p" name:"nophase2" help:"Skip phase 2"`
	NoClamp   bool    `name:"noclamp" help:"Do not limit the per-block gain"`
	Quiet     bool    `short:"q" name:"quiet" help:"Suppress output text"`
	Output    string  `short:"o" name:"output" type:"path" help:"Output path (default: <input>_new.wav)"`
	Preset    string  `name:"preset" type:"path" help:"JSON preset with session settings; flags given explicitly override it"`
	Report    string  `name:"report" type:"path" help:"Write a JSON run report to this path"`
	Plot      bool    `name:"plot" help:"Print a stem plot of the per-block gain"`
	TruePeak  int     `name:"truepeak" default:"4" help:"Oversampling factor for the true-peak estimate, 0 disables it"`
	Version   bool    `short:"v" help:"Show version information"`
}

func main() {
	args := &CLI{}
	ctx := kong.Parse(args,
		kong.Name("leveler"),
		kong.Description("Adaptive loudness averaging"),
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter("Adaptive loudness averaging for stereo recordings")),
	)
	os.Exit(run(args, setFlags(ctx), os.Stdout))
}

// setFlags returns the names of flags given on the command line.
func setFlags(ctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, f := range ctx.Flags() {
		if f.Set {
			set[f.Name] = true
		}
	}
	return set
}

func run(args *CLI, set map[string]bool, stdout io.Writer) int {
	if args.Version {
		cli.PrintVersion(stdout, version)
		return 0
	}
	if args.Input == "" {
		cli.PrintError("No input file specified")
		return 1
	}

	cfg, err := buildConfig(args, set)
	if err != nil {
		cli.PrintError(err.Error())
		return 1
	}
	cfg, fixes := cfg.Sanitize()

	out := stdout
	if args.Quiet {
		out = io.Discard
	}
	cli.PrintCorrections(out, fixes)

	in, err := wavio.ReadStereo(args.Input)
	if err != nil {
		cli.PrintError(err.Error())
		return 1
	}
	cli.PrintSettings(out, cfg, in.SampleRate)

	progress := &cli.Progress{W: out, Quiet: args.Quiet, Phase2: cfg.Phase2}
	opts := []leveler.Option{leveler.WithObserver(progress.Observe)}
	if args.TruePeak > 0 {
		opts = append(opts, leveler.WithTruePeak(args.TruePeak))
	}
	res, err := leveler.Process(in, cfg, opts...)
	if err != nil {
		cli.PrintError(err.Error())
		return 1
	}
	res.Corrections = fixes

	outPath := args.Output
	if outPath == "" {
		outPath = wavio.OutputPath(args.Input)
	}
	if err := wavio.WriteStereo24(outPath, res.Output()); err != nil {
		cli.PrintError(fmt.Sprintf("writing %s: %v", outPath, err))
		return 1
	}

	cli.PrintPeak(out, res.Final)
	if args.Plot {
		for _, c := range res.Curves() {
			fmt.Fprint(stdout, cli.StemPlot(c, 6))
		}
	}
	if args.Report != "" {
		if err := report.Write(args.Report, report.Build(args.Input, outPath, in, res)); err != nil {
			cli.PrintError(fmt.Sprintf("writing report: %v", err))
			return 1
		}
	}
	fmt.Fprintln(out, "Done!")
	return 0
}

// buildConfig starts from the preset, if any, and applies every flag that
// was given explicitly. Without a preset all flag values apply.
func buildConfig(args *CLI, set map[string]bool) (leveler.Config, error) {
	cfg := leveler.DefaultConfig()
	usePreset := args.Preset != ""
	if usePreset {
		var err error
		cfg, err = preset.LoadJSON(args.Preset)
		if err != nil {
			return leveler.Config{}, fmt.Errorf("loading preset: %w", err)
		}
	}
	apply := func(name string) bool { return !usePreset || set[name] }

	if apply("division") {
		cfg.DivisionSeconds = args.Division
	}
	if apply("loudness") {
		cfg.TargetLUFS = args.Loudness
	}
	if apply("maxgain") {
		cfg.MaxGainDB = args.MaxGain
	}
	if apply("crossfade") {
		cfg.Crossfade = args.Crossfade
	}
	if apply("nophase2") {
		cfg.Phase2 = !args.NoPhase2
	}
	if apply("noclamp") {
		cfg.ClampGain = !args.NoClamp
	}
	return cfg, nil
}
