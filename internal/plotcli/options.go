// Package plotcli parses the fizzbuzz-plot command line.
package plotcli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/fizzbuzz/internal/cli"
	"github.com/katalvlaran/fizzbuzz/internal/version"
)

// Plot kinds selectable with -plot.
const (
	PlotWaveform = "waveform"
	PlotHeatmap  = "heatmap"
	PlotSpectrum = "spectrum"
	PlotBatches  = "batches"
	PlotCompact  = "compact"
	PlotModular  = "modular"
)

// Options holds all fizzbuzz-plot flags after validation.
type Options struct {
	Rules     string
	Plot      string
	Out       string
	Periods   int   // waveform span
	Size      int   // heatmap grid edge
	N         int   // spectrum window
	Batches   int   // batched figure rows
	BatchSize int   // positions per batch row
	Offset    int64 // position offset before batch 0
	Version   bool
}

// NewFlagSet returns a configured FlagSet with custom usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(),
			`%s: render divisibility tables as PNG figures

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}

	return fs
}

// ParseArgs registers and parses all flags, returning a validated Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Rules, "rules", cli.DefaultRulesSpec, "divisor rules as D=Label,... ["+cli.DefaultRulesSpec+"]")
	fs.StringVar(&opt.Plot, "plot", PlotWaveform, "figure: waveform | heatmap | spectrum | batches | compact | modular ["+PlotWaveform+"]")
	fs.StringVar(&opt.Out, "o", "", "output PNG path [*]")
	fs.IntVar(&opt.Periods, "periods", 5, "periods drawn by the waveform [5]")
	fs.IntVar(&opt.Size, "size", 20, "edge of the heatmap grid [20]")
	fs.IntVar(&opt.N, "n", 1000, "samples analyzed for the spectrum [1000]")
	fs.IntVar(&opt.Batches, "batches", 3, "rows in the batched figure [3]")
	fs.IntVar(&opt.BatchSize, "batch-size", 10, "positions per batch row [10]")
	fs.Int64Var(&opt.Offset, "offset", 0, "position offset before batch 0 [0]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch opt.Plot {
	case PlotWaveform, PlotHeatmap, PlotSpectrum, PlotBatches, PlotCompact, PlotModular:
	default:
		return opt, fmt.Errorf("invalid -plot %q", opt.Plot)
	}
	if opt.Out == "" {
		return opt, errors.New("-o output path is required")
	}
	if opt.Periods < 1 || opt.Size < 1 || opt.N < 2 {
		return opt, errors.New("-periods and -size must be ≥ 1, -n must be ≥ 2")
	}
	if opt.Batches < 1 || opt.BatchSize < 1 || opt.Offset < 0 {
		return opt, errors.New("-batches and -batch-size must be ≥ 1, -offset must be ≥ 0")
	}

	return opt, nil
}
