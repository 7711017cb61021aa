// Package plotapp wires flags, tables and the viz package into the
// fizzbuzz-plot binary.
package plotapp

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/internal/cli"
	"github.com/katalvlaran/fizzbuzz/internal/plotcli"
	"github.com/katalvlaran/fizzbuzz/internal/version"
	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
	"github.com/katalvlaran/fizzbuzz/spectrum"
	"github.com/katalvlaran/fizzbuzz/viz"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// Run executes the fizzbuzz-plot CLI and returns its exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := plotcli.NewFlagSet("fizzbuzz-plot")
	fs.SetOutput(io.Discard)

	opts, err := plotcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()

			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()

		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "fizzbuzz-plot version %s\n", version.Version)

		return exitOK
	}

	rules, err := cli.ParseRules(opts.Rules)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)

		return exitUsage
	}

	if err = render(opts, rules); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		if errors.Is(err, viz.ErrNotTwoRules) || errors.Is(err, viz.ErrBadSpan) ||
			errors.Is(err, sequence.ErrBadBatch) {
			return exitUsage
		}

		return exitRuntime
	}
	_, _ = fmt.Fprintf(stdout, "wrote %s\n", opts.Out)

	return exitOK
}

// render builds the requested table and draws one figure.
func render(opts plotcli.Options, rules []pattern.Rule) error {
	switch opts.Plot {
	case plotcli.PlotCompact:
		t, err := compact.New(rules)
		if err != nil {
			return err
		}

		return viz.CompactMatrix(t, opts.Out)
	case plotcli.PlotModular:
		t, err := modular.New(rules)
		if err != nil {
			return err
		}

		return viz.ModularMatrix(t, opts.Out)
	}

	t, err := pattern.New(rules)
	if err != nil {
		return err
	}
	switch opts.Plot {
	case plotcli.PlotHeatmap:
		return viz.Heatmap(t, opts.Size, opts.Out)
	case plotcli.PlotSpectrum:
		res, err := spectrum.Analyze(t, opts.N)
		if err != nil {
			return err
		}

		return viz.Spectrum(res, opts.Out)
	case plotcli.PlotBatches:
		return viz.Batches(t, opts.Batches, opts.BatchSize, opts.Offset, opts.Out)
	default:
		return viz.Waveform(t, opts.Periods, opts.Out)
	}
}
