// Package app wires flags, tables and reports into the fizzbuzz binary.
// Run is fully testable: it takes argv and both output streams and
// returns the process exit code.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/internal/cli"
	"github.com/katalvlaran/fizzbuzz/internal/report"
	"github.com/katalvlaran/fizzbuzz/internal/version"
	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
)

// Exit codes: 0 ok, 1 runtime failure, 2 usage error.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// renderer is the query surface every representation offers the CLI.
type renderer interface {
	sequence.Renderer
	Classify(pos int64) (pattern.Category, error)
	Period() int64
}

// Run executes the fizzbuzz CLI and returns its exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("fizzbuzz")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()

			return exitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()

		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "fizzbuzz version %s\n", version.Version)

		return exitOK
	}

	rules, err := cli.ParseRules(opts.Rules)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)

		return exitUsage
	}

	switch {
	case opts.Table:
		return runTable(outw, stderr, rules, opts.Format)
	case opts.Compare:
		return runCompare(outw, stderr, rules, opts.Format)
	case opts.Batches > 0:
		return runBatches(outw, stderr, rules, opts)
	default:
		return runRange(outw, stderr, rules, opts)
	}
}

// newRenderer builds the representation selected with -rep.
func newRenderer(rep string, rules []pattern.Rule) (renderer, error) {
	switch rep {
	case cli.RepCompact:
		return compact.New(rules)
	case cli.RepModular:
		return modular.New(rules)
	default:
		return pattern.New(rules)
	}
}

// fail maps a table or report error to stderr plus an exit code:
// construction and query validation are usage errors, the rest runtime.
func fail(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err)
	for _, usage := range []error{
		pattern.ErrNoRules, pattern.ErrInvalidDivisor, pattern.ErrEmptyLabel,
		pattern.ErrDuplicateDivisor, pattern.ErrTooManyRules,
		pattern.ErrPeriodTooLarge, pattern.ErrInvalidPosition,
		sequence.ErrInvalidRange, sequence.ErrBadBatch,
	} {
		if errors.Is(err, usage) {
			return exitUsage
		}
	}

	return exitRuntime
}

func runRange(out io.Writer, stderr io.Writer, rules []pattern.Rule, opts cli.Options) int {
	r, err := newRenderer(opts.Rep, rules)
	if err != nil {
		return fail(stderr, err)
	}
	values, err := sequence.Strings(r, opts.From, opts.To)
	if err != nil {
		return fail(stderr, err)
	}

	if opts.Format == cli.FormatJSON {
		doc := report.SequenceDoc{
			Rules:  report.NewRuleDocs(rules),
			From:   opts.From,
			To:     opts.To,
			Values: values,
		}
		if err = report.JSON(out, doc); err != nil {
			return fail(stderr, err)
		}

		return exitOK
	}
	if err = report.Sequence(out, values); err != nil {
		return fail(stderr, err)
	}

	return exitOK
}

func runTable(out io.Writer, stderr io.Writer, rules []pattern.Rule, format string) int {
	t, err := pattern.New(rules)
	if err != nil {
		return fail(stderr, err)
	}

	if format == cli.FormatJSON {
		if err = report.JSON(out, report.NewTableDoc(t)); err != nil {
			return fail(stderr, err)
		}

		return exitOK
	}
	if err = report.PatternTable(out, t); err != nil {
		return fail(stderr, err)
	}

	return exitOK
}

func runCompare(out io.Writer, stderr io.Writer, rules []pattern.Rule, format string) int {
	if format == cli.FormatJSON {
		doc, err := report.NewCompareDoc(rules)
		if err != nil {
			return fail(stderr, err)
		}
		if err = report.JSON(out, doc); err != nil {
			return fail(stderr, err)
		}

		return exitOK
	}
	if err := report.Compare(out, rules); err != nil {
		return fail(stderr, err)
	}

	return exitOK
}

func runBatches(out io.Writer, stderr io.Writer, rules []pattern.Rule, opts cli.Options) int {
	r, err := newRenderer(opts.Rep, rules)
	if err != nil {
		return fail(stderr, err)
	}
	batches, err := sequence.Batches(r, opts.Batches, opts.BatchSize, opts.Offset)
	if err != nil {
		return fail(stderr, err)
	}

	if opts.Format == cli.FormatJSON {
		doc := report.BatchesDoc{
			Rules:   report.NewRuleDocs(rules),
			Offset:  opts.Offset,
			Batches: report.NewBatchDocs(batches),
		}
		if err = report.JSON(out, doc); err != nil {
			return fail(stderr, err)
		}

		return exitOK
	}
	if err = report.Batches(out, batches); err != nil {
		return fail(stderr, err)
	}

	return exitOK
}
