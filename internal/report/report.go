// Package report renders query results as text or JSON for the fizzbuzz
// binary. Text goes through an english message printer so large periods
// and positions stay readable; JSON uses sonic with stable field names.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
)

// comparePeriods is how many full periods the equivalence sweep covers.
const comparePeriods = 3

// printer formats integers with english digit grouping ("360,360").
var printer = message.NewPrinter(message.MatchLanguage("en"))

// Sequence writes rendered values one per line — the classic transcript.
func Sequence(w io.Writer, values []string) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}

// PatternTable dumps one full period of a pattern table as three aligned
// rows: position, category, rendered output.
func PatternTable(w io.Writer, t *pattern.Table) error {
	if _, err := printer.Fprintf(w, "Pattern table (period = %d)\n", t.Period()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("=", 50)); err != nil {
		return err
	}

	values, err := sequence.Strings(t, 1, t.Period())
	if err != nil {
		return err
	}

	// Column width fits the widest rendered value.
	width := 1
	for _, v := range values {
		if len(v) > width {
			width = len(v)
		}
	}

	var pos, cat, out strings.Builder
	for i, v := range values {
		pos.WriteString(fmt.Sprintf(" %*d", width, i+1))
		cat.WriteString(fmt.Sprintf(" %*d", width, t.At(i)))
		out.WriteString(fmt.Sprintf(" %*s", width, v))
	}
	if _, err = fmt.Fprintf(w, "Position: %s\n", pos.String()); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "Category: %s\n", cat.String()); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "Output:   %s\n", out.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "This pattern repeats forever.")

	return err
}

// Compare builds all three representations for one rule set, sweeps a few
// periods asserting identical output, and writes a property table.
// A mismatch is reported as an error; it would mean a table bug, not bad input.
func Compare(w io.Writer, rules []pattern.Rule) error {
	pt, err := pattern.New(rules)
	if err != nil {
		return err
	}
	ct, err := compact.New(rules)
	if err != nil {
		return err
	}
	mt, err := modular.New(rules)
	if err != nil {
		return err
	}

	specs := make([]string, len(rules))
	for i, r := range rules {
		specs[i] = fmt.Sprintf("%d=%s", r.Divisor, r.Label)
	}
	if _, err = fmt.Fprintf(w, "Representation comparison (rules: %s)\n", strings.Join(specs, ", ")); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, strings.Repeat("=", 70)); err != nil {
		return err
	}

	k := len(rules)
	rows := []struct {
		name   string
		cells  int
		lookup string
	}{
		{"vector", pt.Size(), "1 modulo + 1 index"},
		{"compact", ct.Size(), fmt.Sprintf("%d modulo(s) + 1 index", k)},
		{"modular", mt.Size(), fmt.Sprintf("%d modulo(s) + 1 index", k)},
	}
	if _, err = fmt.Fprintf(w, "%-15s %12s   %s\n", "representation", "cells", "lookup cost"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err = printer.Fprintf(w, "%-15s %12d   %s\n", row.name, row.cells, row.lookup); err != nil {
			return err
		}
	}

	span := comparePeriods * pt.Period()
	for p := int64(1); p <= span; p++ {
		a, err := pt.Render(p)
		if err != nil {
			return err
		}
		b, err := ct.Render(p)
		if err != nil {
			return err
		}
		c, err := mt.Render(p)
		if err != nil {
			return err
		}
		if a != b || a != c {
			return fmt.Errorf("report: representations disagree at position %d: %q / %q / %q", p, a, b, c)
		}
	}
	_, err = printer.Fprintf(w, "Equivalence over %d periods (%d positions): OK\n", comparePeriods, span)

	return err
}

// Batches writes each batch on one line: index, covered range, values.
func Batches(w io.Writer, batches []sequence.Batch) error {
	for i, b := range batches {
		if _, err := printer.Fprintf(w, "Batch %d (%d-%d): %s\n",
			i, b.Start, b.End, strings.Join(b.Values, " ")); err != nil {
			return err
		}
	}

	return nil
}
