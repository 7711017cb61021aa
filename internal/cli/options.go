// Package cli parses the fizzbuzz command line into a validated Options
// struct. Rule sets are written inline as "divisor=Label" pairs, e.g.
// -rules "3=Fizz,5=Buzz,7=Bazz".
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fizzbuzz/internal/version"
	"github.com/katalvlaran/fizzbuzz/pattern"
)

// Table representations selectable with -rep.
const (
	RepVector  = "vector"
	RepCompact = "compact"
	RepModular = "modular"
)

// Output formats selectable with -format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultRulesSpec is the rule string equivalent of pattern.DefaultRules.
const DefaultRulesSpec = "3=Fizz,5=Buzz"

// Options holds all CLI flags after validation.
type Options struct {
	// Rule set
	Rules string

	// Range rendering
	N    int64 // -n X is shorthand for -from 1 -to X
	From int64
	To   int64

	// Modes
	Table   bool // dump the pattern table instead of rendering a range
	Compare bool // representation property table + equivalence check

	// Batched rendering
	Batches   int
	BatchSize int
	Offset    int64

	// Representation & output
	Rep    string
	Format string

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(),
			`%s: FizzBuzz via lookup tables — no branches, just indexing

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

	fs.StringVar(&opt.Rules, "rules", DefaultRulesSpec, "divisor rules as D=Label,... ["+DefaultRulesSpec+"]")
	fs.Int64Var(&opt.N, "n", 0, "render positions 1..N (shorthand for -from 1 -to N) [0]")
	fs.Int64Var(&opt.From, "from", 0, "first position to render [0]")
	fs.Int64Var(&opt.To, "to", 0, "last position to render [0]")
	fs.BoolVar(&opt.Table, "table", false, "dump the pattern table for one period [false]")
	fs.BoolVar(&opt.Compare, "compare", false, "compare the table representations [false]")
	fs.IntVar(&opt.Batches, "batches", 0, "number of batches to render (0 = unbatched) [0]")
	fs.IntVar(&opt.BatchSize, "batch-size", 0, "positions per batch [0]")
	fs.Int64Var(&opt.Offset, "offset", 0, "position offset before batch 0 [0]")
	fs.StringVar(&opt.Rep, "rep", RepVector, "representation: vector | compact | modular ["+RepVector+"]")
	fs.StringVar(&opt.Format, "format", FormatText, "output format: text | json ["+FormatText+"]")
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

	// -n expands to a 1-based range unless an explicit range was given.
	if opt.N != 0 {
		if opt.From != 0 || opt.To != 0 {
			return opt, errors.New("-n conflicts with -from/-to")
		}
		opt.From, opt.To = 1, opt.N
	}

	// Validation
	if opt.Rep != RepVector && opt.Rep != RepCompact && opt.Rep != RepModular {
		return opt, fmt.Errorf("invalid -rep %q", opt.Rep)
	}
	if opt.Format != FormatText && opt.Format != FormatJSON {
		return opt, fmt.Errorf("invalid -format %q", opt.Format)
	}
	if opt.Batches < 0 || opt.BatchSize < 0 || opt.Offset < 0 {
		return opt, errors.New("-batches, -batch-size and -offset must be ≥ 0")
	}
	if (opt.Batches > 0) != (opt.BatchSize > 0) {
		return opt, errors.New("-batches and -batch-size must be supplied together")
	}
	if opt.From != 0 || opt.To != 0 {
		if opt.From < 1 || opt.To < opt.From {
			return opt, errors.New("range must satisfy 1 ≤ from ≤ to")
		}
	}

	modes := 0
	if opt.Table {
		modes++
	}
	if opt.Compare {
		modes++
	}
	if opt.Batches > 0 {
		modes++
	}
	if opt.To > 0 {
		modes++
	}
	if modes == 0 {
		return opt, errors.New("pick a mode: -n/-from/-to, -table, -compare or -batches")
	}
	if modes > 1 {
		return opt, errors.New("-table, -compare, -batches and range rendering are mutually exclusive")
	}

	return opt, nil
}

// ParseRules converts a "D=Label,..." spec into an ordered rule slice.
// Structural rule validation (positivity, duplicates, caps) stays with the
// table constructors; this only parses the syntax.
func ParseRules(spec string) ([]pattern.Rule, error) {
	parts := strings.Split(spec, ",")
	rules := make([]pattern.Rule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		div, label, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("rule %q: want divisor=Label", part)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(div), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("rule %q: bad divisor: %w", part, err)
		}
		rules = append(rules, pattern.Rule{Divisor: d, Label: strings.TrimSpace(label)})
	}
	if len(rules) == 0 {
		return nil, errors.New("empty rule spec")
	}

	return rules, nil
}
