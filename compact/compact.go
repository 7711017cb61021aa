package compact

import (
	"math/big"
	"strconv"

	"github.com/katalvlaran/fizzbuzz/internal/tensor"
	"github.com/katalvlaran/fizzbuzz/pattern"
)

// Table is the 2^k-cell binary-indexed representation. Immutable once
// built; safe for concurrent readers.
type Table struct {
	rules   []pattern.Rule
	period  int64
	cells   *tensor.Dense
	decoder []string
}

// New builds a compact table for the given ordered rule set.
//
// Every axis has extent 2 (flag: divisor does not / does divide), the
// first declared rule varies slowest. The cell at flag tuple f holds the
// category whose bit k equals f[k] — the value is determined by the index
// alone, no position enumeration is needed.
//
// Validation and sentinels are shared with pattern.New, including the
// period cap, so the two representations accept exactly the same rule sets.
// Complexity: O(2^k · k) time and memory.
func New(rules []pattern.Rule) (*Table, error) {
	period, err := pattern.PeriodOf(rules)
	if err != nil {
		return nil, err
	}

	k := len(rules)
	extents := make([]int64, k)
	for i := range extents {
		extents[i] = 2
	}
	cells, err := tensor.New(extents)
	if err != nil {
		return nil, err
	}

	idx := make([]int64, k)
	for c := 0; c < 1<<k; c++ {
		for bit := 0; bit < k; bit++ {
			idx[bit] = int64(c >> bit & 1)
		}
		if err = cells.Set(c, idx...); err != nil {
			return nil, err
		}
	}

	return &Table{
		rules:   pattern.CloneRules(rules),
		period:  period,
		cells:   cells,
		decoder: pattern.BuildDecoder(rules),
	}, nil
}

// Period returns the LCM of the rule divisors. The compact table does not
// store one period of cells, but the classification it encodes still
// repeats at this interval.
func (t *Table) Period() int64 { return t.period }

// Size returns the cell count: always 2^k for k rules.
func (t *Table) Size() int { return int(t.cells.Len()) }

// Rules returns a copy of the ordered rule set.
func (t *Table) Rules() []pattern.Rule { return pattern.CloneRules(t.rules) }

// Labels returns a copy of the decoder, index c → display string of
// category c.
func (t *Table) Labels() []string {
	cp := make([]string, len(t.decoder))
	copy(cp, t.decoder)

	return cp
}

// At returns the category stored at the given flag tuple, one 0/1 value
// per rule in declaration order.
func (t *Table) At(flags ...int64) (pattern.Category, error) {
	v, err := t.cells.At(flags...)
	if err != nil {
		return 0, err
	}

	return pattern.Category(v), nil
}

// Classify returns the category of a 1-indexed position: k modulo tests
// build the flag tuple, one tensor lookup reads the cell.
// Complexity: O(k). Errors: pattern.ErrInvalidPosition if pos < 1.
func (t *Table) Classify(pos int64) (pattern.Category, error) {
	if pos < 1 {
		return 0, pattern.ErrInvalidPosition
	}
	var off int64
	stride := t.cells.Len()
	for _, r := range t.rules {
		stride >>= 1
		if pos%r.Divisor == 0 {
			off += stride
		}
	}

	return pattern.Category(t.cells.AtOffset(off)), nil
}

// ClassifyBig is Classify for arbitrary-precision positions.
// pos is not mutated.
func (t *Table) ClassifyBig(pos *big.Int) (pattern.Category, error) {
	if pos == nil || pos.Sign() < 1 {
		return 0, pattern.ErrInvalidPosition
	}
	var off int64
	stride := t.cells.Len()
	rem := new(big.Int)
	div := new(big.Int)
	for _, r := range t.rules {
		stride >>= 1
		if rem.Mod(pos, div.SetInt64(r.Divisor)).Sign() == 0 {
			off += stride
		}
	}

	return pattern.Category(t.cells.AtOffset(off)), nil
}

// Decode returns the display string of a category; total over [0, 2^k),
// "" outside that range.
func (t *Table) Decode(c pattern.Category) string {
	if c < 0 || int(c) >= len(t.decoder) {
		return ""
	}

	return t.decoder[c]
}

// Render returns the display value of a 1-indexed position, matching
// pattern.Table.Render exactly for every position.
func (t *Table) Render(pos int64) (string, error) {
	c, err := t.Classify(pos)
	if err != nil {
		return "", err
	}
	if c.None() {
		return strconv.FormatInt(pos, 10), nil
	}

	return t.decoder[c], nil
}

// RenderBig is Render for arbitrary-precision positions.
func (t *Table) RenderBig(pos *big.Int) (string, error) {
	c, err := t.ClassifyBig(pos)
	if err != nil {
		return "", err
	}
	if c.None() {
		return pos.String(), nil
	}

	return t.decoder[c], nil
}
