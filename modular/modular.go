package modular

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/katalvlaran/fizzbuzz/internal/tensor"
	"github.com/katalvlaran/fizzbuzz/pattern"
)

// Table is the remainder-indexed representation: one axis per rule with
// extent equal to the divisor. Immutable once built; safe for concurrent
// readers.
type Table struct {
	rules   []pattern.Rule
	period  int64
	cells   *tensor.Dense
	strides []int64
	decoder []string
}

// New builds a modular table for the given ordered rule set.
//
// The cell at remainder tuple (r_0, …, r_{k-1}) holds the category whose
// bit k is set exactly when r_k == 0. Every tuple gets a well-defined
// category, including tuples no position can reach when divisors share
// factors.
//
// Validation is shared with pattern.New; rule sets whose cell product
// Π divisors exceeds pattern.MaxPeriod fail with pattern.ErrPeriodTooLarge.
// Complexity: O(Π divisors · k) time and memory.
func New(rules []pattern.Rule) (*Table, error) {
	period, err := pattern.PeriodOf(rules)
	if err != nil {
		return nil, err
	}

	k := len(rules)
	extents := make([]int64, k)
	for i, r := range rules {
		extents[i] = r.Divisor
	}
	cells, err := tensor.New(extents)
	if err != nil {
		if errors.Is(err, tensor.ErrTooLarge) {
			return nil, pattern.ErrPeriodTooLarge
		}

		return nil, err
	}

	// Walk every remainder tuple odometer-style.
	idx := make([]int64, k)
	for {
		var c int
		for bit, r := range idx {
			if r == 0 {
				c |= 1 << bit
			}
		}
		if err = cells.Set(c, idx...); err != nil {
			return nil, err
		}

		axis := k - 1
		for ; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < extents[axis] {
				break
			}
			idx[axis] = 0
		}
		if axis < 0 {
			break
		}
	}

	// Row-major strides, first rule slowest; kept locally so Classify
	// needs no per-call index slice.
	strides := make([]int64, k)
	stride := int64(1)
	for i := k - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= extents[i]
	}

	return &Table{
		rules:   pattern.CloneRules(rules),
		period:  period,
		cells:   cells,
		strides: strides,
		decoder: pattern.BuildDecoder(rules),
	}, nil
}

// Period returns the LCM of the rule divisors, the repeat interval of the
// classification. Note Size() may exceed it for non-coprime rule sets.
func (t *Table) Period() int64 { return t.period }

// Size returns the cell count: the product of all divisors.
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

// At returns the category stored at the given remainder tuple, one value
// in [0, divisor_k) per rule in declaration order.
func (t *Table) At(remainders ...int64) (pattern.Category, error) {
	v, err := t.cells.At(remainders...)
	if err != nil {
		return 0, err
	}

	return pattern.Category(v), nil
}

// Classify returns the category of a 1-indexed position: k modulo tests
// form the remainder tuple, one lookup reads the cell.
// Complexity: O(k). Errors: pattern.ErrInvalidPosition if pos < 1.
func (t *Table) Classify(pos int64) (pattern.Category, error) {
	if pos < 1 {
		return 0, pattern.ErrInvalidPosition
	}
	var off int64
	for i, r := range t.rules {
		off += (pos % r.Divisor) * t.strides[i]
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
	rem := new(big.Int)
	div := new(big.Int)
	for i, r := range t.rules {
		rem.Mod(pos, div.SetInt64(r.Divisor))
		off += rem.Int64() * t.strides[i]
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
