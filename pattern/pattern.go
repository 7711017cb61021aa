package pattern

import (
	"math/big"
	"strconv"
)

// Table is the period-sized lookup representation: one Category per
// position within a single period, plus the precomputed decoder.
// It is immutable once built and safe for concurrent readers.
type Table struct {
	rules   []Rule
	period  int64
	cells   []Category
	decoder []string
}

// New builds a pattern table for the given ordered rule set.
//
// Algorithm:
//  1. Validate rules and compute period = LCM(divisors).
//  2. For each 1-indexed position p in [1, period], set
//     cells[p-1] = OR of 1<<k over every rule k with p mod divisor_k == 0.
//  3. Precompute the decoder string for all 2^k categories.
//
// The input slice is deep-copied to ensure immutability.
// Complexity: O(period · k) time, O(period + 2^k) memory.
//
// Errors: ErrNoRules, ErrInvalidDivisor, ErrEmptyLabel,
// ErrDuplicateDivisor, ErrTooManyRules, ErrPeriodTooLarge.
func New(rules []Rule) (*Table, error) {
	period, err := PeriodOf(rules)
	if err != nil {
		return nil, err
	}

	cells := make([]Category, period)
	for p := int64(1); p <= period; p++ {
		var c Category
		for k, r := range rules {
			if p%r.Divisor == 0 {
				c |= 1 << k
			}
		}
		cells[p-1] = c
	}

	return &Table{
		rules:   CloneRules(rules),
		period:  period,
		cells:   cells,
		decoder: BuildDecoder(rules),
	}, nil
}

// Period returns the table length: the LCM of the rule divisors and the
// repeat interval of the classification sequence.
func (t *Table) Period() int64 { return t.period }

// Size returns the number of stored cells; always equal to Period().
func (t *Table) Size() int { return len(t.cells) }

// At returns the category of 1-indexed position i+1 within the first
// period. i must lie in [0, Size()).
func (t *Table) At(i int) Category { return t.cells[i] }

// Cells returns a copy of the full cell slice; entry i holds the category
// of position i+1.
func (t *Table) Cells() []Category {
	cp := make([]Category, len(t.cells))
	copy(cp, t.cells)

	return cp
}

// Rules returns a copy of the ordered rule set the table was built from.
func (t *Table) Rules() []Rule { return CloneRules(t.rules) }

// Labels returns a copy of the decoder: index c holds the display string
// of category c, for every c in [0, 2^k).
func (t *Table) Labels() []string {
	cp := make([]string, len(t.decoder))
	copy(cp, t.decoder)

	return cp
}

// Classify returns the category of a 1-indexed position via a single
// modulo and one table lookup. The position's magnitude is irrelevant:
// classification beyond the table length relies on periodicity.
// Complexity: O(1). Errors: ErrInvalidPosition if pos < 1.
func (t *Table) Classify(pos int64) (Category, error) {
	if pos < 1 {
		return 0, ErrInvalidPosition
	}

	return t.cells[(pos-1)%t.period], nil
}

// ClassifyBig is Classify for arbitrary-precision positions.
// pos is not mutated. Complexity: O(len(pos) digits) for the modulo.
func (t *Table) ClassifyBig(pos *big.Int) (Category, error) {
	if pos == nil || pos.Sign() < 1 {
		return 0, ErrInvalidPosition
	}
	rem := new(big.Int).Sub(pos, big.NewInt(1))
	rem.Mod(rem, big.NewInt(t.period))

	return t.cells[rem.Int64()], nil
}

// Decode returns the display string of a category: the concatenation of
// active rule labels in declaration order, or "" for category 0.
// Total over [0, 2^k); categories outside that range decode to "".
// Complexity: O(1).
func (t *Table) Decode(c Category) string {
	if c < 0 || int(c) >= len(t.decoder) {
		return ""
	}

	return t.decoder[c]
}

// Render returns the display value of a 1-indexed position: the decimal
// string of the position when no rule matches, otherwise the decoded
// label concatenation.
// Complexity: O(1). Errors: ErrInvalidPosition if pos < 1.
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
