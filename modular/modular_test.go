package modular_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_ClassicMatrix verifies the canonical 3×5 layout indexed [n%3][n%5].
func TestNew_ClassicMatrix(t *testing.T) {
	tab, err := modular.New(pattern.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, 15, tab.Size(), "3×5 cells")
	assert.Equal(t, int64(15), tab.Period())

	want := [][]pattern.Category{
		{3, 1, 1, 1, 1}, // n%3 == 0
		{2, 0, 0, 0, 0}, // n%3 == 1
		{2, 0, 0, 0, 0}, // n%3 == 2
	}
	for r3 := int64(0); r3 < 3; r3++ {
		for r5 := int64(0); r5 < 5; r5++ {
			got, err := tab.At(r3, r5)
			require.NoError(t, err)
			assert.Equal(t, want[r3][r5], got, "cell [%d][%d]", r3, r5)
		}
	}
}

// TestClassify_EquivalentToPattern checks category parity with the
// period-sized table, in particular for non-coprime rule sets where the
// modular table is larger than one period.
func TestClassify_EquivalentToPattern(t *testing.T) {
	ruleSets := [][]pattern.Rule{
		pattern.DefaultRules(),
		{{Divisor: 3, Label: "Fizz"}, {Divisor: 5, Label: "Buzz"}, {Divisor: 7, Label: "Bazz"}},
		{{Divisor: 2, Label: "Two"}, {Divisor: 4, Label: "Four"}},
		{{Divisor: 6, Label: "Six"}, {Divisor: 10, Label: "Ten"}},
	}
	for _, rules := range ruleSets {
		pt, err := pattern.New(rules)
		require.NoError(t, err)
		mt, err := modular.New(rules)
		require.NoError(t, err)

		for p := int64(1); p <= 3*pt.Period(); p++ {
			a, err := pt.Classify(p)
			require.NoError(t, err)
			b, err := mt.Classify(p)
			require.NoError(t, err)
			assert.Equal(t, a, b, "rules %v, position %d", rules, p)
		}
	}
}

// TestNonCoprime_SizeExceedsPeriod documents the Π divisors vs LCM gap and
// that unreachable remainder tuples still hold well-defined categories.
func TestNonCoprime_SizeExceedsPeriod(t *testing.T) {
	tab, err := modular.New([]pattern.Rule{
		{Divisor: 2, Label: "Two"},
		{Divisor: 4, Label: "Four"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, tab.Size(), "2×4 cells")
	assert.Equal(t, int64(4), tab.Period(), "LCM(2,4)=4")

	// (1,0) — odd yet divisible by 4 — is unreachable but defined.
	got, err := tab.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, pattern.Category(2), got, "unreachable tuple decodes its zero flags")
}

// TestRenderBig_MatchesPattern checks the arbitrary-precision path against
// the period table.
func TestRenderBig_MatchesPattern(t *testing.T) {
	pt, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)
	mt, err := modular.New(pattern.DefaultRules())
	require.NoError(t, err)

	pos, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	a, err := pt.RenderBig(pos)
	require.NoError(t, err)
	b, err := mt.RenderBig(pos)
	require.NoError(t, err)
	assert.Equal(t, a, b, "big-position render parity")
}

// TestQuery_InvalidPosition covers the 1-indexing boundary.
func TestQuery_InvalidPosition(t *testing.T) {
	tab, err := modular.New(pattern.DefaultRules())
	require.NoError(t, err)

	_, err = tab.Classify(0)
	assert.ErrorIs(t, err, pattern.ErrInvalidPosition)
	_, err = tab.ClassifyBig(nil)
	assert.ErrorIs(t, err, pattern.ErrInvalidPosition)
}

// TestNew_ProductCap verifies the shared size cap maps to ErrPeriodTooLarge.
func TestNew_ProductCap(t *testing.T) {
	// LCM fits the cap thanks to shared factors; the raw product does not.
	_, err := modular.New([]pattern.Rule{
		{Divisor: 1 << 13, Label: "A"},
		{Divisor: 1 << 12, Label: "B"},
		{Divisor: 3, Label: "C"},
	})
	assert.ErrorIs(t, err, pattern.ErrPeriodTooLarge,
		"product 2^25·3 over the cap even though LCM 3·2^13 is fine")
}
