package compact_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_SharedValidation verifies the pattern sentinels apply unchanged.
func TestNew_SharedValidation(t *testing.T) {
	_, err := compact.New(nil)
	assert.ErrorIs(t, err, pattern.ErrNoRules)

	_, err = compact.New([]pattern.Rule{{Divisor: -1, Label: "x"}})
	assert.ErrorIs(t, err, pattern.ErrInvalidDivisor)

	_, err = compact.New([]pattern.Rule{{Divisor: 2, Label: "a"}, {Divisor: 2, Label: "b"}})
	assert.ErrorIs(t, err, pattern.ErrDuplicateDivisor)

	// The shared period cap also guards the int64-wrapping LCM case;
	// no table with a negative Period() can be built.
	_, err = compact.New([]pattern.Rule{
		{Divisor: 1 << 24, Label: "A"},
		{Divisor: 1<<39 + 1, Label: "B"},
	})
	assert.ErrorIs(t, err, pattern.ErrPeriodTooLarge)
}

// TestNew_ClassicMatrix verifies the canonical 2×2 layout
// [div3][div5] = [[0,2],[1,3]].
func TestNew_ClassicMatrix(t *testing.T) {
	tab, err := compact.New(pattern.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, 4, tab.Size(), "two rules ⇒ four cells")
	assert.Equal(t, int64(15), tab.Period(), "period is still LCM(3,5)")

	want := map[[2]int64]pattern.Category{
		{0, 0}: 0, // number
		{0, 1}: 2, // Buzz
		{1, 0}: 1, // Fizz
		{1, 1}: 3, // FizzBuzz
	}
	for flags, cat := range want {
		got, err := tab.At(flags[0], flags[1])
		require.NoError(t, err)
		assert.Equal(t, cat, got, "cell [%d][%d]", flags[0], flags[1])
	}
}

// TestClassify_EquivalentToPattern checks the defining property: identical
// categories to the period-sized table for every position, including a
// non-coprime rule set.
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
		ct, err := compact.New(rules)
		require.NoError(t, err)

		for p := int64(1); p <= 3*pt.Period(); p++ {
			a, err := pt.Classify(p)
			require.NoError(t, err)
			b, err := ct.Classify(p)
			require.NoError(t, err)
			assert.Equal(t, a, b, "rules %v, position %d", rules, p)
		}
	}
}

// TestRender_MatchesPattern checks rendered output parity over two periods.
func TestRender_MatchesPattern(t *testing.T) {
	pt, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)
	ct, err := compact.New(pattern.DefaultRules())
	require.NoError(t, err)

	for p := int64(1); p <= 30; p++ {
		a, err := pt.Render(p)
		require.NoError(t, err)
		b, err := ct.Render(p)
		require.NoError(t, err)
		assert.Equal(t, a, b, "render parity at %d", p)
	}
}

// TestClassifyBig_MatchesResidue checks the arbitrary-precision path.
func TestClassifyBig_MatchesResidue(t *testing.T) {
	tab, err := compact.New(pattern.DefaultRules())
	require.NoError(t, err)

	pos, ok := new(big.Int).SetString("1000000000000000000000000000000", 10)
	require.True(t, ok)

	c, err := tab.ClassifyBig(pos)
	require.NoError(t, err)
	assert.Equal(t, pattern.Category(2), c, "10^30 is divisible by 5 only")

	s, err := tab.RenderBig(pos)
	require.NoError(t, err)
	assert.Equal(t, "Buzz", s)

	_, err = tab.ClassifyBig(big.NewInt(-1))
	assert.ErrorIs(t, err, pattern.ErrInvalidPosition)
}

// TestQuery_InvalidPosition covers the shared 1-indexing boundary.
func TestQuery_InvalidPosition(t *testing.T) {
	tab, err := compact.New(pattern.DefaultRules())
	require.NoError(t, err)

	_, err = tab.Classify(0)
	assert.ErrorIs(t, err, pattern.ErrInvalidPosition)
	_, err = tab.Render(-5)
	assert.ErrorIs(t, err, pattern.ErrInvalidPosition)
}
