// Package pattern defines the core types shared by every table
// representation: divisor rules and bitmask categories.
package pattern

const (
	// MaxRules caps the number of rules per table. Categories are bitmasks
	// and the decoder enumerates all 2^k of them, so k is kept small.
	MaxRules = 16

	// MaxPeriod caps the table length (the LCM of the divisors). The period
	// table is allocated eagerly; rule sets whose LCM exceeds this cap are
	// rejected at construction time.
	MaxPeriod = int64(1) << 24
)

// Rule binds one positive divisor to its display label.
// Rules are ordered: the k-th rule in declaration order owns bit k of
// every Category, and its label appears k-th in decoded output.
type Rule struct {
	// Divisor is the positive integer tested with `position mod Divisor == 0`.
	Divisor int64
	// Label is the non-empty string emitted when Divisor divides the position.
	Label string
}

// DefaultRules returns the canonical FizzBuzz rule set: 3→"Fizz", 5→"Buzz".
// Period 15, categories 0..3.
func DefaultRules() []Rule {
	return []Rule{
		{Divisor: 3, Label: "Fizz"},
		{Divisor: 5, Label: "Buzz"},
	}
}

// Category is a bitmask over the rule set: bit k is set exactly when the
// k-th declared rule's divisor divides the position. Category 0 means no
// rule matched and the position itself is displayed.
type Category int

// Has reports whether bit k (the k-th declared rule) is set.
// Complexity: O(1).
func (c Category) Has(k int) bool {
	if k < 0 || k >= MaxRules {
		return false
	}

	return c&(1<<k) != 0
}

// None reports whether no rule matched (the "display the number" category).
func (c Category) None() bool { return c == 0 }
