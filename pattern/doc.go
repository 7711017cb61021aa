// Package pattern builds and queries divisibility lookup tables — the
// "FizzBuzz without branches" construction generalized to arbitrary
// divisor rule sets.
//
// 🚀 What is a pattern table?
//
//	The classification of positions 1,2,3,… by "which divisors divide me"
//	is periodic with period LCM(divisors). One table of that length,
//	built once, answers every position forever:
//	  • build cells[i] = bitmask of rules whose divisor divides i+1
//	  • classify p as cells[(p-1) mod period] — one modulo, one lookup
//	  • decode the bitmask to a label string ("Fizz", "Buzz", …)
//
// ✨ Key features:
//   - O(1) classification for any position, however large (see ClassifyBig)
//   - categories are bitmasks: bit k ↔ k-th rule in declaration order
//   - decoder precomputed for all 2^k categories, not only reachable ones
//   - Table is immutable after construction; safe for concurrent readers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fizzbuzz/pattern"
//
//	t, err := pattern.New(pattern.DefaultRules()) // 3→Fizz, 5→Buzz
//	if err != nil { ... }
//	s, _ := t.Render(15) // "FizzBuzz"
//
// Complexity:
//
//   - Build:    O(period · k) time, O(period + 2^k) memory
//   - Classify: O(1)
//   - Render:   O(1)
//
// Errors:
//   - ErrNoRules, ErrInvalidDivisor, ErrEmptyLabel, ErrDuplicateDivisor,
//     ErrTooManyRules, ErrPeriodTooLarge — construction-time validation
//   - ErrInvalidPosition — query positions must be ≥ 1
//
// See sibling packages compact and modular for alternate encodings of
// the same classification, and sequence for range/batched evaluation.
package pattern
