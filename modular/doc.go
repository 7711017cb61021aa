// Package modular implements the remainder-indexed encoding of the
// divisibility classification: a k-dimensional table with one axis per
// rule, extent equal to that rule's divisor, indexed by the raw remainder
// tuple (pos mod d_0, …, pos mod d_{k-1}).
//
// 🚀 What is the modular table?
//
//	For the classic rules this is the 3×5 matrix indexed [n%3][n%5]:
//	  [3 1 1 1 1]
//	  [2 0 0 0 0]
//	  [2 0 0 0 0]
//	Row 0 is "divisible by 3", column 0 is "divisible by 5". The Cartesian
//	product structure of the sequence is laid out explicitly.
//
// ✨ Key features:
//   - identical categories and rendered output to pattern.Table everywhere
//   - Π divisors cells; for non-coprime rule sets that exceeds the LCM and
//     some remainder tuples are unreachable — they still decode sensibly
//   - first declared rule is the slowest axis
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fizzbuzz/modular"
//
//	t, err := modular.New(pattern.DefaultRules())
//	s, _ := t.Render(10) // "Buzz"
//
// Complexity:
//
//   - Build:    O(Π divisors · k) time and memory
//   - Classify: O(k) modulo tests + one lookup
//
// Errors: construction reuses the pattern sentinels; rule sets whose cell
// product exceeds pattern.MaxPeriod fail with pattern.ErrPeriodTooLarge.
package modular
