// Package compact implements the binary-indexed encoding of the
// divisibility classification: a 2^k-cell table indexed directly by the
// k-tuple of "divisible?" flags, instead of the LCM-sized pattern vector.
//
// 🚀 What is the compact table?
//
//	For the classic two-rule FizzBuzz this is the 2×2 matrix
//	  [div-by-3?][div-by-5?] = [[0,2],[1,3]]
//	Four cells replace the fifteen-cell pattern vector. Generalized to k
//	rules it is a k-dimensional binary tensor of 2^k cells.
//
// ✨ Key features:
//   - identical categories and rendered output to pattern.Table for every
//     position; only storage and per-lookup cost differ
//   - space 2^k cells (vs LCM); lookup k modulo tests (vs one)
//   - first declared rule is the slowest axis, matching the classic
//     [div3][div5] layout
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fizzbuzz/compact"
//
//	t, err := compact.New(pattern.DefaultRules())
//	s, _ := t.Render(15) // "FizzBuzz"
//
// Complexity:
//
//   - Build:    O(2^k · k) time and memory
//   - Classify: O(k) modulo tests + one lookup
//
// Errors: construction reuses the pattern package sentinels
// (ErrNoRules, ErrInvalidDivisor, …); queries return pattern.ErrInvalidPosition.
package compact
