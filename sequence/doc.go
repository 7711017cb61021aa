// Package sequence evaluates divisibility tables over position ranges and
// fixed-size batches. It is representation-agnostic: any of the pattern,
// compact, or modular tables satisfies its Classifier and Renderer
// interfaces, and every batch is an independent slice of the same global
// sequence — there is no shared state between batches.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fizzbuzz/pattern"
//	  "github.com/katalvlaran/fizzbuzz/sequence"
//	)
//
//	t, _ := pattern.New(pattern.DefaultRules())
//	lines, _ := sequence.Strings(t, 1, 30) // the classic transcript
//
// Complexity: O(range length) per call, O(1) extra state.
//
// Errors:
//   - ErrInvalidRange — from < 1 or to < from
//   - ErrBadBatch — non-positive batch count/length or negative offset
package sequence
