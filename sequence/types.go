// Package sequence defines the consumer-side table interfaces and the
// batch value type.
package sequence

import (
	"errors"

	"github.com/katalvlaran/fizzbuzz/pattern"
)

// Sentinel errors for range and batch evaluation.
var (
	// ErrInvalidRange indicates from < 1 or to < from.
	ErrInvalidRange = errors.New("sequence: range must satisfy 1 ≤ from ≤ to")
	// ErrBadBatch indicates a non-positive batch count or length, or a
	// negative offset.
	ErrBadBatch = errors.New("sequence: batches need count ≥ 1, length ≥ 1, offset ≥ 0")
)

// Classifier maps a 1-indexed position to its category. All table
// representations in this module implement it.
type Classifier interface {
	// Classify returns the category of pos, or pattern.ErrInvalidPosition.
	Classify(pos int64) (pattern.Category, error)
	// Period returns the repeat interval of the classification.
	Period() int64
}

// Renderer maps a 1-indexed position to its display string. All table
// representations in this module implement it.
type Renderer interface {
	// Render returns the display value of pos, or pattern.ErrInvalidPosition.
	Render(pos int64) (string, error)
}

// Batch is one contiguous slice of the sequence: rendered values for
// positions Start..End inclusive.
type Batch struct {
	Start  int64
	End    int64
	Values []string
}
