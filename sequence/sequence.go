package sequence

import "github.com/katalvlaran/fizzbuzz/pattern"

// Strings renders every position in the inclusive range [from, to].
// Complexity: O(to-from+1). Errors: ErrInvalidRange.
func Strings(r Renderer, from, to int64) ([]string, error) {
	if from < 1 || to < from {
		return nil, ErrInvalidRange
	}
	out := make([]string, 0, to-from+1)
	for p := from; p <= to; p++ {
		s, err := r.Render(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Categories classifies every position in the inclusive range [from, to].
// Complexity: O(to-from+1). Errors: ErrInvalidRange.
func Categories(c Classifier, from, to int64) ([]pattern.Category, error) {
	if from < 1 || to < from {
		return nil, ErrInvalidRange
	}
	out := make([]pattern.Category, 0, to-from+1)
	for p := from; p <= to; p++ {
		cat, err := c.Classify(p)
		if err != nil {
			return nil, err
		}
		out = append(out, cat)
	}

	return out, nil
}

// Batches renders count independent slices of length positions each.
// Batch i covers positions offset + i·length + 1 through
// offset + (i+1)·length; batches neither overlap nor interact.
// Complexity: O(count·length). Errors: ErrBadBatch.
func Batches(r Renderer, count, length int, offset int64) ([]Batch, error) {
	if count < 1 || length < 1 || offset < 0 {
		return nil, ErrBadBatch
	}
	out := make([]Batch, 0, count)
	for i := 0; i < count; i++ {
		start := offset + int64(i)*int64(length) + 1
		end := start + int64(length) - 1
		values, err := Strings(r, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, Batch{Start: start, End: end, Values: values})
	}

	return out, nil
}
