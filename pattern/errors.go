package pattern

import "errors"

// Sentinel errors for table construction and queries.
// Sibling representations (compact, modular) reuse these for the same
// failure modes so callers match one set with errors.Is.
var (
	// ErrNoRules indicates an empty rule set.
	ErrNoRules = errors.New("pattern: rule set must contain at least one rule")
	// ErrInvalidDivisor indicates a zero or negative divisor.
	ErrInvalidDivisor = errors.New("pattern: divisor must be a positive integer")
	// ErrEmptyLabel indicates a rule with an empty label string.
	ErrEmptyLabel = errors.New("pattern: rule label must be non-empty")
	// ErrDuplicateDivisor indicates two rules sharing one divisor value;
	// the bit assignment would be ambiguous.
	ErrDuplicateDivisor = errors.New("pattern: duplicate divisor value")
	// ErrTooManyRules indicates more than MaxRules rules.
	ErrTooManyRules = errors.New("pattern: too many rules")
	// ErrPeriodTooLarge indicates the divisor LCM (or the representation's
	// cell count) exceeds MaxPeriod.
	ErrPeriodTooLarge = errors.New("pattern: period exceeds MaxPeriod")
	// ErrInvalidPosition indicates a query position < 1; positions are 1-indexed.
	ErrInvalidPosition = errors.New("pattern: position must be ≥ 1")
)
