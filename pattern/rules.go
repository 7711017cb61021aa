package pattern

import "strings"

// ValidateRules checks a rule set for structural validity: non-empty, at
// most MaxRules entries, positive divisors, non-empty labels, no duplicate
// divisor values. Duplicate labels are permitted (ambiguous display is a
// caller choice, not an encoding problem).
// Returns the first matching sentinel error, or nil.
// Complexity: O(k) time and memory for k rules.
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	if len(rules) > MaxRules {
		return ErrTooManyRules
	}
	seen := make(map[int64]struct{}, len(rules))
	for _, r := range rules {
		if r.Divisor < 1 {
			return ErrInvalidDivisor
		}
		if r.Label == "" {
			return ErrEmptyLabel
		}
		if _, dup := seen[r.Divisor]; dup {
			return ErrDuplicateDivisor
		}
		seen[r.Divisor] = struct{}{}
	}

	return nil
}

// PeriodOf validates rules and returns the LCM of their divisors — the
// length of one full repetition of the classification sequence.
// Returns ErrPeriodTooLarge if the LCM exceeds MaxPeriod.
// Complexity: O(k log max(divisor)).
func PeriodOf(rules []Rule) (int64, error) {
	if err := ValidateRules(rules); err != nil {
		return 0, err
	}
	period := int64(1)
	for _, r := range rules {
		// The period is a multiple of every divisor, so a divisor above
		// the cap settles the answer outright — and rejecting it here
		// bounds the product below 2^48, which cannot wrap int64.
		if r.Divisor > MaxPeriod {
			return 0, ErrPeriodTooLarge
		}
		period = period / gcd(period, r.Divisor) * r.Divisor
		if period > MaxPeriod {
			return 0, ErrPeriodTooLarge
		}
	}

	return period, nil
}

// BuildDecoder precomputes the display string for every category in
// [0, 2^k): the concatenation of active rule labels in declaration order.
// Category 0 decodes to "" — the position itself is rendered instead.
// The rules are assumed already validated.
// Complexity: O(2^k · k) time, O(2^k) memory.
func BuildDecoder(rules []Rule) []string {
	decoder := make([]string, 1<<len(rules))
	var sb strings.Builder
	for c := range decoder {
		sb.Reset()
		for k, r := range rules {
			if c&(1<<k) != 0 {
				sb.WriteString(r.Label)
			}
		}
		decoder[c] = sb.String()
	}

	return decoder
}

// CloneRules returns a deep copy of rules. Constructors copy their input
// to ensure immutability of the built table.
func CloneRules(rules []Rule) []Rule {
	cp := make([]Rule, len(rules))
	copy(cp, rules)

	return cp
}

// gcd computes the greatest common divisor of two positive integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
