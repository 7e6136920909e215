package model

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// UnboundedUpper is the raw-string sentinel for an unbounded upper
// multiplicity bound (spec.md §3).
const UnboundedUpper = "*"

// ParseBound parses a raw multiplicity bound string into a decimal value.
// An empty string means "unset" (nil, nil). UnboundedUpper ("*") is only
// meaningful as an upper bound and is represented by the caller checking
// the raw string directly, not by this function (ParseBound rejects it so
// callers can't silently accept "*" as a lower bound).
func ParseBound(raw string) (*apd.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	if raw == UnboundedUpper {
		return nil, fmt.Errorf("multiplicity: %q is not a numeric bound", raw)
	}
	d, _, err := apd.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("multiplicity: invalid bound %q: %w", raw, err)
	}
	return d, nil
}

// UpperBound parses an element's raw upper-bound string, treating
// UnboundedUpper as "no limit": it returns (nil, true, nil) for "*", and
// otherwise the parsed decimal with unbounded=false.
func UpperBound(raw string) (value *apd.Decimal, unbounded bool, err error) {
	if raw == UnboundedUpper {
		return nil, true, nil
	}
	d, err := ParseBound(raw)
	return d, false, err
}

// CompareBounds returns -1, 0, or +1 as a is less than, equal to, or
// greater than b.
func CompareBounds(a, b *apd.Decimal) int {
	return a.Cmp(b)
}

// IsNegative reports whether d represents a negative number.
func IsNegative(d *apd.Decimal) bool {
	return d.Sign() < 0
}
