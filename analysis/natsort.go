// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analysis

import (
	"sort"
	"strconv"
)

// NaturalLess compares two unit identifiers in natural order: numeric strings
// compare by integer value, non-numeric strings compare lexicographically,
// and numeric strings sort before non-numeric ones. Equal numeric values
// (e.g. "01" vs "1") fall back to string comparison so the order stays
// deterministic across runs.
func NaturalLess(a, b string) bool {
	an, aNumeric := numericValue(a)
	bn, bNumeric := numericValue(b)

	switch {
	case aNumeric && bNumeric:
		if an != bn {
			return an < bn
		}
		return a < b
	case aNumeric:
		return true
	case bNumeric:
		return false
	default:
		return a < b
	}
}

// SortNatural sorts values in place using NaturalLess.
func SortNatural(values []string) {
	sort.SliceStable(values, func(i, j int) bool {
		return NaturalLess(values[i], values[j])
	})
}

// numericValue reports whether s consists entirely of ASCII digits and, if
// so, its integer value. Values too large for int are treated as
// non-numeric rather than silently truncated.
func numericValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
