/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

// comparison is a three-way (plus incomparable) ordering result, the same
// shape as the teacher's comparison.go, generalized to operate on the
// engine's Value rather than raw yaml.Node scalar strings.
type comparison int

const (
	compareLess comparison = iota
	compareEqual
	compareGreater
	compareIncomparable
)

type comparator func(comparison) bool

func cmpEqual(c comparison) bool              { return c == compareEqual }
func cmpNotEqual(c comparison) bool           { return c != compareEqual }
func cmpGreaterThan(c comparison) bool        { return c == compareGreater }
func cmpGreaterThanOrEqual(c comparison) bool { return c == compareGreater || c == compareEqual }
func cmpLessThan(c comparison) bool           { return c == compareLess }
func cmpLessThanOrEqual(c comparison) bool    { return c == compareLess || c == compareEqual }

// compareValues compares two resolved Values. Per spec.md §9's pinned Open
// Question ("recommended: strict-type equality, no coercion in =="), values
// of different dynamic types are compareIncomparable except when both are
// numeric (int vs float compare numerically) — matching §7's "Type
// mismatches in predicate comparisons produce false rather than error".
func compareValues(a, b Value) comparison {
	if isUndefined(a) || isUndefined(b) {
		return compareIncomparable
	}
	if isNumeric(a) && isNumeric(b) {
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return compareFloat(fa, fb)
	}
	if isScalar(a) && isScalar(b) && scalarTag(a) == scalarTag(b) {
		if scalarTag(a) == "!!timestamp" {
			ta, oka := toTime(a)
			tb, okb := toTime(b)
			if oka && okb {
				switch {
				case ta.Before(tb):
					return compareLess
				case ta.After(tb):
					return compareGreater
				default:
					return compareEqual
				}
			}
		}
		switch {
		case a.Value < b.Value:
			return compareLess
		case a.Value > b.Value:
			return compareGreater
		default:
			return compareEqual
		}
	}
	if equalValues(a, b) {
		return compareEqual
	}
	return compareIncomparable
}

func compareFloat(a, b float64) comparison {
	switch {
	case a < b:
		return compareLess
	case a > b:
		return compareGreater
	default:
		return compareEqual
	}
}
