/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "strings"

func init() {
	register("even", numeric1(func(f float64) Value { return newBool(int64(f)%2 == 0) }))
	register("odd", numeric1(func(f float64) Value { return newBool(int64(f)%2 != 0) }))

	register("gt", func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return newBool(false), nil
		}
		return newBool(f > argFloat(args, 0, 0)), nil
	})
	register("lt", func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return newBool(false), nil
		}
		return newBool(f < argFloat(args, 0, 0)), nil
	})
	register("gte", func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return newBool(false), nil
		}
		return newBool(f >= argFloat(args, 0, 0)), nil
	})
	register("lte", func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return newBool(false), nil
		}
		return newBool(f <= argFloat(args, 0, 0)), nil
	})
	register("between", func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return newBool(false), nil
		}
		lo, hi := argFloat(args, 0, 0), argFloat(args, 1, 0)
		return newBool(f >= lo && f <= hi), nil
	})

	register("contains", func(value, root Value, args []Value) (Value, error) {
		needle := arg(args, 0)
		return newBool(containsValue(value, needle)), nil
	})
	register("in", func(value, root Value, args []Value) (Value, error) {
		container := arg(args, 0)
		return newBool(containsValue(container, value)), nil
	})

	register("type_is", func(value, root Value, args []Value) (Value, error) {
		want, _ := argStringOrNil(args, 0)
		return newBool(strings.EqualFold(typeName(value), want)), nil
	})

	register("is_empty", func(value, root Value, args []Value) (Value, error) {
		return newBool(isEmptyValue(value)), nil
	})
	register("non_empty", func(value, root Value, args []Value) (Value, error) {
		return newBool(!isEmptyValue(value)), nil
	})
}

// containsValue implements the spec's overloaded `contains`: string
// substring search, sequence/set membership, or mapping key membership.
func containsValue(container, needle Value) bool {
	if isUndefined(container) || isUndefined(needle) {
		return false
	}
	switch {
	case isScalar(container):
		return strings.Contains(toStringValue(container), toStringValue(needle))
	case isSequence(container):
		for _, elem := range container.Content {
			if equalValues(elem, needle) {
				return true
			}
		}
		return false
	case isMapping(container):
		return mapIndex(container, toStringValue(needle)) >= 0
	default:
		return false
	}
}
