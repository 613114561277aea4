/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "sort"

func init() {
	register("len", func(value, root Value, args []Value) (Value, error) {
		switch {
		case isSequence(value), isMapping(value):
			n := len(value.Content)
			if isMapping(value) {
				n /= 2
			}
			return newInt(int64(n)), nil
		case isScalar(value):
			return newInt(int64(len([]rune(value.Value)))), nil
		default:
			return newInt(0), nil
		}
	})

	register("max", reduceNumeric(func(acc, f float64) float64 {
		if f > acc {
			return f
		}
		return acc
	}))
	register("min", reduceNumeric(func(acc, f float64) float64 {
		if f < acc {
			return f
		}
		return acc
	}))
	register("sum", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) {
			return value, nil
		}
		var total float64
		for _, elem := range value.Content {
			f, _ := toFloat(elem)
			total += f
		}
		return newFloatOrInt(total), nil
	})
	register("avg", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) || len(value.Content) == 0 {
			return newNull(), nil
		}
		var total float64
		for _, elem := range value.Content {
			f, _ := toFloat(elem)
			total += f
		}
		return newFloatOrInt(total / float64(len(value.Content))), nil
	})

	register("unique", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) {
			return value, nil
		}
		out := []Value{}
		for _, elem := range value.Content {
			dup := false
			for _, seen := range out {
				if equalValues(seen, elem) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, elem)
			}
		}
		return newSequence(out), nil
	})

	register("sorted", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) {
			return value, nil
		}
		out := append([]Value{}, value.Content...)
		sort.SliceStable(out, func(i, j int) bool {
			return compareValues(out[i], out[j]) == compareLess
		})
		if argBool(args, 0, false) {
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
		}
		return newSequence(out), nil
	})

	register("first", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) || len(value.Content) == 0 {
			return newNull(), nil
		}
		return value.Content[0], nil
	})
	register("last", func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) || len(value.Content) == 0 {
			return newNull(), nil
		}
		return value.Content[len(value.Content)-1], nil
	})

	register("pick", func(value, root Value, args []Value) (Value, error) {
		if !isMapping(value) {
			return value, nil
		}
		out := newMapping()
		for _, a := range args {
			key := toStringValue(a)
			if v := mapGet(value, key); !isUndefined(v) {
				mapSet(out, key, v)
			}
		}
		return out, nil
	})
	register("unpick", func(value, root Value, args []Value) (Value, error) {
		if !isMapping(value) {
			return value, nil
		}
		drop := map[string]bool{}
		for _, a := range args {
			drop[toStringValue(a)] = true
		}
		out := newMapping()
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			if !drop[key] {
				mapSet(out, key, value.Content[i+1])
			}
		}
		return out, nil
	})
}

func reduceNumeric(combine func(acc, f float64) float64) builtinFunc {
	return func(value, root Value, args []Value) (Value, error) {
		if !isSequence(value) || len(value.Content) == 0 {
			return newNull(), nil
		}
		first, ok := toFloat(value.Content[0])
		if !ok {
			return newNull(), nil
		}
		acc := first
		for _, elem := range value.Content[1:] {
			f, ok := toFloat(elem)
			if !ok {
				continue
			}
			acc = combine(acc, f)
		}
		return newFloatOrInt(acc), nil
	}
}
