/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "strconv"

func init() {
	register("string", func(value, root Value, args []Value) (Value, error) {
		return newString(toStringValue(value)), nil
	})
	register("int", func(value, root Value, args []Value) (Value, error) {
		if i, ok := toInt(value); ok {
			return newInt(i), nil
		}
		return newNull(), nil
	})
	register("float", func(value, root Value, args []Value) (Value, error) {
		if f, ok := toFloat(value); ok {
			return newFloat(f), nil
		}
		return newNull(), nil
	})
	register("decimal", func(value, root Value, args []Value) (Value, error) {
		if f, ok := toFloat(value); ok {
			return newFloat(f), nil
		}
		return newNull(), nil
	})
	register("bool", func(value, root Value, args []Value) (Value, error) {
		b, ok := toBoolTruthy(value)
		if !ok {
			return newBool(false), nil
		}
		return newBool(b), nil
	})
	register("quote", func(value, root Value, args []Value) (Value, error) {
		return newString(strconv.Quote(toStringValue(value))), nil
	})
}
