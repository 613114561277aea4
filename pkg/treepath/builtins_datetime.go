/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "time"

func init() {
	register("to_datetime", func(value, root Value, args []Value) (Value, error) {
		s := toStringValue(value)
		if layout, ok := argStringOrNil(args, 0); ok {
			t, err := time.Parse(layout, s)
			if err != nil {
				return newNull(), nil
			}
			return newScalar("!!timestamp", t.Format(time.RFC3339)), nil
		}
		t, ok := parseTimestamp(s)
		if !ok {
			return newNull(), nil
		}
		return newScalar("!!timestamp", t.Format(time.RFC3339)), nil
	})

	register("timestamp", func(value, root Value, args []Value) (Value, error) {
		t, ok := toTime(value)
		if !ok {
			return newNull(), nil
		}
		return newFloat(float64(t.UnixNano()) / 1e9), nil
	})

	register("age_seconds", func(value, root Value, args []Value) (Value, error) {
		t, ok := toTime(value)
		if !ok {
			return newNull(), nil
		}
		return newFloat(time.Since(t).Seconds()), nil
	})

	register("before", func(value, root Value, args []Value) (Value, error) {
		t, ok := toTime(value)
		if !ok {
			return newBool(false), nil
		}
		other, ok := parseTimestamp(argString(args, 0, ""))
		if !ok {
			return newBool(false), nil
		}
		return newBool(t.Before(other)), nil
	})

	register("after", func(value, root Value, args []Value) (Value, error) {
		t, ok := toTime(value)
		if !ok {
			return newBool(false), nil
		}
		other, ok := parseTimestamp(argString(args, 0, ""))
		if !ok {
			return newBool(false), nil
		}
		return newBool(t.After(other)), nil
	})
}
