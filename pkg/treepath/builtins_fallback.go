/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

func init() {
	register("default", func(value, root Value, args []Value) (Value, error) {
		if isUndefined(value) || scalarTag(value) == "!!null" {
			return arg(args, 0), nil
		}
		return value, nil
	})
	register("coalesce", func(value, root Value, args []Value) (Value, error) {
		if !isUndefined(value) && (!isScalar(value) || scalarTag(value) != "!!null") {
			return value, nil
		}
		for _, a := range args {
			if !isUndefined(a) && (!isScalar(a) || scalarTag(a) != "!!null") {
				return a, nil
			}
		}
		return newNull(), nil
	})
}
