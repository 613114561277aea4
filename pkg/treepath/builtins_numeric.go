/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "math"

func init() {
	register("inc", numeric1(func(f float64) Value { return newFloatOrInt(f + 1) }))
	register("dec", numeric1(func(f float64) Value { return newFloatOrInt(f - 1) }))
	register("double", numeric1(func(f float64) Value { return newFloatOrInt(f * 2) }))
	register("square", numeric1(func(f float64) Value { return newFloatOrInt(f * f) }))
	register("neg", numeric1(func(f float64) Value { return newFloatOrInt(-f) }))
	register("abs", numeric1(func(f float64) Value { return newFloatOrInt(math.Abs(f)) }))
	register("floor", numeric1(func(f float64) Value { return newInt(int64(math.Floor(f))) }))
	register("ceil", numeric1(func(f float64) Value { return newInt(int64(math.Ceil(f))) }))
	register("exp", numeric1(func(f float64) Value { return newFloat(math.Exp(f)) }))
	register("sign", numeric1(func(f float64) Value {
		switch {
		case f > 0:
			return newInt(1)
		case f < 0:
			return newInt(-1)
		default:
			return newInt(0)
		}
	}))
	register("sqrt", numeric1(func(f float64) Value {
		if f < 0 {
			return newNull()
		}
		return newFloat(math.Sqrt(f))
	}))

	register("add", numericN(func(f float64, args []Value) Value { return newFloatOrInt(f + argFloat(args, 0, 0)) }))
	register("sub", numericN(func(f float64, args []Value) Value { return newFloatOrInt(f - argFloat(args, 0, 0)) }))
	register("mul", numericN(func(f float64, args []Value) Value { return newFloatOrInt(f * argFloat(args, 0, 1)) }))
	register("div", numericN(func(f float64, args []Value) Value {
		d := argFloat(args, 0, 1)
		if d == 0 {
			return newNull()
		}
		return newFloatOrInt(f / d)
	}))
	register("mod", numericN(func(f float64, args []Value) Value {
		d := argFloat(args, 0, 1)
		if d == 0 {
			return newNull()
		}
		return newFloatOrInt(math.Mod(f, d))
	}))
	register("pow", numericN(func(f float64, args []Value) Value {
		return newFloatOrInt(math.Pow(f, argFloat(args, 0, 1)))
	}))
	register("rpow", numericN(func(f float64, args []Value) Value {
		return newFloatOrInt(math.Pow(argFloat(args, 0, 0), f))
	}))
	register("root", numericN(func(f float64, args []Value) Value {
		degree := argFloat(args, 0, 2)
		if degree == 0 {
			return newNull()
		}
		if f < 0 && math.Mod(degree, 2) == 0 {
			return newNull()
		}
		return newFloat(math.Pow(f, 1/degree))
	}))
	register("round", numericN(func(f float64, args []Value) Value {
		n := int(argFloat(args, 0, 0))
		mult := math.Pow(10, float64(n))
		return newFloatOrInt(math.Round(f*mult) / mult)
	}))
	register("clamp", numericN(func(f float64, args []Value) Value {
		lo, hi := argFloat(args, 0, f), argFloat(args, 1, f)
		if f < lo {
			return newFloatOrInt(lo)
		}
		if f > hi {
			return newFloatOrInt(hi)
		}
		return newFloatOrInt(f)
	}))
	register("log", numericN(func(f float64, args []Value) Value {
		if f <= 0 {
			return newNull()
		}
		base := argFloat(args, 0, math.E)
		if base == math.E {
			return newFloat(math.Log(f))
		}
		if base <= 0 || base == 1 {
			return newNull()
		}
		return newFloat(math.Log(f) / math.Log(base))
	}))
	register("pct", numericN(func(f float64, args []Value) Value {
		return newFloatOrInt(f * argFloat(args, 0, 1) / 100)
	}))
}

// numeric1 adapts a single-argument numeric transform into a builtinFunc,
// passing non-numeric input through unchanged per spec.md §4.2: "Numeric
// builtins that receive non-numeric inputs should passthrough unchanged
// where a reasonable coercion is impossible."
func numeric1(fn func(float64) Value) builtinFunc {
	return func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return value, nil
		}
		return fn(f), nil
	}
}

func numericN(fn func(float64, []Value) Value) builtinFunc {
	return func(value, root Value, args []Value) (Value, error) {
		f, ok := toFloat(value)
		if !ok {
			return value, nil
		}
		return fn(f, args), nil
	}
}

// newFloatOrInt renders a whole-valued float as an int node so arithmetic
// on integers stays integral (e.g. $inc on 2 yields 3, not 3.0).
func newFloatOrInt(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return newInt(int64(f))
	}
	return newFloat(f)
}
