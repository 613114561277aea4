/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import (
	"regexp"
	"strings"
)

func init() {
	register("lower", stringFn(strings.ToLower))
	register("upper", stringFn(strings.ToUpper))
	register("title", stringFn(strings.Title)) //nolint:staticcheck // matches the spec's simple title-casing

	register("strip", func(value, root Value, args []Value) (Value, error) {
		s := toStringValue(value)
		if chars, ok := argStringOrNil(args, 0); ok {
			return newString(strings.Trim(s, chars)), nil
		}
		return newString(strings.TrimSpace(s)), nil
	})

	register("replace", func(value, root Value, args []Value) (Value, error) {
		old := argString(args, 0, "")
		new := argString(args, 1, "")
		return newString(strings.ReplaceAll(toStringValue(value), old, new)), nil
	})

	register("split", func(value, root Value, args []Value) (Value, error) {
		s := toStringValue(value)
		var parts []string
		if sep, ok := argStringOrNil(args, 0); ok {
			parts = strings.Split(s, sep)
		} else {
			parts = strings.Fields(s)
		}
		out := make([]Value, len(parts))
		for i, p := range parts {
			out[i] = newString(p)
		}
		return newSequence(out), nil
	})

	register("join", func(value, root Value, args []Value) (Value, error) {
		sep := argString(args, 0, "")
		if !isSequence(value) {
			return value, nil
		}
		parts := make([]string, len(value.Content))
		for i, elem := range value.Content {
			parts[i] = toStringValue(elem)
		}
		return newString(strings.Join(parts, sep)), nil
	})

	register("startswith", func(value, root Value, args []Value) (Value, error) {
		return newBool(strings.HasPrefix(toStringValue(value), argString(args, 0, ""))), nil
	})
	register("endswith", func(value, root Value, args []Value) (Value, error) {
		return newBool(strings.HasSuffix(toStringValue(value), argString(args, 0, ""))), nil
	})

	register("matches", func(value, root Value, args []Value) (Value, error) {
		pattern := argString(args, 0, "")
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, OperatorErrorf("matches", "invalid regular expression %q: %v", pattern, err)
		}
		return newBool(re.MatchString(toStringValue(value))), nil
	})
}

func stringFn(fn func(string) string) builtinFunc {
	return func(value, root Value, args []Value) (Value, error) {
		return newString(fn(toStringValue(value))), nil
	}
}
