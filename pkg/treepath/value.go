/*
 * Copyright 2020 VMware, Inc.
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Value is the dynamically-typed tree node the engine operates on: a
// *yaml.Node in one of its scalar or container kinds. A nil Value is the
// package's Undefined sentinel (see Undefined) and never appears inside a
// decoded document, so pointer-nil is an unambiguous marker.
type Value = *yaml.Node

// Undefined is the internal "no value" sentinel. It is represented as a nil
// *yaml.Node rather than a synthetic node so that every ordinary traversal
// check (nil-ness) doubles as an Undefined check.
var Undefined Value

func isUndefined(n Value) bool { return n == nil }

func isMapping(n Value) bool { return n != nil && n.Kind == yaml.MappingNode }

func isSequence(n Value) bool { return n != nil && n.Kind == yaml.SequenceNode }

func isScalar(n Value) bool { return n != nil && n.Kind == yaml.ScalarNode }

func isDocument(n Value) bool { return n != nil && n.Kind == yaml.DocumentNode }

// rootContent unwraps a DocumentNode to its single child; other kinds pass through
// unchanged, so callers can hand either a *yaml.Node returned by
// yaml.Unmarshal (a DocumentNode) or a bare content node to Get/Set/Unset.
func rootContent(n Value) Value {
	if isDocument(n) {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0]
	}
	return n
}

// mapIndex returns the index into n.Content of the value paired with key,
// or -1 if n is not a mapping or has no such key.
func mapIndex(n Value, key string) int {
	if !isMapping(n) {
		return -1
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// mapGet returns the value paired with key in mapping n, or Undefined.
func mapGet(n Value, key string) Value {
	i := mapIndex(n, key)
	if i < 0 {
		return Undefined
	}
	return n.Content[i+1]
}

// mapSet assigns key = value in mapping n, appending a new pair if key is
// not already present. n must be a mapping.
func mapSet(n Value, key string, value Value) {
	i := mapIndex(n, key)
	if i >= 0 {
		n.Content[i+1] = value
		return
	}
	n.Content = append(n.Content, newString(key), value)
}

// mapDelete removes key from mapping n, if present, reporting whether it
// was found.
func mapDelete(n Value, key string) bool {
	i := mapIndex(n, key)
	if i < 0 {
		return false
	}
	n.Content = append(n.Content[:i], n.Content[i+2:]...)
	return true
}

// mapValues returns the mapping's values in insertion order (not the keys).
func mapValues(n Value) []Value {
	if !isMapping(n) {
		return nil
	}
	values := make([]Value, 0, len(n.Content)/2)
	for i := 1; i < len(n.Content); i += 2 {
		values = append(values, n.Content[i])
	}
	return values
}

// normalizeIndex converts a possibly-negative, Python-style index into a
// 0-based offset into a sequence of the given length. ok is false when the
// normalized index is out of [0, length).
func normalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func newScalar(tag, value string) Value {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func newString(s string) Value { return newScalar("!!str", s) }

func newInt(i int64) Value { return newScalar("!!int", strconv.FormatInt(i, 10)) }

func newFloat(f float64) Value { return newScalar("!!float", strconv.FormatFloat(f, 'g', -1, 64)) }

func newBool(b bool) Value { return newScalar("!!bool", strconv.FormatBool(b)) }

func newNull() Value { return newScalar("!!null", "null") }

func newSequence(items []Value) Value {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func newMapping() Value {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []Value{}}
}

// cloneNode performs a deep copy, used when seeding a create_filter_match
// element from the filter's literals.
func cloneNode(n Value) Value {
	if n == nil {
		return nil
	}
	c := *n
	if len(n.Content) > 0 {
		c.Content = make([]Value, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = cloneNode(child)
		}
	}
	return &c
}

// typeName returns the spec's dynamic type name for n, used by type_is.
func typeName(n Value) string {
	switch {
	case isUndefined(n):
		return "undefined"
	case isSequence(n):
		return "sequence"
	case isMapping(n):
		return "mapping"
	case !isScalar(n):
		return "unknown"
	}
	switch scalarTag(n) {
	case "!!null":
		return "null"
	case "!!bool":
		return "bool"
	case "!!int":
		return "int"
	case "!!float":
		return "float"
	case "!!timestamp":
		return "datetime"
	default:
		return "string"
	}
}

// scalarTag returns n's effective tag, resolving the implicit type the way
// yaml.v3 would if Tag was left blank by hand-built nodes.
func scalarTag(n Value) string {
	if n.Tag != "" && n.Tag != "!!str" {
		return n.Tag
	}
	if n.Tag == "!!str" {
		return "!!str"
	}
	switch {
	case n.Value == "null" || n.Value == "~" || n.Value == "":
		return "!!null"
	case n.Value == "true" || n.Value == "false":
		return "!!bool"
	default:
		if _, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return "!!int"
		}
		if _, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return "!!float"
		}
		if _, ok := parseTimestamp(n.Value); ok {
			return "!!timestamp"
		}
		return "!!str"
	}
}

func isNumeric(n Value) bool {
	if !isScalar(n) {
		return false
	}
	t := scalarTag(n)
	return t == "!!int" || t == "!!float"
}

// toFloat coerces a scalar node to a float64.
func toFloat(n Value) (float64, bool) {
	if !isScalar(n) {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func toInt(n Value) (int64, bool) {
	if !isScalar(n) {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// toBoolTruthy implements the spec's string-coercion truthiness table used
// by the `bool` conversion builtin.
func toBoolTruthy(n Value) (bool, bool) {
	if !isScalar(n) {
		return false, false
	}
	switch scalarTag(n) {
	case "!!bool":
		return n.Value == "true", true
	case "!!int", "!!float":
		f, _ := toFloat(n)
		return f != 0, true
	}
	switch strings.ToLower(strings.TrimSpace(n.Value)) {
	case "true", "1", "yes", "y", "on":
		return true, true
	case "false", "0", "no", "n", "off", "":
		return false, true
	}
	return false, false
}

func toStringValue(n Value) string {
	if n == nil {
		return ""
	}
	if isScalar(n) {
		return n.Value
	}
	return fmt.Sprintf("%v", n.Content)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toTime(n Value) (time.Time, bool) {
	if !isScalar(n) {
		return time.Time{}, false
	}
	return parseTimestamp(n.Value)
}

// isEmptyValue implements the is_empty / non_empty predicate builtins.
func isEmptyValue(n Value) bool {
	switch {
	case isUndefined(n):
		return true
	case isSequence(n), isMapping(n):
		return len(n.Content) == 0
	case isScalar(n):
		if scalarTag(n) == "!!null" {
			return true
		}
		return n.Value == ""
	default:
		return false
	}
}

// equalValues implements the package's strict-type equality for `==`/`!=`
// comparisons on whole values (used by the `contains`/`in` builtins and by
// predicate atoms comparing two resolved node values of matching type).
func equalValues(a, b Value) bool {
	if isUndefined(a) || isUndefined(b) {
		return isUndefined(a) && isUndefined(b)
	}
	if isScalar(a) && isScalar(b) {
		ta, tb := scalarTag(a), scalarTag(b)
		numA, numB := ta == "!!int" || ta == "!!float", tb == "!!int" || tb == "!!float"
		if numA && numB {
			fa, _ := toFloat(a)
			fb, _ := toFloat(b)
			return fa == fb
		}
		if ta != tb {
			return false
		}
		return a.Value == b.Value
	}
	if isSequence(a) && isSequence(b) {
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !equalValues(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	}
	if isMapping(a) && isMapping(b) {
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := 0; i+1 < len(a.Content); i += 2 {
			bv := mapGet(b, a.Content[i].Value)
			if !equalValues(a.Content[i+1], bv) {
				return false
			}
		}
		return true
	}
	return false
}
