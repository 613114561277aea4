/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

// Matcher is a compiled predicate expression (spec.md §3), built once per
// Filter token and reused for every candidate element — "predicates ...
// are parsed once per token; evaluation must not re-parse per element"
// (spec.md §9).
type Matcher struct {
	root *matcherNode
}

// Match evaluates the predicate against subject (the candidate sequence
// element), with root available for $$root-relative operands.
func (m *Matcher) Match(subject, root Value) (bool, error) {
	return evalMatcher(m.root, subject, root)
}

type matcherKind int

const (
	matcherAnd matcherKind = iota
	matcherOr
	matcherNot
	matcherCompare
	matcherTruthy
)

// cmpKind distinguishes '!=' from the other comparators, since spec.md's
// Undefined-comparison rule singles it out: "comparisons against Undefined
// are false except != against a concrete value which is true".
type cmpKind int

const (
	cmpEq cmpKind = iota
	cmpNe
	cmpGt
	cmpGe
	cmpLt
	cmpLe
)

type matcherNode struct {
	kind        matcherKind
	left, right *matcherNode
	op          cmpKind
	cmp         comparator
	lhs, rhs    *operand
}

func evalMatcher(n *matcherNode, subject, root Value) (bool, error) {
	switch n.kind {
	case matcherAnd:
		l, err := evalMatcher(n.left, subject, root)
		if err != nil {
			return false, err
		}
		if !l {
			return false, nil
		}
		return evalMatcher(n.right, subject, root)

	case matcherOr:
		l, err := evalMatcher(n.left, subject, root)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return evalMatcher(n.right, subject, root)

	case matcherNot:
		r, err := evalMatcher(n.left, subject, root)
		if err != nil {
			return false, err
		}
		return !r, nil

	case matcherTruthy:
		v, undef, err := n.lhs.resolve(subject, root)
		if err != nil {
			return false, err
		}
		if undef {
			return false, nil
		}
		if isScalar(v) && scalarTag(v) == "!!bool" {
			return v.Value == "true", nil
		}
		return !isEmptyValue(v), nil

	case matcherCompare:
		lv, lUndef, err := n.lhs.resolve(subject, root)
		if err != nil {
			return false, err
		}
		rv, rUndef, err := n.rhs.resolve(subject, root)
		if err != nil {
			return false, err
		}
		if lUndef || rUndef {
			// "comparisons against Undefined are false except != against
			// a concrete value which is true" (spec.md §4.2).
			return n.op == cmpNe && lUndef != rUndef, nil
		}
		return n.cmp(compareValues(lv, rv)), nil
	}
	return false, nil
}

// operand is a resolved side of a predicate atom: a literal, the subject
// element itself ("."), or a dotted key path relative to it — optionally
// followed by a value-transform pipeline and/or a leading negation, per
// spec.md §3's Matcher atom grammar (`$name(args)` operands) and §6's rhs
// production (`['!'] '$' name ['(' args ')'] ('|' ...)*`). The EBNF pins
// the pipeline suffix to rhs only; this implementation allows it on either
// side (documented as a deliberate generalization in DESIGN.md) because
// spec.md's own concrete scenario 3, `items[?.|$len>2]`, requires a
// pipeline on lhs.
type operand struct {
	literal  Value
	keyPath  *Path
	pipeline *Pipeline
	negate   bool
}

// resolve returns the operand's value against subject/root. undef reports
// whether the underlying key path resolved to Undefined (in which case
// value is nil and no pipeline was applied: an operand pipeline never runs
// on an Undefined input).
func (o *operand) resolve(subject, root Value) (value Value, undef bool, err error) {
	if o.literal != nil {
		return o.literal, false, nil
	}
	base := walkGet(subject, o.keyPath.Tokens, root)
	if isUndefined(base) {
		return nil, true, nil
	}
	val := base
	if o.pipeline != nil {
		val, err = o.pipeline.Apply(base, root)
		if err != nil {
			return nil, false, err
		}
	}
	if o.negate && isScalar(val) && scalarTag(val) == "!!bool" {
		val = newBool(val.Value != "true")
	}
	return val, false, nil
}

// seedMapping builds a mapping whose fields are the key == literal atoms
// found at the top level of an AND-only chain, used by set's
// create_filter_match to construct a new element that would itself satisfy
// the filter it was appended for (spec.md §4.3.3: "a mapping whose
// filter-key equalities are seeded from == atoms").
func (m *Matcher) seedMapping() Value {
	out := newMapping()
	seedFrom(m.root, out)
	return out
}

func seedFrom(n *matcherNode, out Value) {
	switch n.kind {
	case matcherAnd:
		seedFrom(n.left, out)
		seedFrom(n.right, out)
	case matcherCompare:
		if n.op != cmpEq {
			return
		}
		if key, lit, ok := equalityKeyLiteral(n.lhs, n.rhs); ok {
			mapSet(out, key, cloneNode(lit))
		}
	}
}

// equalityKeyLiteral recognizes a "key == literal" (or "literal == key")
// atom where key is a single bare TokenKey operand with no pipeline.
func equalityKeyLiteral(lhs, rhs *operand) (string, Value, bool) {
	if key, ok := bareKey(lhs); ok && rhs.literal != nil {
		return key, rhs.literal, true
	}
	if key, ok := bareKey(rhs); ok && lhs.literal != nil {
		return key, lhs.literal, true
	}
	return "", nil, false
}

func bareKey(o *operand) (string, bool) {
	if o.pipeline != nil || o.keyPath == nil || len(o.keyPath.Tokens) != 1 {
		return "", false
	}
	t := o.keyPath.Tokens[0]
	if t.Kind != TokenKey {
		return "", false
	}
	return t.Key, true
}
