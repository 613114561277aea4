/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import (
	yit "github.com/dprotaso/go-yit"
)

// walker threads a single root Value and the first operator error
// encountered through an otherwise lazy go-yit iterator pipeline, the same
// composition shape as the teacher's path.go (compose/childThen/filterThen
// building a chain of continuations), generalized to this package's richer
// token set and to an engine where pipeline/filter evaluation can fail.
type walker struct {
	root Value
	err  error
}

// find returns every node tokens resolves to, starting from node. It does
// not decide strictness — that is the caller's job (api.go).
func find(node Value, tokens []Token, root Value) ([]Value, error) {
	w := &walker{root: root}
	it := w.build(tokens)(node)
	nodes := it.ToArray()
	if w.err != nil {
		return nil, w.err
	}
	return nodes, nil
}

// walkGet returns the first node tokens resolves to, or Undefined. It backs
// predicate operand resolution (predicate.go), where a relative key path is
// expected to resolve to at most one value; errors raised while resolving it
// are swallowed as Undefined, since an operand path is not itself a pipeline
// stage and spec.md does not define operator-error semantics for predicate
// sub-paths.
func walkGet(node Value, tokens []Token, root Value) Value {
	nodes, err := find(node, tokens, root)
	if err != nil || len(nodes) == 0 {
		return Undefined
	}
	return nodes[0]
}

func noMatch(Value) yit.Iterator { return yit.FromNodes() }

func single(n Value) yit.Iterator { return yit.FromNode(n) }

// build compiles tokens into a chain of continuations, each one resolving
// its own token against the incoming node and composing the rest of the
// chain over whatever it yields.
func (w *walker) build(tokens []Token) func(Value) yit.Iterator {
	if len(tokens) == 0 {
		return single
	}
	tok := tokens[0]
	rest := w.build(tokens[1:])

	switch tok.Kind {

	case TokenRoot:
		return func(Value) yit.Iterator { return rest(w.root) }

	case TokenKey:
		return func(n Value) yit.Iterator {
			if !isMapping(n) {
				return noMatch(n)
			}
			v := mapGet(n, tok.Key)
			if isUndefined(v) {
				return noMatch(n)
			}
			return rest(v)
		}

	case TokenIndex:
		return func(n Value) yit.Iterator {
			if !isSequence(n) {
				return noMatch(n)
			}
			i, ok := normalizeIndex(tok.Index, len(n.Content))
			if !ok {
				return noMatch(n)
			}
			return rest(n.Content[i])
		}

	case TokenSlice:
		return func(n Value) yit.Iterator {
			if !isSequence(n) {
				return noMatch(n)
			}
			its := []yit.Iterator{}
			for _, i := range sliceIndices(tok.Slice, len(n.Content)) {
				its = append(its, rest(n.Content[i]))
			}
			return yit.FromIterators(its...)
		}

	case TokenMap:
		// "[]" maps the remainder of the path over each element of a
		// sequence (spec.md §4.3.1) — the functional map/flatMap sense,
		// not the yaml.MappingNode kind. When the cursor is itself a
		// sequence this flattens over its elements; otherwise the cursor
		// already IS one element of an upstream projection (e.g. a Filter
		// dispatching matches one at a time into a trailing "[]"), so it
		// is passed straight through rather than rejected.
		return func(n Value) yit.Iterator {
			if isUndefined(n) {
				return noMatch(n)
			}
			if !isSequence(n) {
				return rest(n)
			}
			its := []yit.Iterator{}
			for _, v := range n.Content {
				its = append(its, rest(v))
			}
			return yit.FromIterators(its...)
		}

	case TokenWildcard:
		return func(n Value) yit.Iterator {
			var children []Value
			switch {
			case isMapping(n):
				children = mapValues(n)
			case isSequence(n):
				children = n.Content
			default:
				return noMatch(n)
			}
			its := []yit.Iterator{}
			for _, c := range children {
				its = append(its, rest(c))
			}
			return yit.FromIterators(its...)
		}

	case TokenDeepWildcard:
		return func(n Value) yit.Iterator {
			return compose(yit.FromNode(n).RecurseNodes(), rest)
		}

	case TokenFilter:
		return func(n Value) yit.Iterator {
			if !isSequence(n) {
				return noMatch(n)
			}
			its := []yit.Iterator{}
			for _, c := range n.Content {
				ok, err := tok.Matcher.Match(c, w.root)
				if err != nil {
					w.err = err
					continue
				}
				if ok {
					its = append(its, rest(c))
				}
			}
			return yit.FromIterators(its...)
		}

	case TokenTransform:
		return func(n Value) yit.Iterator {
			v, err := tok.Pipeline.Apply(n, w.root)
			if err != nil {
				w.err = err
				return noMatch(n)
			}
			return rest(v)
		}
	}

	return noMatch
}

// compose applies the rest-of-chain continuation to every node an iterator
// yields and concatenates the results — the same helper as the teacher's
// path.go compose, lifted to operate on a plain continuation rather than a
// *Path.
func compose(i yit.Iterator, rest func(Value) yit.Iterator) yit.Iterator {
	its := []yit.Iterator{}
	for n, ok := i(); ok; n, ok = i() {
		its = append(its, rest(n))
	}
	return yit.FromIterators(its...)
}
