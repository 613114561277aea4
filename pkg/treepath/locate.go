/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

// location addresses one mutable slot in a container: a mapping key or a
// sequence index. set/unset enumerate every location a path reaches before
// committing any write or removal (spec.md §4.3.3/§9: "enumerate target
// positions ... before mutating"), so that removing or replacing one match
// can never invalidate the indices of another match collected in the same
// pass.
type location struct {
	parent Value
	isKey  bool
	key    string
	index  int
}

func (l location) get() Value {
	if l.isKey {
		return mapGet(l.parent, l.key)
	}
	if l.index < 0 || l.index >= len(l.parent.Content) {
		return Undefined
	}
	return l.parent.Content[l.index]
}

func (l location) set(v Value) {
	if l.isKey {
		mapSet(l.parent, l.key, v)
		return
	}
	if l.index >= 0 && l.index < len(l.parent.Content) {
		l.parent.Content[l.index] = v
	}
}

func (l location) unset() bool {
	if l.isKey {
		return mapDelete(l.parent, l.key)
	}
	if l.index < 0 || l.index >= len(l.parent.Content) {
		return false
	}
	l.parent.Content = append(l.parent.Content[:l.index], l.parent.Content[l.index+1:]...)
	return true
}

// childLocations enumerates every direct child slot of a mapping or
// sequence, backing Wildcard/Map terminal writes and removals.
func childLocations(node Value) []location {
	switch {
	case isMapping(node):
		out := make([]location, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			out = append(out, location{parent: node, isKey: true, key: node.Content[i].Value})
		}
		return out
	case isSequence(node):
		out := make([]location, 0, len(node.Content))
		for i := range node.Content {
			out = append(out, location{parent: node, index: i})
		}
		return out
	}
	return nil
}

// deepLocations enumerates every descendant slot of node, pre-order,
// backing DeepWildcard terminal writes and removals (spec.md §4.3.1's
// "pre-order descendant enumeration").
func deepLocations(node Value) []location {
	var out []location
	var recurse func(Value)
	recurse = func(n Value) {
		for _, loc := range childLocations(n) {
			out = append(out, loc)
			recurse(loc.get())
		}
	}
	recurse(node)
	return out
}

// scaffold builds the container create_missing should splice in for a
// missing Key, shaped by the *next* token so the result is immediately
// walkable: a SequenceNode when the next token expects one (Index, Slice,
// Filter, Map), a MappingNode otherwise — spec.md's Open Question
// resolution (see DESIGN.md).
func scaffold(rest []Token) Value {
	if len(rest) == 0 {
		return newNull()
	}
	switch rest[0].Kind {
	case TokenIndex, TokenSlice, TokenFilter, TokenMap:
		return newSequence(nil)
	default:
		return newMapping()
	}
}

// resolveLocations walks tokens against node, returning every location the
// path's terminal token reaches. Non-terminal Key traversal performs
// create_missing scaffolding and overwrite_incompatible replacement as it
// goes; Filter performs create_filter_match at every occurrence, not only
// at the terminal, since the spec's terminal-only wording describes the
// common case rather than forbidding the general one.
func resolveLocations(node Value, tokens []Token, root Value, cfg *config) ([]location, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) == 1 {
		return terminalLocations(node, tokens[0], root, cfg)
	}

	tok := tokens[0]
	rest := tokens[1:]

	switch tok.Kind {
	case TokenRoot:
		return resolveLocations(root, rest, root, cfg)

	case TokenKey:
		if !isMapping(node) {
			if !cfg.overwriteIncompatible {
				return nil, nil
			}
			*node = *newMapping()
		}
		v := mapGet(node, tok.Key)
		if isUndefined(v) {
			if !cfg.createMissing {
				return nil, nil
			}
			v = scaffold(rest)
			mapSet(node, tok.Key, v)
		}
		return resolveLocations(v, rest, root, cfg)

	case TokenIndex:
		if !isSequence(node) {
			return nil, nil
		}
		i, ok := normalizeIndex(tok.Index, len(node.Content))
		if !ok {
			return nil, nil
		}
		return resolveLocations(node.Content[i], rest, root, cfg)

	case TokenSlice:
		if !isSequence(node) {
			return nil, nil
		}
		var out []location
		for _, i := range sliceIndices(tok.Slice, len(node.Content)) {
			sub, err := resolveLocations(node.Content[i], rest, root, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case TokenMap:
		if !isSequence(node) {
			return nil, nil
		}
		var out []location
		for _, v := range node.Content {
			sub, err := resolveLocations(v, rest, root, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case TokenWildcard:
		var children []Value
		switch {
		case isMapping(node):
			children = mapValues(node)
		case isSequence(node):
			children = node.Content
		default:
			return nil, nil
		}
		var out []location
		for _, c := range children {
			sub, err := resolveLocations(c, rest, root, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case TokenDeepWildcard:
		var out []location
		var err error
		var recurse func(Value)
		recurse = func(n Value) {
			if err != nil {
				return
			}
			sub, e := resolveLocations(n, rest, root, cfg)
			if e != nil {
				err = e
				return
			}
			out = append(out, sub...)
			switch {
			case isMapping(n):
				for _, v := range mapValues(n) {
					recurse(v)
				}
			case isSequence(n):
				for _, v := range n.Content {
					recurse(v)
				}
			}
		}
		recurse(node)
		if err != nil {
			return nil, err
		}
		return out, nil

	case TokenFilter:
		if !isSequence(node) {
			return nil, nil
		}
		var out []location
		matched := false
		for _, c := range node.Content {
			ok, err := tok.Matcher.Match(c, root)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				sub, err := resolveLocations(c, rest, root, cfg)
				if err != nil {
					return nil, err
				}
				out = append(out, sub...)
			}
		}
		if !matched && cfg.createFilterMatch {
			elem := tok.Matcher.seedMapping()
			node.Content = append(node.Content, elem)
			sub, err := resolveLocations(elem, rest, root, cfg)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
		return out, nil

	case TokenTransform:
		v, err := tok.Pipeline.Apply(node, root)
		if err != nil {
			return nil, err
		}
		return resolveLocations(v, rest, root, cfg)
	}

	return nil, nil
}

// terminalLocations applies the last token of a path as an assignable or
// removable slot set, per spec.md §4.3.3's "Terminal write semantics by
// last token".
func terminalLocations(node Value, tok Token, root Value, cfg *config) ([]location, error) {
	switch tok.Kind {
	case TokenKey:
		if !isMapping(node) {
			if !cfg.overwriteIncompatible {
				return nil, nil
			}
			*node = *newMapping()
		}
		return []location{{parent: node, isKey: true, key: tok.Key}}, nil

	case TokenIndex:
		if !isSequence(node) {
			return nil, nil
		}
		i, ok := normalizeIndex(tok.Index, len(node.Content))
		if !ok {
			if tok.Index >= 0 && cfg.createMissing {
				for len(node.Content) <= tok.Index {
					node.Content = append(node.Content, newNull())
				}
				return []location{{parent: node, index: tok.Index}}, nil
			}
			return nil, nil
		}
		return []location{{parent: node, index: i}}, nil

	case TokenSlice:
		if !isSequence(node) {
			return nil, nil
		}
		var out []location
		for _, i := range sliceIndices(tok.Slice, len(node.Content)) {
			out = append(out, location{parent: node, index: i})
		}
		return out, nil

	case TokenMap:
		if !isSequence(node) {
			return nil, nil
		}
		if len(node.Content) == 0 && cfg.createMissing {
			node.Content = append(node.Content, newNull())
		}
		return childLocations(node), nil

	case TokenWildcard:
		return childLocations(node), nil

	case TokenDeepWildcard:
		return deepLocations(node), nil

	case TokenFilter:
		if !isSequence(node) {
			return nil, nil
		}
		var out []location
		matched := false
		for i, c := range node.Content {
			ok, err := tok.Matcher.Match(c, root)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				out = append(out, location{parent: node, index: i})
			}
		}
		if !matched && cfg.createFilterMatch {
			elem := tok.Matcher.seedMapping()
			node.Content = append(node.Content, elem)
			out = append(out, location{parent: node, index: len(node.Content) - 1})
		}
		return out, nil

	case TokenRoot, TokenTransform:
		return nil, nil
	}

	return nil, nil
}
