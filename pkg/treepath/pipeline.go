/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "strings"

// FilterCall is one stage of a compiled FilterPipeline: a named builtin
// plus its literal arguments and whether it maps element-wise over a
// sequence input (the trailing "[]" in "$name[]").
type FilterCall struct {
	Name    string
	Args    []Value
	MapOver bool
}

// Pipeline is an ordered list of FilterCall stages, compiled once from
// pipeline text and reusable across many Apply calls (spec.md §4.2,
// §9 "predicates and pipelines are parsed once per token").
type Pipeline struct {
	Source string
	Calls  []FilterCall
}

// compilePipeline parses pipeline text (everything after a path's trailing
// '|', or an operand's embedded "$name(...)|$name(...)" chain) into a
// Pipeline.
func compilePipeline(src string) (*Pipeline, error) {
	p := newPipelineParser(src)
	calls, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Pipeline{Source: src, Calls: calls}, nil
}

// Apply threads value through each stage in order, applying MapOver stages
// element-wise over a sequence input per spec.md §4.2: "the output of
// stage i is the input of stage i+1. If a stage declares map_over and the
// input is a sequence, the stage is applied to each element; otherwise it
// applies to the input as a whole."
func (p *Pipeline) Apply(value, root Value) (Value, error) {
	cur := value
	for _, call := range p.Calls {
		fn, ok := registry[call.Name]
		if !ok {
			return nil, OperatorErrorf(call.Name, "unknown filter function")
		}
		if call.MapOver && isSequence(cur) {
			out := make([]Value, len(cur.Content))
			for i, elem := range cur.Content {
				r, err := fn(elem, root, call.Args)
				if err != nil {
					return nil, err
				}
				out[i] = r
			}
			cur = newSequence(out)
			continue
		}
		r, err := fn(cur, root, call.Args)
		if err != nil {
			return nil, err
		}
		cur = r
	}
	return cur, nil
}

// RunFilterFunction exposes the builtin registry directly (spec.md §6,
// optional introspection entry point).
func RunFilterFunction(name string, value Value, args ...Value) (Value, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, OperatorErrorf(name, "unknown filter function")
	}
	return fn(value, value, args)
}

// pipelineParser is a small hand-rolled recursive-descent parser over raw
// pipeline text, in the same spirit as the teacher's filter_parser.go
// array-based parser but operating directly on runes since the pipeline
// grammar is a flat, left-associative stage chain with no precedence to
// climb.
type pipelineParser struct {
	cursor
}

func newPipelineParser(src string) *pipelineParser {
	return &pipelineParser{cursor{src: src}}
}

func (p *pipelineParser) parse() ([]FilterCall, error) {
	calls := []FilterCall{}
	for {
		p.skipSpace()
		call, err := p.stage()
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
		p.skipSpace()
		if p.peek() == '|' {
			p.pos++
			continue
		}
		break
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, ParseErrorf(p.src, "unexpected character %q at position %d", p.peekRune(), p.pos)
	}
	return calls, nil
}

func (p *pipelineParser) stage() (FilterCall, error) {
	if p.peek() != '$' {
		return FilterCall{}, ParseErrorf(p.src, "expected '$' at position %d", p.pos)
	}
	p.pos++
	name := p.identifier()
	if name == "" {
		return FilterCall{}, ParseErrorf(p.src, "missing filter name after '$' at position %d", p.pos)
	}
	call := FilterCall{Name: name}
	if p.peek() == '(' {
		p.pos++
		args, err := p.args()
		if err != nil {
			return FilterCall{}, err
		}
		call.Args = args
		if p.peek() != ')' {
			return FilterCall{}, ParseErrorf(p.src, "unmatched '(' at position %d", p.pos)
		}
		p.pos++
	}
	if strings.HasPrefix(p.src[p.pos:], "[]") {
		p.pos += 2
		call.MapOver = true
	}
	return call, nil
}

func (p *pipelineParser) args() ([]Value, error) {
	args := []Value{}
	p.skipSpace()
	if p.peek() == ')' {
		return args, nil
	}
	for {
		p.skipSpace()
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		args = append(args, lit)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	return args, nil
}

