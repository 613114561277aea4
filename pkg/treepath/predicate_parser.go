/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "strings"

// predicateParser is a small recursive-descent/precedence-climbing parser
// over raw "[?...]" filter text, grounded on the teacher's filter_parser.go
// (expression -> conjunction -> basicFilter/notExpr -> atom/primary ->
// operand), adapted to this grammar's flatter operator set ('||', '&&',
// '!', the six comparators) and to operands that may carry a trailing
// value-transform pipeline (spec.md §3/§6).
type predicateParser struct {
	cursor
}

// compileMatcher parses filter text captured by a Filter lexeme into a
// Matcher, satisfying parser.go's forward reference for TokenFilter.
func compileMatcher(src string) (*Matcher, error) {
	p := &predicateParser{cursor{src: src}}
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, ParseErrorf(src, "unexpected character %q at position %d", p.peekRune(), p.pos)
	}
	return &Matcher{root: node}, nil
}

// expression := conjunction ('||' conjunction)*
func (p *predicateParser) expression() (*matcherNode, error) {
	left, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.hasPrefix("||") {
			return left, nil
		}
		p.pos += 2
		right, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		left = &matcherNode{kind: matcherOr, left: left, right: right}
	}
}

// conjunction := negation ('&&' negation)*
func (p *predicateParser) conjunction() (*matcherNode, error) {
	left, err := p.negation()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if !p.hasPrefix("&&") {
			return left, nil
		}
		p.pos += 2
		right, err := p.negation()
		if err != nil {
			return nil, err
		}
		left = &matcherNode{kind: matcherAnd, left: left, right: right}
	}
}

// negation := '!' negation | primary
func (p *predicateParser) negation() (*matcherNode, error) {
	p.skipSpace()
	if p.peek() == '!' {
		p.pos++
		inner, err := p.negation()
		if err != nil {
			return nil, err
		}
		return &matcherNode{kind: matcherNot, left: inner}, nil
	}
	return p.primary()
}

// primary := '(' expression ')' | atom
func (p *predicateParser) primary() (*matcherNode, error) {
	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, ParseErrorf(p.src, "unmatched '(' at position %d", p.pos)
		}
		p.pos++
		return n, nil
	}
	return p.atom()
}

var comparators = []struct {
	text string
	op   cmpKind
	cmp  comparator
}{
	{"==", cmpEq, cmpEqual},
	{"!=", cmpNe, cmpNotEqual},
	{">=", cmpGe, cmpGreaterThanOrEqual},
	{"<=", cmpLe, cmpLessThanOrEqual},
	{">", cmpGt, cmpGreaterThan},
	{"<", cmpLt, cmpLessThan},
}

// atom := operand (cmpOp operand)?
//
// With no comparator, the operand must stand alone as a truthy value —
// spec.md §3's bare-key-as-predicate shorthand (e.g. "items[?active]").
func (p *predicateParser) atom() (*matcherNode, error) {
	lhs, err := p.operand()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	for _, c := range comparators {
		if p.hasPrefix(c.text) {
			p.pos += len(c.text)
			rhs, err := p.operand()
			if err != nil {
				return nil, err
			}
			return &matcherNode{kind: matcherCompare, op: c.op, cmp: c.cmp, lhs: lhs, rhs: rhs}, nil
		}
	}
	return &matcherNode{kind: matcherTruthy, lhs: lhs}, nil
}

// operand parses one side of an atom: an optional "!$name(...)" negation
// (spec.md §6's rhs production), a quoted string or numeric literal, the
// true/false/null keywords, the self-reference ".", or a dotted/indexed
// key path — any of the latter two optionally followed by a '|'-delimited
// value-transform pipeline.
func (p *predicateParser) operand() (*operand, error) {
	p.skipSpace()

	negate := false
	if p.peek() == '!' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '$' {
		p.pos++
		negate = true
	}

	var o *operand
	switch {
	case p.peek() == '\'' || p.peek() == '"':
		lit, err := p.quotedString()
		if err != nil {
			return nil, err
		}
		o = &operand{literal: lit}

	case p.peek() == '-' || isDigit(p.peekRune()):
		lit, err := p.number()
		if err != nil {
			return nil, err
		}
		o = &operand{literal: lit}

	case p.peek() == '.':
		base := p.scanKeyPath()
		o, err := p.withBase(base)
		if err != nil {
			return nil, err
		}
		o.negate = negate
		return o, nil

	case p.peek() == '$':
		// A bare "$name(args)" operand operates on the subject itself,
		// equivalent to ".|$name(args)".
		pipeline, err := p.restAsPipeline()
		if err != nil {
			return nil, err
		}
		o = &operand{keyPath: &Path{Source: "."}, pipeline: pipeline}
		o.negate = negate
		return o, nil

	default:
		start := p.pos
		ident := p.identifier()
		if ident == "" {
			return nil, ParseErrorf(p.src, "expected operand at position %d", p.pos)
		}
		if (ident == "true" || ident == "false" || ident == "null") && !p.continuesKeyPath() {
			switch ident {
			case "true":
				o = &operand{literal: newBool(true)}
			case "false":
				o = &operand{literal: newBool(false)}
			default:
				o = &operand{literal: newNull()}
			}
			o.negate = negate
			return o, nil
		}
		p.pos = start
		base := p.scanKeyPath()
		oo, err := p.withBase(base)
		if err != nil {
			return nil, err
		}
		oo.negate = negate
		return oo, nil
	}
	o.negate = negate
	return o, nil
}

// continuesKeyPath reports whether the character at the cursor continues a
// key path (a '.' segment separator or a '[' subscript), used to tell the
// "null"/"true"/"false" keywords apart from keys that merely start with
// those letters (e.g. "nullable").
func (p *predicateParser) continuesKeyPath() bool {
	return !p.eof() && (p.src[p.pos] == '.' || p.src[p.pos] == '[')
}

// scanKeyPath consumes a relative key path: "." alone, or a sequence of
// dotted/bracketed segments, stopping at the first comparator, logical
// operator, pipe, closing paren or whitespace that is not nested inside an
// open '['.
func (p *predicateParser) scanKeyPath() string {
	start := p.pos
	depth := 0
	for !p.eof() {
		ch := p.src[p.pos]
		if depth == 0 {
			switch ch {
			case '=', '!', '<', '>', '&', '|', ')', ' ', '\t':
				return p.src[start:p.pos]
			}
		}
		switch ch {
		case '[':
			depth++
		case ']':
			depth--
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

// withBase compiles base ("." or a dotted/indexed key path) into an operand,
// then attaches a trailing '|'-delimited pipeline if one follows.
func (p *predicateParser) withBase(base string) (*operand, error) {
	path, err := Compile(base)
	if err != nil {
		return nil, err
	}
	o := &operand{keyPath: path}
	p.skipSpace()
	if p.peek() == '|' {
		p.pos++
		pipeline, err := p.restAsPipeline()
		if err != nil {
			return nil, err
		}
		o.pipeline = pipeline
	}
	return o, nil
}

// restAsPipeline parses a '$name(args)[]' pipeline stage chain starting at
// the cursor, stopping at the first comparator, logical operator, closing
// paren, or whitespace not nested inside parens/brackets — then compiles
// the consumed text with the shared pipeline parser.
func (p *predicateParser) restAsPipeline() (*Pipeline, error) {
	start := p.pos
	depth := 0
	for !p.eof() {
		ch := p.src[p.pos]
		if depth == 0 {
			switch ch {
			case '=', '!', '<', '>', '&', ')', ' ', '\t':
				goto done
			}
		}
		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		}
		p.pos++
	}
done:
	text := strings.TrimSpace(p.src[start:p.pos])
	return compilePipeline(text)
}
