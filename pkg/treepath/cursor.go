/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "strconv"

// cursor is a minimal hand-rolled scanning cursor over raw text, shared by
// the pipeline and predicate parsers (pipeline.go, predicate_parser.go)
// since both need the same literal-argument grammar
// (int | float | 'string' | "string" | true | false | null | bareword).
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) peekRune() rune {
	if c.eof() {
		return eof
	}
	return rune(c.src[c.pos])
}

func (c *cursor) hasPrefix(p string) bool {
	return len(c.src)-c.pos >= len(p) && c.src[c.pos:c.pos+len(p)] == p
}

func (c *cursor) skipSpace() {
	for !c.eof() && (c.src[c.pos] == ' ' || c.src[c.pos] == '\t') {
		c.pos++
	}
}

func (c *cursor) identifier() string {
	start := c.pos
	for !c.eof() {
		r := rune(c.src[c.pos])
		if r == '_' || r == '-' || isDigit(r) || isAlpha(r) {
			c.pos++
			continue
		}
		break
	}
	return c.src[start:c.pos]
}

func (c *cursor) quotedString() (Value, error) {
	quote := c.src[c.pos]
	c.pos++
	start := c.pos
	for {
		if c.eof() {
			return nil, ParseErrorf(c.src, "unterminated string literal")
		}
		if c.src[c.pos] == quote {
			s := c.src[start:c.pos]
			c.pos++
			return newString(s), nil
		}
		c.pos++
	}
}

func (c *cursor) number() (Value, error) {
	start := c.pos
	if c.peek() == '-' {
		c.pos++
	}
	isFloat := false
	for !c.eof() && (isDigit(rune(c.src[c.pos])) || c.src[c.pos] == '.') {
		if c.src[c.pos] == '.' {
			isFloat = true
		}
		c.pos++
	}
	s := c.src[start:c.pos]
	if isFloat {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, ParseErrorf(c.src, "invalid numeric literal %q", s)
		}
		return newFloat(f), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, ParseErrorf(c.src, "invalid numeric literal %q", s)
	}
	return newInt(n), nil
}

// literal parses a JSON-like literal argument: integers, floats, single- or
// double-quoted strings, bare identifiers (passed through as strings), and
// true/false/null.
func (c *cursor) literal() (Value, error) {
	c.skipSpace()
	switch {
	case c.peek() == '\'' || c.peek() == '"':
		return c.quotedString()
	case c.peek() == '-' || isDigit(c.peekRune()):
		return c.number()
	default:
		ident := c.identifier()
		if ident == "" {
			return nil, ParseErrorf(c.src, "expected argument at position %d", c.pos)
		}
		switch ident {
		case "true":
			return newBool(true), nil
		case "false":
			return newBool(false), nil
		case "null":
			return newNull(), nil
		default:
			return newString(ident), nil
		}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
