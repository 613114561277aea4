/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

// TokenKind identifies the runtime behaviour of a compiled path Token, per
// spec.md §3. RootKey is not a distinct kind: "first-segment key access" is
// just the first TokenKey in the sequence, so it is absorbed into TokenKey
// (see DESIGN.md).
type TokenKind int

const (
	TokenKey TokenKind = iota
	TokenRoot
	TokenIndex
	TokenSlice
	TokenMap
	TokenWildcard
	TokenDeepWildcard
	TokenFilter
	TokenTransform
)

// Token is one parsed unit of a compiled Path.
type Token struct {
	Kind TokenKind

	Key   string    // TokenKey
	Index int       // TokenIndex
	Slice sliceSpec // TokenSlice

	Matcher  *Matcher  // TokenFilter
	Pipeline *Pipeline // TokenTransform
}

// Path is a compiled path expression: an ordered token sequence plus the
// source text it was compiled from (kept for error messages).
type Path struct {
	Source string
	Tokens []Token
}

// Compile parses a path string into a Path. It is deterministic and purely
// syntactic: the same string always yields an identical token sequence
// (spec.md §8, "Parse determinism"), and it never inspects a data tree.
func Compile(path string) (*Path, error) {
	l := lex("path", path)
	tokens, err := parseTokens(l)
	if err != nil {
		return nil, err
	}
	return &Path{Source: path, Tokens: tokens}, nil
}

func parseTokens(l *lexer) ([]Token, error) {
	tokens := []Token{}
	for {
		lx := l.nextLexeme()
		switch lx.typ {
		case lexemeError:
			return nil, ParseErrorf(lx.val, "%s", lx.val)

		case lexemeIdentity, lexemeEOF:
			return tokens, nil

		case lexemeRoot:
			tokens = append(tokens, Token{Kind: TokenRoot})

		case lexemeKey:
			tokens = append(tokens, Token{Kind: TokenKey, Key: lx.val})

		case lexemeWildcard:
			tokens = append(tokens, Token{Kind: TokenWildcard})

		case lexemeDeepWildcard:
			tokens = append(tokens, Token{Kind: TokenDeepWildcard})

		case lexemeMap:
			tokens = append(tokens, Token{Kind: TokenMap})

		case lexemeIndex:
			i, err := parseSignedInt(lx.val)
			if err != nil {
				return nil, ParseErrorf(lx.val, "invalid index %q", lx.val)
			}
			tokens = append(tokens, Token{Kind: TokenIndex, Index: i})

		case lexemeSlice:
			spec, err := parseSliceSpec(lx.val)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenSlice, Slice: spec})

		case lexemeFilter:
			m, err := compileMatcher(lx.val)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenFilter, Matcher: m})

		case lexemeTransform:
			p, err := compilePipeline(lx.val)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenTransform, Pipeline: p})

		default:
			return nil, ParseErrorf(lx.val, "invalid path syntax")
		}
	}
}

func parseSignedInt(s string) (int, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, ParseErrorf(s, "missing digits")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ParseErrorf(s, "non-digit character %q", r)
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
