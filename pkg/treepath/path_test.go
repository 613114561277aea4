/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath_test

import (
	"testing"

	"github.com/glyn/treepath/pkg/treepath"
	"github.com/stretchr/testify/require"
)

func TestCompileRejectsMalformedPaths(t *testing.T) {
	cases := []string{
		"a[",
		"a[?id==]",
		"a[1:2:3:4]",
		"a|$unclosed(",
	}
	for _, path := range cases {
		_, err := treepath.Compile(path)
		require.Error(t, err, path)
		require.True(t, treepath.IsParseError(err), path)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	const path = "a.b[0][?id==1].c[]|$upper"
	p1, err := treepath.Compile(path)
	require.NoError(t, err)
	p2, err := treepath.Compile(path)
	require.NoError(t, err)
	require.Equal(t, len(p1.Tokens), len(p2.Tokens))
	require.Equal(t, p1.Source, p2.Source)
}

func TestCompileCachedReusesParsedPath(t *testing.T) {
	const path = "a.b.c"
	p1, err := treepath.CompileCached(path)
	require.NoError(t, err)
	p2, err := treepath.CompileCached(path)
	require.NoError(t, err)
	require.Same(t, p1, p2, "CompileCached must memoize by source text")
}

func TestSliceTokens(t *testing.T) {
	doc := mustUnmarshal(t, `a: [0, 1, 2, 3, 4]`)

	cases := []struct {
		path string
		want string
	}{
		{"a[1:3]", "[1, 2]"},
		{"a[:2]", "[0, 1]"},
		{"a[-2:]", "[3, 4]"},
		{"a[::2]", "[0, 2, 4]"},
		{"a[::-1]", "[4, 3, 2, 1, 0]"},
	}
	for _, tc := range cases {
		got, err := treepath.Get(doc, tc.path)
		require.NoError(t, err)
		require.Equal(t, tc.want, encodeFlow(t, got), tc.path)
	}
}

func TestWildcardOverMappingValues(t *testing.T) {
	doc := mustUnmarshal(t, `a: {x: 1, y: 2}`)

	got, err := treepath.Get(doc, "a.*[]")
	require.NoError(t, err)
	require.Equal(t, "[1, 2]", encodeFlow(t, got))
}

func TestRootBackReference(t *testing.T) {
	doc := mustUnmarshal(t, `{scale: 3, items: [{v: 1}, {v: 2}]}`)

	// a "$$root.path|pipeline" set value resolves the pipeline against the
	// referenced root value, not the per-element pre-write value — every
	// matched location receives the same computed result (spec.md scenario 8).
	_, err := treepath.Set(doc, "items[].v", "$$root.scale|$mul(10)")
	require.NoError(t, err)
	require.Equal(t, "{scale: 3, items: [{v: 30}, {v: 30}]}", encodeFlow(t, doc))
}
