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
	"gopkg.in/yaml.v3"
)

func mustUnmarshal(t *testing.T, y string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(y), &n))
	return &n
}

func TestGetScenarios(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		path string
		want string
	}{
		{
			name: "nested key chain",
			doc:  `a: {b: {c: 1}}`,
			path: "a.b.c",
			want: "1",
		},
		{
			name: "filter then map over name",
			doc: `a:
  users:
  - {id: 1, name: Ada}
  - {id: 2, name: Lin}
  - {id: 3, name: Mia}
`,
			path: "a.users[?id==2].name[]",
			want: "[Lin]",
		},
		{
			name: "filter with lhs pipeline",
			doc:  `items: [hi, hello, yo]`,
			path: "items[?.|$len>2]",
			want: "[hello]",
		},
		{
			name: "deep wildcard collects every id in document order",
			doc: `a:
  groups:
    g1: {u1: {id: 1}}
    g2: {nested: {u2: {id: 2}}}
`,
			path: "a.groups.**.id",
			want: "[1, 2]",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc := mustUnmarshal(t, tc.doc)
			result, err := treepath.Get(doc, tc.path)
			require.NoError(t, err)
			require.Equal(t, tc.want, encodeFlow(t, result))
		})
	}
}

func TestGetBoundaryCases(t *testing.T) {
	doc := mustUnmarshal(t, `a: [1, 2, 3]`)

	t.Run("empty path returns the whole tree", func(t *testing.T) {
		result, err := treepath.Get(doc, ".")
		require.NoError(t, err)
		require.Equal(t, doc, result)
	})

	t.Run("negative index equal to -len is valid", func(t *testing.T) {
		result, err := treepath.Get(doc, "a[-3]")
		require.NoError(t, err)
		require.Equal(t, "1", encodeFlow(t, result))
	})

	t.Run("out-of-range index returns default", func(t *testing.T) {
		def := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "fallback"}
		result, err := treepath.Get(doc, "a[99]", treepath.WithDefault(def))
		require.NoError(t, err)
		require.Equal(t, "fallback", encodeFlow(t, result))
	})

	t.Run("out-of-range index is a resolution error in strict mode", func(t *testing.T) {
		_, err := treepath.Get(doc, "a[99]", treepath.Strict())
		require.True(t, treepath.IsResolutionError(err))
	})

	t.Run("empty slice yields an empty sequence", func(t *testing.T) {
		result, err := treepath.Get(doc, "a[3:3]")
		require.NoError(t, err)
		require.Equal(t, "[]", encodeFlow(t, result))
	})

	t.Run("deep wildcard over a leaf visits only that leaf", func(t *testing.T) {
		leaf := mustUnmarshal(t, `5`)
		result, err := treepath.Get(leaf, "**")
		require.NoError(t, err)
		require.Equal(t, "[5]", encodeFlow(t, result))
	})
}

func TestExists(t *testing.T) {
	doc := mustUnmarshal(t, `a: {b: 1, empty: []}`)

	ok, err := treepath.Exists(doc, "a.b")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = treepath.Exists(doc, "a.missing")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = treepath.Exists(doc, "a.empty[]")
	require.NoError(t, err)
	require.False(t, ok, "an empty sequence produced by Map must read as non-existent")
}

// encodeFlow renders a Value as single-line flow YAML so test expectations
// read like the spec's literal scenario notation, regardless of whether the
// node came from parsing block-style source or was scaffolded fresh by set.
func encodeFlow(t *testing.T, v treepath.Value) string {
	t.Helper()
	if v == nil {
		return "<undefined>"
	}
	clone := flowClone(v)
	out, err := yaml.Marshal(clone)
	require.NoError(t, err)
	s := string(out)
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}

func flowClone(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Style = yaml.FlowStyle
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = flowClone(child)
		}
	}
	return &c
}
