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

func TestTypeIsMatchesDynamicType(t *testing.T) {
	doc := mustUnmarshal(t, `{n: 1, f: 1.5, s: hi, b: true, z: null, seq: [1], m: {a: 1}}`)

	cases := []struct {
		path string
		want string
	}{
		{"n|$type_is(int)", "true"},
		{"f|$type_is(float)", "true"},
		{"s|$type_is(string)", "true"},
		{"b|$type_is(bool)", "true"},
		{"z|$type_is(null)", "true"},
		{"seq|$type_is(sequence)", "true"},
		{"m|$type_is(mapping)", "true"},
		{"n|$type_is(string)", "false"},
	}
	for _, tc := range cases {
		got, err := treepath.Get(doc, tc.path)
		require.NoError(t, err)
		require.Equal(t, tc.want, encodeFlow(t, got))
	}
}

func TestStrictTypeEqualityNoCoercion(t *testing.T) {
	doc := mustUnmarshal(t, `items: [{n: 1, s: "1"}]`)

	// spec.md's recommended resolution for heterogeneous-type "==": strict
	// type equality, no string/number coercion between int 1 and string "1".
	ok, err := treepath.Exists(doc, `items[?n==s]`)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = treepath.Exists(doc, `items[?n==1]`)
	require.NoError(t, err)
	require.True(t, ok, "same-type numeric equality still matches")
}

func TestIsEmptyValue(t *testing.T) {
	doc := mustUnmarshal(t, `{seq: [], m: {}, s: "", n: 0, present: [1]}`)

	for _, path := range []string{"seq", "m", "s"} {
		got, err := treepath.Get(doc, path+"|$is_empty")
		require.NoError(t, err)
		require.Equal(t, "true", encodeFlow(t, got), path)
	}

	got, err := treepath.Get(doc, "n|$is_empty")
	require.NoError(t, err)
	require.Equal(t, "false", encodeFlow(t, got), "a zero number is not empty")

	got, err = treepath.Get(doc, "present|$non_empty")
	require.NoError(t, err)
	require.Equal(t, "true", encodeFlow(t, got))
}
