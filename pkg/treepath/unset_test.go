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

func TestUnsetFilterRemovesMatchingElements(t *testing.T) {
	doc := mustUnmarshal(t, `a: {users: [{id: 1}, {id: 2}, {id: 3}]}`)

	_, err := treepath.Unset(doc, "a.users[?id>1]")
	require.NoError(t, err)
	require.Equal(t, "{a: {users: [{id: 1}]}}", encodeFlow(t, doc))
}

func TestUnsetKey(t *testing.T) {
	doc := mustUnmarshal(t, `{a: 1, b: 2}`)

	_, err := treepath.Unset(doc, "a")
	require.NoError(t, err)
	require.Equal(t, "{b: 2}", encodeFlow(t, doc))
}

func TestUnsetDescendingIndicesSurviveSiblingRemoval(t *testing.T) {
	doc := mustUnmarshal(t, `a: [0, 1, 2, 3, 4]`)

	_, err := treepath.Unset(doc, "a[?.>1]")
	require.NoError(t, err)
	require.Equal(t, "{a: [0, 1]}", encodeFlow(t, doc))
}

func TestUnsetStrictOnUnresolvedTarget(t *testing.T) {
	doc := mustUnmarshal(t, `{}`)

	_, err := treepath.Unset(doc, "a.b", treepath.Strict())
	require.True(t, treepath.IsResolutionError(err))
}
