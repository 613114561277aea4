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

func TestSetScaffoldsMissingMappings(t *testing.T) {
	doc := mustUnmarshal(t, `{}`)

	_, err := treepath.Set(doc, "a.b.c", 5)
	require.NoError(t, err)
	require.Equal(t, "{a: {b: {c: 5}}}", encodeFlow(t, doc))
}

func TestSetPipelineValueOverSequence(t *testing.T) {
	doc := mustUnmarshal(t, `a: {nums: [1, 2, 3]}`)

	_, err := treepath.Set(doc, "a.nums[]", "$double")
	require.NoError(t, err)
	require.Equal(t, "{a: {nums: [2, 4, 6]}}", encodeFlow(t, doc))
}

func TestSetRootReferenceValue(t *testing.T) {
	doc := mustUnmarshal(t, `{a: {items: [{v: 0}, {v: 0}]}, source: 9}`)

	_, err := treepath.Set(doc, "a.items[].v", "$$root.source|$double")
	require.NoError(t, err)
	require.Equal(t, "{a: {items: [{v: 18}, {v: 18}]}, source: 9}", encodeFlow(t, doc))
}

func TestSetCreateMissingSequenceScaffold(t *testing.T) {
	doc := mustUnmarshal(t, `{}`)

	_, err := treepath.Set(doc, "a[0]", "x")
	require.NoError(t, err)
	require.Equal(t, "{a: [x]}", encodeFlow(t, doc))
}

func TestSetNoCreateMissingLeavesDocumentUnchanged(t *testing.T) {
	doc := mustUnmarshal(t, `{}`)

	result, err := treepath.Set(doc, "a.b", 1, treepath.NoCreateMissing())
	require.NoError(t, err)
	require.Equal(t, "{}", encodeFlow(t, result))
}

func TestSetOverwriteIncompatibleReplacesScalarWithMapping(t *testing.T) {
	doc := mustUnmarshal(t, `a: 1`)

	_, err := treepath.Set(doc, "a.b", 2)
	require.NoError(t, err)
	require.Equal(t, "{a: {b: 2}}", encodeFlow(t, doc))
}

func TestSetCreateFilterMatchSeedsMapping(t *testing.T) {
	doc := mustUnmarshal(t, `items: [{id: 1}]`)

	_, err := treepath.Set(doc, `items[?id==2].name`, "Lin")
	require.NoError(t, err)
	require.Equal(t, "{items: [{id: 1}, {id: 2, name: Lin}]}", encodeFlow(t, doc))
}

func TestSetStrictReportsUnresolvedTarget(t *testing.T) {
	doc := mustUnmarshal(t, `{}`)

	_, err := treepath.Set(doc, "a.b", 1, treepath.NoCreateMissing(), treepath.Strict())
	require.True(t, treepath.IsResolutionError(err))
}
