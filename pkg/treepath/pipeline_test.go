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

func TestPipelineMapOverSequence(t *testing.T) {
	doc := mustUnmarshal(t, `nums: [1, 2, 3]`)

	got, err := treepath.Get(doc, "nums|$double[]")
	require.NoError(t, err)
	require.Equal(t, "[2, 4, 6]", encodeFlow(t, got))
}

func TestPipelineChainedStages(t *testing.T) {
	doc := mustUnmarshal(t, `words: [Hello, World]`)

	got, err := treepath.Get(doc, "words[0]|$lower|$upper")
	require.NoError(t, err)
	require.Equal(t, "HELLO", encodeFlow(t, got))
}

func TestPipelineCollectionBuiltins(t *testing.T) {
	doc := mustUnmarshal(t, `nums: [3, 1, 2]`)

	got, err := treepath.Get(doc, "nums|$sum")
	require.NoError(t, err)
	require.Equal(t, "6", encodeFlow(t, got))

	got, err = treepath.Get(doc, "nums|$max")
	require.NoError(t, err)
	require.Equal(t, "3", encodeFlow(t, got))

	got, err = treepath.Get(doc, "nums|$sorted")
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]", encodeFlow(t, got))
}

func TestPipelineUnknownFilterIsOperatorError(t *testing.T) {
	doc := mustUnmarshal(t, `a: 1`)

	_, err := treepath.Get(doc, "a|$nope")
	require.True(t, treepath.IsOperatorError(err))
}

func TestPipelineDefault(t *testing.T) {
	doc := mustUnmarshal(t, `{a: null, b: 5}`)

	got, err := treepath.Get(doc, "a|$default(7)")
	require.NoError(t, err)
	require.Equal(t, "7", encodeFlow(t, got))

	got, err = treepath.Get(doc, "missing|$default(7)")
	require.NoError(t, err)
	require.Equal(t, "7", encodeFlow(t, got))
}

func TestRunFilterFunctionIntrospection(t *testing.T) {
	three := mustUnmarshal(t, `3`)
	three, err := treepath.Get(three, ".")
	require.NoError(t, err)

	doubled, err := treepath.RunFilterFunction("double", three)
	require.NoError(t, err)
	require.Equal(t, "6", encodeFlow(t, doubled))
}
