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

func TestPredicateOperators(t *testing.T) {
	doc := mustUnmarshal(t, `items: [{id: 1, active: true}, {id: 2, active: false}, {id: 3, active: true}]`)

	cases := []struct {
		name string
		path string
		want string
	}{
		{"equality", `items[?id==2]`, "[{id: 2, active: false}]"},
		{"inequality", `items[?id!=2].id[]`, "[1, 3]"},
		{"conjunction", `items[?id>1 && active==true].id`, "[3]"},
		{"disjunction", `items[?id==1 || id==3].id[]`, "[1, 3]"},
		{"negation", `items[?!active].id`, "[2]"},
		{"bare key truthy shorthand", `items[?active].id[]`, "[1, 3]"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := treepath.Get(doc, tc.path)
			require.NoError(t, err)
			require.Equal(t, tc.want, encodeFlow(t, got))
		})
	}
}

func TestPredicateUndefinedComparisons(t *testing.T) {
	doc := mustUnmarshal(t, `items: [{id: 1}, {id: 2, tag: x}]`)

	// A missing field is Undefined; "!=" against a concrete literal is true
	// for exactly the element(s) where the field is absent.
	got, err := treepath.Get(doc, `items[?tag!="x"].id`)
	require.NoError(t, err)
	require.Equal(t, "[1]", encodeFlow(t, got))

	// Every other comparator is false when either side is Undefined, so
	// "==" against a missing field never matches.
	ok, err := treepath.Exists(doc, `items[?tag==1]`)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPredicateLhsPipeline(t *testing.T) {
	doc := mustUnmarshal(t, `items: [hi, hello, yo]`)

	got, err := treepath.Get(doc, `items[?.|$len>2]`)
	require.NoError(t, err)
	require.Equal(t, "[hello]", encodeFlow(t, got))
}
