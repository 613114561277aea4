/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package treepath implements a compact path-expression language over
// nested tree data built from gopkg.in/yaml.v3 nodes: mappings, ordered
// sequences, and scalars (including timestamps). A path string compiles to
// a token sequence which the package then executes against a *yaml.Node
// tree to get, test existence of, set, or unset a value.
//
// Paths combine dotted key traversal ("a.b.c"), sequence indexing and
// slicing ("items[0]", "items[1:3]"), element mapping ("items[]"),
// predicate filters ("items[?id==2]"), wildcards ("*", "**"), a root
// back-reference ("$$root"), and a pipelined value-transform filter stage
// ("|$upper"). Compile turns a path string into a Path; Get/Exists/Set/Unset
// are the four entry points.
package treepath
