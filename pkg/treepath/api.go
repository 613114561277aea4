/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

// config holds the per-call knobs every entry point accepts, built from
// Options (spec.md §6's "four functions" share `strict`; `set` additionally
// takes `create_missing`, `create_filter_match`, `overwrite_incompatible`,
// all three defaulting to true — so their Options are opt-out, unlike
// Strict which is opt-in).
type config struct {
	strict                bool
	def                   Value
	createMissing         bool
	createFilterMatch     bool
	overwriteIncompatible bool
}

func newConfig() *config {
	return &config{
		def:                   newNull(),
		createMissing:         true,
		createFilterMatch:     true,
		overwriteIncompatible: true,
	}
}

// Option configures a single Get/Exists/Set/Unset call.
type Option func(*config)

// Strict makes a resolution failure raise ResolutionError instead of
// returning the operation's default/no-op outcome (spec.md §6).
func Strict() Option { return func(c *config) { c.strict = true } }

// WithDefault sets Get's fallback value for an Undefined, non-strict
// resolution (spec.md §6's `default=null`).
func WithDefault(def Value) Option { return func(c *config) { c.def = def } }

// NoCreateMissing disables set's implicit scaffolding of missing mapping
// keys (spec.md §4.3.3's `create_missing`, default true).
func NoCreateMissing() Option { return func(c *config) { c.createMissing = false } }

// NoCreateFilterMatch disables set's implicit append of a seeded element
// when a terminal Filter matches nothing (spec.md §4.3.3's
// `create_filter_match`, default true).
func NoCreateFilterMatch() Option { return func(c *config) { c.createFilterMatch = false } }

// NoOverwriteIncompatible disables set's replacement of a non-mapping
// cursor with an empty mapping during Key traversal (spec.md §4.3.3's
// `overwrite_incompatible`, default true).
func NoOverwriteIncompatible() Option { return func(c *config) { c.overwriteIncompatible = false } }

func applyOptions(opts []Option) *config {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// isProjecting reports whether tokens can ever fan a single cursor out
// into more than one matched node. A Slice/Map/Wildcard/DeepWildcard/
// Filter step anywhere in the path — not only as its last step — means
// the overall result must be materialized as one sequence Value rather
// than narrowed to its first match (spec.md §4.3.1: a filter "cursor
// becomes the filtered sequence"; Map/Wildcard/DeepWildcard "collect
// into a sequence"). Whether a path projects is fixed by its token
// sequence alone, never by the data it happens to match.
func isProjecting(tokens []Token) bool {
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenSlice, TokenMap, TokenWildcard, TokenDeepWildcard, TokenFilter:
			return true
		}
	}
	return false
}

// Get resolves path against data and returns the value found, the
// configured default if it resolves to Undefined, or a ResolutionError in
// strict mode (spec.md §4.3.1, §6).
func Get(data Value, path string, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	p, err := CompileCached(path)
	if err != nil {
		return nil, err
	}
	root := rootContent(data)
	nodes, err := find(root, p.Tokens, root)
	if err != nil {
		return nil, err
	}
	if isProjecting(p.Tokens) {
		// A projecting path always resolves to a sequence, even an empty
		// one (spec.md §8 boundary case) — it never falls back to a
		// default or a strict error, since the cursor DID resolve.
		return newSequence(nodes), nil
	}
	if len(nodes) == 0 && len(p.Tokens) > 0 {
		// A trailing pipeline still runs on an Undefined cursor, so a stage
		// such as $default can supply a value for a missing path.
		if last := p.Tokens[len(p.Tokens)-1]; last.Kind == TokenTransform {
			v, err := last.Pipeline.Apply(Undefined, root)
			if err != nil {
				return nil, err
			}
			if !isUndefined(v) {
				return v, nil
			}
		}
	}
	if len(nodes) == 0 {
		if cfg.strict {
			return nil, ResolutionErrorf(path, "path did not resolve to a value")
		}
		return cfg.def, nil
	}
	return nodes[0], nil
}

// Exists reports whether path resolves to a value in data (spec.md §4.3.2):
// true unless the cursor ends Undefined, or the path is projecting (it has a
// Slice/Map/Wildcard/DeepWildcard/Filter step) and matches nothing.
func Exists(data Value, path string, opts ...Option) (bool, error) {
	cfg := applyOptions(opts)
	p, err := CompileCached(path)
	if err != nil {
		return false, err
	}
	root := rootContent(data)
	nodes, err := find(root, p.Tokens, root)
	if err != nil {
		return false, err
	}
	if isProjecting(p.Tokens) {
		return len(nodes) > 0, nil
	}
	if len(nodes) == 0 {
		if cfg.strict {
			return false, ResolutionErrorf(path, "path did not resolve to a value")
		}
		return false, nil
	}
	return true, nil
}
