/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import (
	"fmt"
	"strings"
)

// Set walks path against data and assigns value at every location the
// terminal token reaches, honoring create_missing/create_filter_match/
// overwrite_incompatible (spec.md §4.3.3). It returns data unchanged (the
// same reference): the engine mutates in place and never copies
// containers.
func Set(data Value, path string, value interface{}, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	p, err := CompileCached(path)
	if err != nil {
		return nil, err
	}
	root := rootContent(data)
	locs, err := resolveLocations(root, p.Tokens, root, cfg)
	if err != nil {
		return nil, err
	}
	if len(locs) == 0 {
		if cfg.strict {
			return nil, ResolutionErrorf(path, "set target did not resolve")
		}
		return data, nil
	}
	for _, loc := range locs {
		resolved, err := resolveSetValue(value, loc.get(), root)
		if err != nil {
			return nil, err
		}
		loc.set(resolved)
	}
	return data, nil
}

// resolveSetValue implements spec.md §4.3.3's three value-resolution rules:
// a literal Value is used as-is; a string naming a pipeline (leading '$' or
// containing '|') is applied to the pre-write element value; a string
// naming a "$$root[.path][|pipeline]" reference is resolved against root
// first. Any other Go value is converted to the equivalent scalar literal.
func resolveSetValue(raw interface{}, preWrite, root Value) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case string:
		return resolveStringSetValue(v, preWrite, root)
	case bool:
		return newBool(v), nil
	case int:
		return newInt(int64(v)), nil
	case int64:
		return newInt(v), nil
	case float64:
		return newFloat(v), nil
	case nil:
		return newNull(), nil
	default:
		return nil, OperatorErrorf(fmt.Sprintf("%v", raw), "unsupported set value type %T", raw)
	}
}

func resolveStringSetValue(v string, preWrite, root Value) (Value, error) {
	switch {
	case strings.HasPrefix(v, rootMarker):
		rest := strings.TrimPrefix(v, rootMarker)
		pathText, pipelineText := rest, ""
		if idx := strings.Index(rest, "|"); idx >= 0 {
			pathText, pipelineText = rest[:idx], rest[idx+1:]
		}
		pathText = strings.TrimPrefix(pathText, ".")
		resolved := root
		if pathText != "" {
			p, err := Compile(pathText)
			if err != nil {
				return nil, err
			}
			resolved = walkGet(root, p.Tokens, root)
		}
		if pipelineText == "" {
			return resolved, nil
		}
		pipe, err := compilePipeline(pipelineText)
		if err != nil {
			return nil, err
		}
		return pipe.Apply(resolved, root)

	case strings.HasPrefix(v, "$") || strings.Contains(v, "|"):
		pipe, err := compilePipeline(v)
		if err != nil {
			return nil, err
		}
		return pipe.Apply(preWrite, root)

	default:
		return newString(v), nil
	}
}
