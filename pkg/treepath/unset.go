/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath

import "sort"

// Unset walks path against data and removes every location the terminal
// token reaches (spec.md §4.3.4). Locations are enumerated before any
// removal is committed, so removing one sequence element never shifts the
// index of another match collected in the same pass. It returns data
// unchanged (the same reference).
func Unset(data Value, path string, opts ...Option) (Value, error) {
	cfg := applyOptions(opts)
	// The scaffolding knobs belong to Set; Unset never creates or replaces
	// containers while walking to its targets.
	cfg.createMissing = false
	cfg.createFilterMatch = false
	cfg.overwriteIncompatible = false
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
			return nil, ResolutionErrorf(path, "unset target did not resolve")
		}
		return data, nil
	}

	removeInOrder(locs)
	return data, nil
}

// removeInOrder commits removals back-to-front within each shared parent
// container so that index-based locations earlier in the slice are never
// invalidated by a later removal shifting subsequent elements — the
// "enumerate target positions ... before mutating" discipline (spec.md §9)
// applied to the removal phase itself, since a naive front-to-back unset of
// sibling indices would skip every other element.
func removeInOrder(locs []location) {
	byParent := map[Value][]location{}
	order := []Value{}
	for _, loc := range locs {
		if _, ok := byParent[loc.parent]; !ok {
			order = append(order, loc.parent)
		}
		byParent[loc.parent] = append(byParent[loc.parent], loc)
	}
	for _, parent := range order {
		group := byParent[parent]
		sort.SliceStable(group, func(i, j int) bool { return group[i].index > group[j].index })
		for _, loc := range group {
			loc.unset()
		}
	}
}
