/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command treepath runs a single get/exists/set/unset operation against a
// YAML document read from a file or stdin, printing the result as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glyn/treepath/pkg/treepath"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("treepath", flag.ContinueOnError)
	op := fs.String("op", "get", "operation to run: get, exists, set or unset")
	file := fs.String("f", "", "YAML document file (defaults to stdin)")
	path := fs.String("path", "", "path expression")
	value := fs.String("value", "", "value for -op=set (a string, a $filter pipeline, or a $$root reference)")
	strict := fs.Bool("strict", false, "fail instead of returning a default/no-op on an unresolved path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("-path is required")
	}

	var in io.Reader = stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	var opts []treepath.Option
	if *strict {
		opts = append(opts, treepath.Strict())
	}

	switch strings.ToLower(*op) {
	case "get":
		result, err := treepath.Get(&doc, *path, opts...)
		if err != nil {
			return err
		}
		return encode(stdout, result)

	case "exists":
		ok, err := treepath.Exists(&doc, *path, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, ok)
		return nil

	case "set":
		if _, err := treepath.Set(&doc, *path, scalarValue(*value), opts...); err != nil {
			return err
		}
		return encode(stdout, &doc)

	case "unset":
		if _, err := treepath.Unset(&doc, *path, opts...); err != nil {
			return err
		}
		return encode(stdout, &doc)

	default:
		return fmt.Errorf("unknown -op %q", *op)
	}
}

// scalarValue lets -value pass through the engine's string set-value rules
// (pipeline and $$root-reference forms) untouched, rather than pre-parsing it.
func scalarValue(v string) string { return v }

func encode(w io.Writer, n *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(n)
}
