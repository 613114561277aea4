/*
 * Copyright 2020 Go YAML Path Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package treepath_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/glyn/treepath/pkg/treepath"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

// Example rewrites the sidecar container's image reference in a Deployment
// manifest, using a filter to retarget only that container rather than every
// container indiscriminately.
func Example() {
	y := `---
apiVersion: apps/v1
kind: Deployment
metadata:
  name: sample-deployment
spec:
  template:
    spec:
      containers:
      - name: app
        image: app:1.0
      - name: sidecar
        image: proxy:1.0
`
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(y), &n); err != nil {
		log.Fatalf("cannot unmarshal document: %v", err)
	}

	_, err := treepath.Set(&n, `spec.template.spec.containers[?name=="sidecar"].image`, "proxy:2.0")
	if err != nil {
		log.Fatalf("cannot set path: %v", err)
	}

	var buf bytes.Buffer
	e := yaml.NewEncoder(&buf)
	defer e.Close()
	e.SetIndent(2)
	if err := e.Encode(&n); err != nil {
		log.Fatalf("cannot marshal document: %v", err)
	}

	want := `apiVersion: apps/v1
kind: Deployment
metadata:
  name: sample-deployment
spec:
  template:
    spec:
      containers:
      - name: app
        image: app:1.0
      - name: sidecar
        image: proxy:2.0
`
	if buf.String() == want {
		fmt.Print("success")
	} else {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(buf.String(), want, false)
		fmt.Println(diffs)
	}

	// Output: success
}
