// SPDX-License-Identifier: MIT
// Command siroap builds a photonic BTU mesh from a YAML run description and
// reports its topology, ring phases or end-to-end transmission, or
// characterizes a single BTU.
//
// Usage:
//
//	siroap topology --config run.yaml
//	siroap rings    --config run.yaml
//	siroap solve    --config run.yaml [--metrics-file siroap.prom]
//	siroap btu      --config run.yaml [--points 50] [--wl 1.5e-6]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "siroap:", err)
		os.Exit(1)
	}
}
