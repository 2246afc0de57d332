// Package siroap models reconfigurable photonic integrated circuits built
// from a rectangular mesh of Basic Tunable Units (BTUs).
//
// 🚀 What is siroap?
//
//	An in-memory mesh model that brings together:
//		• Optical primitives: waveguides, couplers, BTUs, ring resonators
//		• Netlists: named components and port-to-port connections under locks
//		• Meshes: N×M hexagonal-cell layout, boundary numbering, terminals
//		• States: bar, cross, coupler and phase-shifter settings per cell
//		• Tracing: phase along neighbor paths and around closed rings
//		• Solving: frequency-domain detector response per source
//
// Packages:
//
//	photonic/ - components, S-matrices, network reduction (gonum)
//	netlist/  - thread-safe component catalog and connection set
//	state/    - named BTU states and their phase resolution
//	mesh/     - mesh construction, configuration, ring tracing, termination
//	solver/   - Solver interface, Reference solver, Prometheus metrics
//	config/   - YAML run description with validation
//	cmd/siroap - command line front end (topology, rings, solve)
//
// Quick ASCII example, a 1×1 mesh and its single ring:
//
//	        H0_0
//	   V0_0 (  ) V0_1
//	        H1_0
//
// Eight boundary ports are numbered west, south, east, north; every
// other port is joined to a neighbor cell.
//
//	go get github.com/katalvlaran/siroap
package siroap
