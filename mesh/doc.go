// Package mesh builds and operates an N×M rectangular mesh of BTU switching
// cells.
//
// Layout for N=1, M=1 (V = vertical cell, H = horizontal cell):
//
//	          H0_0
//	   V0_0         V0_1
//	          H1_0
//
// In general the mesh holds N(M+1) vertical cells V{i}_{j} and (N+1)M
// horizontal cells H{i}_{j}. Build wires every internal port exactly once
// and numbers the remaining 4(N+M) boundary ports edge by edge (west,
// south, east, north); see boundary.go for the exact order.
//
// Lifecycle:
//
//	m, err := mesh.Build(n, m, mesh.WithLogger(log))   // structure, fixed
//	err = m.ParseConfiguration(cfg)                    // phases, repeatable
//	terms, err := m.Terminate(sources, detectors)      // terminals, once
//
// Ring tracing (Neighbor, PathPhase, RingPhase, RingPhases) is a diagnostic
// over the current phases: it sums each visited cell's common-mode phase
// phiC at a reference wavelength around the four-cell loops of the lattice.
// Stepping past the mesh edge is not an error; it yields exists=false.
//
// Errors fall into two categories, both usable with errors.Is:
//
//	ErrConfiguration - ErrUnknownCell, ErrBadCellKey, ErrIndexRange,
//	                   ErrIndexCollision, ErrAlreadyTerminated and wrapped
//	                   state codec errors. State is never partially mutated.
//	ErrTopology      - ErrTooFewCells, ErrSharedCell or a violated wiring
//	                   invariant.
//	                   Build returns no mesh.
//
// A Mesh is not safe for concurrent mutation; callers serialize writers.
package mesh
