// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// errors.go - sentinel errors for the mesh package.
//
// Error policy:
//   • Two category sentinels: ErrConfiguration and ErrTopology. Every error
//     returned by this package wraps exactly one of them.
//   • Specific sentinels (ErrUnknownCell, ErrIndexRange, ...) are wrapped
//     together with their category, so both errors.Is checks succeed.
//   • Reaching the mesh edge while tracing is not an error; it surfaces as
//     exists=false.

package mesh

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the category of caller mistakes: unknown state names,
// unknown cells, bad termination indices. A configuration error never leaves
// the mesh partially mutated.
var ErrConfiguration = errors.New("mesh: configuration error")

// ErrTopology is the category of construction failures: meaningless
// dimensions or a violated wiring invariant. Build returns no mesh with it.
var ErrTopology = errors.New("mesh: topology error")

// ErrTooFewCells indicates rows < 1 or cols < 1.
var ErrTooFewCells = errors.New("mesh: rows and cols must be >= 1")

// ErrUnknownCell indicates a cell key outside the mesh.
var ErrUnknownCell = errors.New("mesh: unknown cell")

// ErrBadCellKey indicates a cell key string that is not V{i}_{j} or H{i}_{j}.
var ErrBadCellKey = errors.New("mesh: malformed cell key")

// ErrIndexRange indicates a boundary index outside [0, 4(N+M)).
var ErrIndexRange = errors.New("mesh: boundary index out of range")

// ErrIndexCollision indicates a boundary index listed as both source and detector.
var ErrIndexCollision = errors.New("mesh: index is both source and detector")

// ErrAlreadyTerminated indicates a second Terminate call.
var ErrAlreadyTerminated = errors.New("mesh: already terminated")

// ErrSharedCell indicates a factory that returned a BTU already placed in
// the mesh; every cell must own its phase state.
var ErrSharedCell = errors.New("mesh: factory reused a cell instance")

// errWiring marks a violated wiring invariant inside ErrTopology.
var errWiring = errors.New("mesh: wiring invariant violated")

// configErr returns "<method>: <msg>: <err>" wrapping err and ErrConfiguration.
func configErr(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), err, ErrConfiguration)
}

// topologyErr returns "<method>: <msg>: <err>" wrapping err and ErrTopology.
func topologyErr(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), err, ErrTopology)
}
