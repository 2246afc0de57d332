// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// mesh.go - the Mesh type and its read accessors.

package mesh

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/siroap/netlist"
	"github.com/katalvlaran/siroap/photonic"
)

// Mesh is an N×M rectangular lattice of BTU cells wired into a netlist.
//
// Structure (cells, connections, boundary numbering) is fixed by Build.
// Cell phases change through SetState/Configure; terminals are assigned once.
// A Mesh is not safe for concurrent mutation.
type Mesh struct {
	rows, cols int

	cells map[CellKey]*photonic.BTU
	order []CellKey // V row-major, then H row-major

	net         *netlist.Netlist
	boundary    []photonic.Port
	boundaryIdx map[photonic.Port]int

	terminals []netlist.Terminal

	refWL  float64
	logger *slog.Logger
}

// Rows returns N.
func (m *Mesh) Rows() int { return m.rows }

// Cols returns M.
func (m *Mesh) Cols() int { return m.cols }

// CellCount returns N(M+1) + (N+1)M.
func (m *Mesh) CellCount() int { return len(m.order) }

// Cells returns every cell key: vertical cells row-major, then horizontal
// cells row-major.
func (m *Mesh) Cells() []CellKey { return append([]CellKey(nil), m.order...) }

// Has reports whether key addresses a cell of this mesh.
func (m *Mesh) Has(key CellKey) bool {
	_, ok := m.cells[key]
	return ok
}

// Cell returns the BTU at key.
func (m *Mesh) Cell(key CellKey) (*photonic.BTU, error) {
	b, ok := m.cells[key]
	if !ok {
		return nil, configErr("Cell", ErrUnknownCell, "%s", key)
	}
	return b, nil
}

// Netlist returns the wired netlist; component IDs are cell key strings.
func (m *Mesh) Netlist() *netlist.Netlist { return m.net }

// Boundary returns the 4(N+M) boundary ports in boundary index order.
func (m *Mesh) Boundary() []photonic.Port { return append([]photonic.Port(nil), m.boundary...) }

// BoundaryIndex returns the boundary number of p, or false for internal ports.
func (m *Mesh) BoundaryIndex(p photonic.Port) (int, bool) {
	i, ok := m.boundaryIdx[p]
	return i, ok
}

// Terminals returns the terminal assignment made by Terminate.
func (m *Mesh) Terminals() []netlist.Terminal {
	return append([]netlist.Terminal(nil), m.terminals...)
}

// Terminated reports whether Terminate has succeeded.
func (m *Mesh) Terminated() bool { return m.terminals != nil }

// String summarizes the mesh dimensions.
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh(%dx%d, cells=%d, boundary=%d)", m.rows, m.cols, len(m.order), len(m.boundary))
}
