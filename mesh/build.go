// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// build.go - Build: cell creation, internal wiring and the wiring invariant.
//
// Cells:
//   • V{i}_{j} for i ∈ [0,N), j ∈ [0,M]   → N(M+1) cells
//   • H{i}_{j} for i ∈ [0,N], j ∈ [0,M)   → (N+1)M cells
//
// Wiring, for each V{i}_{j} in creation order:
//   • j < M:  port 3 ↔ H{i}_{j}:0,    port 2 ↔ H{i+1}_{j}:3
//   • j > 0:  port 0 ↔ H{i}_{j-1}:1,  port 1 ↔ H{i+1}_{j-1}:2
//
// Invariant (asserted before returning):
//   • 4NM connections, no port used twice (netlist enforces the latter).
//   • The free ports are exactly the 4(N+M) boundary ports of boundary.go.
//
// Complexity: O(NM) time and space.

package mesh

import (
	"github.com/katalvlaran/siroap/netlist"
	"github.com/katalvlaran/siroap/photonic"
)

const (
	methodBuild = "Build"
	minDim      = 1
)

// Build creates an N×M mesh. rows < 1 or cols < 1 yields ErrTooFewCells;
// any wiring failure yields ErrTopology and no mesh.
func Build(rows, cols int, opts ...Option) (*Mesh, error) {
	if rows < minDim || cols < minDim {
		return nil, topologyErr(methodBuild, ErrTooFewCells, "rows=%d, cols=%d", rows, cols)
	}
	cfg := newMeshConfig(opts...)

	m := &Mesh{
		rows:   rows,
		cols:   cols,
		cells:  make(map[CellKey]*photonic.BTU, rows*(cols+1)+(rows+1)*cols),
		net:    netlist.New(),
		refWL:  cfg.refWL,
		logger: cfg.logger,
	}

	// 1) Cells: vertical lattice first, then horizontal, row-major.
	seen := make(map[*photonic.BTU]CellKey, rows*(cols+1)+(rows+1)*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j <= cols; j++ {
			if err := m.addCell(V(i, j), cfg.factory, seen); err != nil {
				return nil, err
			}
		}
	}
	for i := 0; i <= rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.addCell(H(i, j), cfg.factory, seen); err != nil {
				return nil, err
			}
		}
	}

	// 2) Internal wiring driven by the vertical cells.
	for i := 0; i < rows; i++ {
		for j := 0; j <= cols; j++ {
			v := V(i, j)
			if j < cols {
				if err := m.connect(v, 3, H(i, j), 0); err != nil {
					return nil, err
				}
				if err := m.connect(v, 2, H(i+1, j), 3); err != nil {
					return nil, err
				}
			}
			if j > 0 {
				if err := m.connect(v, 0, H(i, j-1), 1); err != nil {
					return nil, err
				}
				if err := m.connect(v, 1, H(i+1, j-1), 2); err != nil {
					return nil, err
				}
			}
		}
	}

	// 3) Boundary numbering and invariant check.
	m.boundary = boundaryPorts(rows, cols)
	m.boundaryIdx = make(map[photonic.Port]int, len(m.boundary))
	for idx, p := range m.boundary {
		m.boundaryIdx[p] = idx
	}
	if err := m.checkWiring(); err != nil {
		return nil, err
	}

	m.logger.Debug("mesh built",
		"rows", rows, "cols", cols,
		"cells", len(m.order),
		"connections", m.net.ConnectionCount(),
		"boundary", len(m.boundary))
	return m, nil
}

// addCell places a fresh factory BTU at key; seen maps each placed
// instance to its cell.
func (m *Mesh) addCell(key CellKey, factory func() *photonic.BTU, seen map[*photonic.BTU]CellKey) error {
	b := factory()
	if b == nil {
		return topologyErr(methodBuild, netlist.ErrNilComponent, "factory returned nil for %s", key)
	}
	if prev, dup := seen[b]; dup {
		return topologyErr(methodBuild, ErrSharedCell, "%s reuses the instance of %s", key, prev)
	}
	seen[b] = key
	if err := m.net.AddComponent(key.String(), b); err != nil {
		return topologyErr(methodBuild, err, "add %s", key)
	}
	m.cells[key] = b
	m.order = append(m.order, key)
	return nil
}

func (m *Mesh) connect(a CellKey, pa int, b CellKey, pb int) error {
	if err := m.net.Connect(cellPort(a, pa), cellPort(b, pb)); err != nil {
		return topologyErr(methodBuild, err, "wire %s:%d-%s:%d", a, pa, b, pb)
	}
	return nil
}

// checkWiring asserts that the free ports of the netlist are exactly the
// numbered boundary ports and that every internal port is wired once.
func (m *Mesh) checkWiring() error {
	want := 4 * m.rows * m.cols
	if got := m.net.ConnectionCount(); got != want {
		return topologyErr(methodBuild, errWiring, "%d connections, want %d", got, want)
	}
	if len(m.boundaryIdx) != len(m.boundary) {
		return topologyErr(methodBuild, errWiring, "duplicate boundary port")
	}
	free := m.net.FreePorts()
	if len(free) != len(m.boundary) {
		return topologyErr(methodBuild, errWiring, "%d free ports, want %d", len(free), len(m.boundary))
	}
	for _, p := range free {
		if _, ok := m.boundaryIdx[p]; !ok {
			return topologyErr(methodBuild, errWiring, "free port %s is not a boundary port", p)
		}
	}
	return nil
}

// cellPort returns the netlist port of a cell.
func cellPort(k CellKey, i int) photonic.Port {
	return photonic.Port{Component: k.String(), Index: i}
}
