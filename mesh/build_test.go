// SPDX-License-Identifier: MIT
package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siroap/mesh"
	"github.com/katalvlaran/siroap/netlist"
	"github.com/katalvlaran/siroap/photonic"
)

func cellPort(k mesh.CellKey, i int) photonic.Port {
	return photonic.Port{Component: k.String(), Index: i}
}

// TestBuild_2x2 checks cell, connection and boundary counts and that no port
// is wired twice.
func TestBuild_2x2(t *testing.T) {
	m, err := mesh.Build(2, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 2*3+3*2, m.CellCount())
	assert.Equal(t, 16, m.Netlist().ConnectionCount())
	assert.Len(t, m.Boundary(), 16)
	assert.Equal(t, 16, mesh.BoundaryCount(2, 2))

	seen := make(map[photonic.Port]bool)
	for _, c := range m.Netlist().Connections() {
		for _, p := range []photonic.Port{c.A, c.B} {
			assert.False(t, seen[p], "port %s wired twice", p)
			seen[p] = true
			_, boundary := m.BoundaryIndex(p)
			assert.False(t, boundary, "boundary port %s is wired", p)
		}
	}
	assert.Len(t, seen, 32)
	assert.Equal(t, 4*m.CellCount(), len(seen)+len(m.Boundary()))
	assert.ElementsMatch(t, m.Boundary(), m.Netlist().FreePorts())
}

// TestBuild_BoundaryOrder pins the west, south, east, north numbering.
func TestBuild_BoundaryOrder(t *testing.T) {
	m, err := mesh.Build(2, 2)
	require.NoError(t, err)

	want := []photonic.Port{
		cellPort(mesh.V(0, 0), 0), cellPort(mesh.V(0, 0), 1),
		cellPort(mesh.V(1, 0), 0), cellPort(mesh.V(1, 0), 1),
		cellPort(mesh.H(2, 0), 0), cellPort(mesh.H(2, 0), 1),
		cellPort(mesh.H(2, 1), 0), cellPort(mesh.H(2, 1), 1),
		cellPort(mesh.V(1, 2), 2), cellPort(mesh.V(1, 2), 3),
		cellPort(mesh.V(0, 2), 2), cellPort(mesh.V(0, 2), 3),
		cellPort(mesh.H(0, 1), 2), cellPort(mesh.H(0, 1), 3),
		cellPort(mesh.H(0, 0), 2), cellPort(mesh.H(0, 0), 3),
	}
	assert.Equal(t, want, m.Boundary())
	for i, p := range want {
		idx, ok := m.BoundaryIndex(p)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestBuild_Wiring(t *testing.T) {
	m, err := mesh.Build(1, 2)
	require.NoError(t, err)
	n := m.Netlist()

	cases := []struct{ a, b photonic.Port }{
		{cellPort(mesh.V(0, 0), 3), cellPort(mesh.H(0, 0), 0)},
		{cellPort(mesh.V(0, 0), 2), cellPort(mesh.H(1, 0), 3)},
		{cellPort(mesh.V(0, 1), 0), cellPort(mesh.H(0, 0), 1)},
		{cellPort(mesh.V(0, 1), 1), cellPort(mesh.H(1, 0), 2)},
		{cellPort(mesh.V(0, 1), 3), cellPort(mesh.H(0, 1), 0)},
		{cellPort(mesh.V(0, 2), 1), cellPort(mesh.H(1, 1), 2)},
	}
	for _, tc := range cases {
		peer, ok := n.Peer(tc.a)
		require.True(t, ok, tc.a.String())
		assert.Equal(t, tc.b, peer)
	}
}

func TestBuild_CellOrder(t *testing.T) {
	m, err := mesh.Build(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []mesh.CellKey{mesh.V(0, 0), mesh.V(0, 1), mesh.H(0, 0), mesh.H(1, 0)}, m.Cells())
	assert.Equal(t, []string{"V0_0", "V0_1", "H0_0", "H1_0"}, m.Netlist().Components())
	assert.Equal(t, "Mesh(1x1, cells=4, boundary=8)", m.String())

	b, err := m.Cell(mesh.H(1, 0))
	require.NoError(t, err)
	assert.True(t, b.Phase().Trainable)
	_, err = m.Cell(mesh.H(2, 0))
	assert.ErrorIs(t, err, mesh.ErrUnknownCell)
	assert.ErrorIs(t, err, mesh.ErrConfiguration)
}

func TestBuild_Errors(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		m, err := mesh.Build(dims[0], dims[1])
		assert.Nil(t, m)
		assert.ErrorIs(t, err, mesh.ErrTooFewCells)
		assert.ErrorIs(t, err, mesh.ErrTopology)
	}

	calls := 0
	m, err := mesh.Build(1, 1, mesh.WithFactory(func() *photonic.BTU {
		calls++
		if calls == 3 {
			return nil
		}
		return mesh.DefaultFactory()
	}))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, mesh.ErrTopology)
	assert.ErrorIs(t, err, netlist.ErrNilComponent)

	// One shared BTU would couple the phase state of every cell.
	shared := mesh.DefaultFactory()
	m, err = mesh.Build(1, 1, mesh.WithFactory(func() *photonic.BTU { return shared }))
	assert.Nil(t, m)
	assert.ErrorIs(t, err, mesh.ErrSharedCell)
	assert.ErrorIs(t, err, mesh.ErrTopology)
	assert.ErrorContains(t, err, "V0_1 reuses the instance of V0_0")
}

func TestBuild_Factory(t *testing.T) {
	p := photonic.DefaultBTUParams()
	p.Loss = 1
	calls := 0
	m, err := mesh.Build(2, 3, mesh.WithFactory(func() *photonic.BTU {
		calls++
		b, err := photonic.NewBTU(p, photonic.PhaseState{})
		require.NoError(t, err)
		return b
	}))
	require.NoError(t, err)
	assert.Equal(t, m.CellCount(), calls)
	b, err := m.Cell(mesh.V(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Loss)
	assert.False(t, b.Phase().Trainable)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { mesh.WithFactory(nil) })
	assert.Panics(t, func() { mesh.WithLogger(nil) })
	assert.Panics(t, func() { mesh.WithReferenceWavelength(0) })
	assert.Panics(t, func() { mesh.WithReferenceWavelength(-1.55e-6) })
	assert.NotPanics(t, func() { mesh.WithReferenceWavelength(1.55e-6) })
}
