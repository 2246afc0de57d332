// SPDX-License-Identifier: MIT
package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siroap/mesh"
	"github.com/katalvlaran/siroap/state"
)

const tol = 1e-12

// TestSetState_RoundTrip applies cross, bar, cross to one cell.
func TestSetState_RoundTrip(t *testing.T) {
	m, err := mesh.Build(1, 1)
	require.NoError(t, err)
	key := mesh.V(0, 1)

	require.NoError(t, m.SetState(key, state.Of(state.Cross)))
	require.NoError(t, m.SetState(key, state.Of(state.Bar)))
	r, err := m.State(key)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, r.PhiU, tol)
	assert.InDelta(t, math.Pi/2, r.PhiD, tol)

	require.NoError(t, m.SetState(key, state.Of(state.Cross)))
	r, err = m.State(key)
	require.NoError(t, err)
	assert.Zero(t, r.PhiU)
	assert.Zero(t, r.PhiL)

	b, err := m.Cell(key)
	require.NoError(t, err)
	assert.True(t, b.Phase().Trainable, "state changes keep the trainable flag")
}

func TestSetState_Errors(t *testing.T) {
	m, err := mesh.Build(1, 1)
	require.NoError(t, err)

	err = m.SetState(mesh.V(3, 3), state.Of(state.Bar))
	assert.ErrorIs(t, err, mesh.ErrUnknownCell)
	assert.ErrorIs(t, err, mesh.ErrConfiguration)

	err = m.SetState(mesh.V(0, 0), state.Of("open"))
	assert.ErrorIs(t, err, state.ErrUnknownState)
	assert.ErrorIs(t, err, mesh.ErrConfiguration)
	assert.Contains(t, err.Error(), "V0_0")

	_, err = m.State(mesh.H(5, 0))
	assert.ErrorIs(t, err, mesh.ErrUnknownCell)
}

// TestConfigure_Atomic checks that a bad entry leaves every cell untouched.
func TestConfigure_Atomic(t *testing.T) {
	m, err := mesh.Build(1, 1)
	require.NoError(t, err)

	cases := []map[mesh.CellKey]state.State{
		{mesh.V(0, 0): state.Of(state.Bar), mesh.V(9, 9): state.Of(state.Bar)},
		{mesh.V(0, 0): state.Of(state.Bar), mesh.H(0, 0): state.With(state.Coupler, 3)},
		{mesh.V(0, 0): state.Of(state.Bar), mesh.H(1, 0): state.Of(state.PhaseShifterBar)},
	}
	for _, states := range cases {
		err := m.Configure(states)
		assert.ErrorIs(t, err, mesh.ErrConfiguration)
		r, err := m.State(mesh.V(0, 0))
		require.NoError(t, err)
		assert.Zero(t, r.PhiU, "V0_0 must stay in cross")
	}

	require.NoError(t, m.Configure(map[mesh.CellKey]state.State{
		mesh.V(0, 0): state.Of(state.Bar),
		mesh.H(0, 0): state.With(state.Coupler, 0.5),
		mesh.H(1, 0): state.With(state.PhaseShifterCross, 0.4),
	}))
	r, err := m.State(mesh.H(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Acos(0.5), r.PhiU, tol)
	r, err = m.State(mesh.H(1, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, r.PhiA, tol)
	assert.InDelta(t, 0, r.PhiD, tol)
}

func TestParseConfiguration(t *testing.T) {
	m, err := mesh.Build(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.ParseConfiguration(map[string][]any{
		"V1_2": {"bar"},
		"H2_1": {"phase_shifter_bar", 1},
	}))
	r, err := m.State(mesh.H(2, 1))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi+1, r.PhiU, tol)
	assert.InDelta(t, 1, r.PhiL, tol)

	cases := []struct {
		name string
		raw  map[string][]any
		err  error
	}{
		{"BadKey", map[string][]any{"Q1_1": {"bar"}}, mesh.ErrBadCellKey},
		{"UnknownCell", map[string][]any{"H3_0": {"bar"}}, mesh.ErrUnknownCell},
		{"UnknownState", map[string][]any{"H1_0": {"through"}}, state.ErrUnknownState},
		{"Malformed", map[string][]any{"H1_0": {}}, state.ErrMalformed},
		{"AliasedKey", map[string][]any{"V0_0": {"bar"}, "V00_0": {"cross"}}, mesh.ErrBadCellKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := m.ParseConfiguration(tc.raw)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, mesh.ErrConfiguration)
		})
	}

	// A rejected configuration leaves V0_0 untouched.
	r, err = m.State(mesh.V(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, r.PhiU, tol)
}
