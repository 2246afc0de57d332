// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// configure.go - applying symbolic states to cells.
//
// Contract:
//   • Every failure wraps ErrConfiguration and names the offending key.
//   • Configure and ParseConfiguration validate the whole map before the
//     first BTU is touched; a failing call leaves all phases unchanged.
//   • Cells are mutated in Cells() order, so the log stream is deterministic.
//   • The Trainable flag of a cell survives state changes.

package mesh

import (
	"github.com/katalvlaran/siroap/photonic"
	"github.com/katalvlaran/siroap/state"
)

const (
	methodSetState  = "SetState"
	methodConfigure = "Configure"
	methodParseCfg  = "ParseConfiguration"
	methodState     = "State"
)

// SetState resolves s and applies it to the cell at key.
func (m *Mesh) SetState(key CellKey, s state.State) error {
	b, ok := m.cells[key]
	if !ok {
		return configErr(methodSetState, ErrUnknownCell, "%s", key)
	}
	ph, err := resolve(b, s)
	if err != nil {
		return configErr(methodSetState, err, "%s=%s", key, s)
	}
	if err = b.SetPhase(ph); err != nil {
		return configErr(methodSetState, err, "%s=%s", key, s)
	}
	m.logger.Debug("cell state set", "cell", key.String(), "state", s.String(),
		"phiU", ph.PhiU, "phiL", ph.PhiL)
	return nil
}

// Configure applies states to several cells at once. All entries are
// validated first; on error no cell is changed.
func (m *Mesh) Configure(states map[CellKey]state.State) error {
	resolved := make(map[CellKey]photonic.PhaseState, len(states))
	for key, s := range states {
		b, ok := m.cells[key]
		if !ok {
			return configErr(methodConfigure, ErrUnknownCell, "%s", key)
		}
		ph, err := resolve(b, s)
		if err != nil {
			return configErr(methodConfigure, err, "%s=%s", key, s)
		}
		resolved[key] = ph
	}

	for _, key := range m.order {
		ph, ok := resolved[key]
		if !ok {
			continue
		}
		// Resolved phases are finite, so SetPhase cannot fail here.
		if err := m.cells[key].SetPhase(ph); err != nil {
			return configErr(methodConfigure, err, "%s", key)
		}
		m.logger.Debug("cell state set", "cell", key.String(), "state", states[key].String(),
			"phiU", ph.PhiU, "phiL", ph.PhiL)
	}
	m.logger.Info("mesh configured", "cells", len(resolved))
	return nil
}

// ParseConfiguration applies the external form {"V0_1": ["coupler", 0.5], ...}.
func (m *Mesh) ParseConfiguration(raw map[string][]any) error {
	states := make(map[CellKey]state.State, len(raw))
	for name, entry := range raw {
		key, err := ParseCellKey(name)
		if err != nil {
			return configErr(methodParseCfg, err, "key %q", name)
		}
		s, err := state.Parse(entry)
		if err != nil {
			return configErr(methodParseCfg, err, "%s=%v", name, entry)
		}
		states[key] = s
	}
	return m.Configure(states)
}

// State returns the phase report of the cell at key.
func (m *Mesh) State(key CellKey) (photonic.PhaseReport, error) {
	b, ok := m.cells[key]
	if !ok {
		return photonic.PhaseReport{}, configErr(methodState, ErrUnknownCell, "%s", key)
	}
	return b.Report(), nil
}

// resolve maps s onto b's phase state, keeping b's Trainable flag.
func resolve(b *photonic.BTU, s state.State) (photonic.PhaseState, error) {
	phiU, phiL, err := state.Resolve(s)
	if err != nil {
		return photonic.PhaseState{}, err
	}
	return photonic.PhaseState{PhiU: phiU, PhiL: phiL, Trainable: b.Phase().Trainable}, nil
}
