// SPDX-License-Identifier: MIT
// Package: siroap/solver
//
// characterize.go - bar/cross transfer of a single BTU under a differential
// phase sweep.
//
// Circuit:
//
//	s0 ──0┐     ┌1── p1 (bar)
//	      │ BTU │
//	t3 ──3┘     └2── p2 (cross)
//
// Point θ drives phiU = θ, phiL = −θ, so phiA = 0 and phiD = θ: bar power
// follows sin²θ and cross power cos²θ, both scaled by the insertion loss.

package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/siroap/netlist"
	"github.com/katalvlaran/siroap/photonic"
)

const (
	methodCharacterize = "CharacterizeBTU"
	cellID             = "btu"
)

// BTUPoint is one sample of a differential phase sweep.
type BTUPoint struct {
	Theta float64 // phiU = θ, phiL = −θ
	Bar   float64 // power 0 → 1
	Cross float64 // power 0 → 2
}

// Thetas returns n differential phases evenly spaced over [0, π).
// n < 1 yields nil.
func Thetas(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * math.Pi / float64(n)
	}
	return out
}

// CharacterizeBTU solves the one-cell circuit above at wavelength wl for
// every θ in thetas. b is driven through SetPhase and restored to its
// previous phase state on return.
func CharacterizeBTU(ctx context.Context, s Solver, b *photonic.BTU, thetas []float64, wl float64) ([]BTUPoint, error) {
	if b == nil {
		return nil, fmt.Errorf("%s: %w", methodCharacterize, netlist.ErrNilComponent)
	}
	n := netlist.New()
	if err := n.AddComponent(cellID, b); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCharacterize, err)
	}
	port := func(i int) photonic.Port { return photonic.Port{Component: cellID, Index: i} }
	p := Problem{Netlist: n, Terminals: []netlist.Terminal{
		{Kind: netlist.Source, Name: "s0", Index: 0, Port: port(0)},
		{Kind: netlist.Detector, Name: "p1", Index: 1, Port: port(1)},
		{Kind: netlist.Detector, Name: "p2", Index: 2, Port: port(2)},
		{Kind: netlist.Term, Name: "t3", Index: 3, Port: port(3)},
	}}

	saved := b.Phase()
	defer func() { _ = b.SetPhase(saved) }() // saved was accepted once

	out := make([]BTUPoint, 0, len(thetas))
	for _, th := range thetas {
		if err := b.SetPhase(photonic.PhaseState{PhiU: th, PhiL: -th, Trainable: saved.Trainable}); err != nil {
			return nil, fmt.Errorf("%s: θ=%g: %w", methodCharacterize, th, err)
		}
		resp, err := s.Solve(ctx, p, []float64{wl})
		if err != nil {
			return nil, fmt.Errorf("%s: θ=%g: %w", methodCharacterize, th, err)
		}
		pw := resp.Power(0)
		out = append(out, BTUPoint{Theta: th, Bar: pw.At(0, 0), Cross: pw.At(1, 0)})
	}
	return out, nil
}
