// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// btu.go - Basic Transmission Unit: a generalized 2×2 MZI switch with two
// independent arm phases.
//
// Derived phases:
//   • phiA = (phiU+phiL)/2           common mode
//   • phiD = (phiU−phiL)/2           differential
//   • phiC(λ) = phi0(λ) + phiA        phi0 as for a Waveguide of the same arm
//
// Canonical points: (0,0) routes cross (0→2, 3→1), (π,0) routes bar (0→1, 3→2).
//
// The entry set below is kept exactly; changing which port pair takes the
// sin/cos factors changes switch routing.

package photonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const methodBTU = "BTU"

// BTU is a 4-port tunable switch. Loss is the total insertion loss in dB.
// Both arms share the same length (balanced MZI).
type BTU struct {
	Params
	phase PhaseState
}

// NewBTU validates p and the initial phases.
func NewBTU(p Params, ph PhaseState) (*BTU, error) {
	if err := p.validate(methodBTU); err != nil {
		return nil, err
	}
	b := &BTU{Params: p}
	if err := b.SetPhase(ph); err != nil {
		return nil, err
	}
	return b, nil
}

// Kind implements Component.
func (b *BTU) Kind() Kind { return KindBTU }

// PortCount implements Component.
func (b *BTU) PortCount() int { return 4 }

// Delay implements Component; identical on both arms.
func (b *BTU) Delay() float64 { return b.Params.Delay() }

// Phase returns a snapshot of the phase state.
func (b *BTU) Phase() PhaseState { return b.phase }

// SetPhase replaces the phase state. It is the only mutation point of a BTU
// and is not synchronized.
func (b *BTU) SetPhase(ph PhaseState) error {
	if !finite(ph.PhiU) || !finite(ph.PhiL) {
		return fmt.Errorf("%s: SetPhase(phiU=%g, phiL=%g): %w", methodBTU, ph.PhiU, ph.PhiL, ErrBadPhase)
	}
	b.phase = ph
	return nil
}

// PhiA returns the common-mode phase (phiU+phiL)/2.
func (b *BTU) PhiA() float64 { return (b.phase.PhiU + b.phase.PhiL) / 2 }

// PhiD returns the differential phase (phiU−phiL)/2.
func (b *BTU) PhiD() float64 { return (b.phase.PhiU - b.phase.PhiL) / 2 }

// Phi0 returns the static arm phase at wl.
func (b *BTU) Phi0(wl float64) float64 { return b.StaticPhase(wl) }

// PhiC returns the total common-mode phase at wl (not wrapped).
func (b *BTU) PhiC(wl float64) float64 { return b.Phi0(wl) + b.PhiA() }

// RefPhiC returns the total common-mode phase at WL0 wrapped to [0,2π).
// Ring tracing sums this value around closed loops.
func (b *BTU) RefPhiC() float64 { return WrapPhase(b.PhiC(b.WL0)) }

// Report returns the phase configuration with its derived quantities.
func (b *BTU) Report() PhaseReport {
	return PhaseReport{
		PhiU: b.phase.PhiU,
		PhiL: b.phase.PhiL,
		PhiA: b.PhiA(),
		PhiD: b.PhiD(),
		PhiC: b.RefPhiC(),
	}
}

// Attenuation returns the uniform field scale 10^(−loss/20).
func (b *BTU) Attenuation() float64 { return math.Pow(10, -b.Loss/20) }

// ScatteringMatrix implements Component.
func (b *BTU) ScatteringMatrix(wls []float64) ([]*mat.CDense, error) {
	if err := checkWavelengths(methodBTU, wls); err != nil {
		return nil, err
	}
	scale := b.Attenuation()
	sinD, cosD := math.Sincos(b.PhiD())
	out := make([]*mat.CDense, len(wls))
	for k, wl := range wls {
		sinC, cosC := math.Sincos(b.PhiC(wl))
		s := mat.NewCDense(4, 4, nil)
		setSym(s, 0, 1, complex(-sinC*sinD*scale, cosC*sinD*scale))
		setSym(s, 0, 2, complex(-sinC*cosD*scale, cosC*cosD*scale))
		setSym(s, 3, 1, complex(-sinC*cosD*scale, cosC*cosD*scale))
		setSym(s, 3, 2, complex(sinC*sinD*scale, -cosC*sinD*scale))
		out[k] = s
	}
	return out, nil
}
