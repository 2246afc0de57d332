// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// ring.go - dual-bus add/drop ring resonator composed of two half-ring
// waveguides and two directional couplers.
//
//	(drop) 3 _________________ 2 (add)
//	             ---------
//	            |         |
//	            |_________|
//	  (in) 0 ----------------- 1 (thru)
//
// Fixed links: cp1:2→wg2:0, wg2:1→cp2:2, cp1:3→wg1:0, wg1:1→cp2:3.
// Exposed ports: in=cp1:0, thru=cp1:1, add=cp2:1, drop=cp2:0.

package photonic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodRing = "RingResonator4"

// Ring port roles.
const (
	RingIn   = 0
	RingThru = 1
	RingAdd  = 2
	RingDrop = 3
)

// Part IDs inside a RingResonator4.
const (
	ringWG1 = "wg1"
	ringWG2 = "wg2"
	ringCP1 = "cp1"
	ringCP2 = "cp2"
)

// RingParams configures a RingResonator4.
type RingParams struct {
	RingLength float64 // full circumference [m]
	Loss       float64 // dB/cm
	Neff       float64
	Ng         float64
	WL0        float64
	KappaThru  float64 // power coupling of the input bus
	KappaDrop  float64 // power coupling of the drop bus
	Phase      float64 // trainable excess round-trip phase, carried by wg1
}

// DefaultRingParams returns a 500 µm ring with 3 dB/cm loss and 10% couplers.
func DefaultRingParams() RingParams {
	return RingParams{
		RingLength: 500e-6,
		Loss:       3,
		Neff:       2.34,
		Ng:         4.24,
		WL0:        1.55e-6,
		KappaThru:  0.1,
		KappaDrop:  0.1,
	}
}

// RingResonator4 is a composite 4-port component. Its scattering matrix is
// the reduced response of its parts; it adds no physics of its own.
type RingResonator4 struct {
	WG1, WG2 *Waveguide
	CP1, CP2 *DirectionalCoupler

	parts    []Part
	links    []Connection
	external []Port
}

// NewRingResonator4 builds the ring from p.
func NewRingResonator4(p RingParams) (*RingResonator4, error) {
	half := Params{Length: p.RingLength / 2, Loss: p.Loss, Neff: p.Neff, Ng: p.Ng, WL0: p.WL0}
	wg1, err := NewWaveguide(half, p.Phase, true)
	if err != nil {
		return nil, fmt.Errorf("%s: wg1: %w", methodRing, err)
	}
	wg2, err := NewWaveguide(half, 0, false)
	if err != nil {
		return nil, fmt.Errorf("%s: wg2: %w", methodRing, err)
	}
	cp1, err := NewDirectionalCoupler(p.KappaThru)
	if err != nil {
		return nil, fmt.Errorf("%s: cp1: %w", methodRing, err)
	}
	cp2, err := NewDirectionalCoupler(p.KappaDrop)
	if err != nil {
		return nil, fmt.Errorf("%s: cp2: %w", methodRing, err)
	}

	r := &RingResonator4{WG1: wg1, WG2: wg2, CP1: cp1, CP2: cp2}
	r.parts = []Part{
		{ID: ringWG1, Component: wg1},
		{ID: ringWG2, Component: wg2},
		{ID: ringCP1, Component: cp1},
		{ID: ringCP2, Component: cp2},
	}
	r.links = []Connection{
		{A: Port{ringCP1, 2}, B: Port{ringWG2, 0}},
		{A: Port{ringWG2, 1}, B: Port{ringCP2, 2}},
		{A: Port{ringCP1, 3}, B: Port{ringWG1, 0}},
		{A: Port{ringWG1, 1}, B: Port{ringCP2, 3}},
	}
	r.external = []Port{
		RingIn:   {ringCP1, 0},
		RingThru: {ringCP1, 1},
		RingAdd:  {ringCP2, 1},
		RingDrop: {ringCP2, 0},
	}
	return r, nil
}

// Kind implements Component.
func (r *RingResonator4) Kind() Kind { return KindRingResonator }

// PortCount implements Component.
func (r *RingResonator4) PortCount() int { return len(r.external) }

// Delay implements Component. Propagation inside the ring is already part of
// the reduced phase response.
func (r *RingResonator4) Delay() float64 { return 0 }

// Parts returns the internal parts in their fixed order.
func (r *RingResonator4) Parts() []Part { return append([]Part(nil), r.parts...) }

// Links returns the internal connection pattern.
func (r *RingResonator4) Links() []Connection { return append([]Connection(nil), r.links...) }

// ScatteringMatrix implements Component.
func (r *RingResonator4) ScatteringMatrix(wls []float64) ([]*mat.CDense, error) {
	s, err := Reduce(r.parts, r.links, r.external, wls)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}
	return s, nil
}
