// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// types.go - component contract, port/connection addressing, shared
// physical parameters and the trainable phase state of a BTU.

package photonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpeedOfLight is the vacuum speed of light in m/s.
const SpeedOfLight = 299792458.0

// twoPi is one full optical cycle in radians.
const twoPi = 2 * math.Pi

// Kind tags the closed set of primitives.
type Kind int

const (
	// KindWaveguide is a 2-port dispersive waveguide.
	KindWaveguide Kind = iota
	// KindDirectionalCoupler is a 4-port lossless coupler.
	KindDirectionalCoupler
	// KindBTU is a 4-port tunable 2×2 switch.
	KindBTU
	// KindRingResonator is a 4-port add-drop ring.
	KindRingResonator
)

var kindNames = [...]string{
	KindWaveguide:          "Waveguide",
	KindDirectionalCoupler: "DirectionalCoupler",
	KindBTU:                "BTU",
	KindRingResonator:      "RingResonator4",
}

// String returns the component type name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Component is the contract every primitive exposes to a circuit solver.
//
// ScatteringMatrix returns one PortCount×PortCount complex matrix per
// requested wavelength; S[i][j] maps the amplitude entering port j to the
// amplitude leaving port i. Implementations are pure functions of their
// parameters and the wavelengths.
type Component interface {
	Kind() Kind
	PortCount() int
	ScatteringMatrix(wls []float64) ([]*mat.CDense, error)
	Delay() float64
}

// Port addresses one port of a named component.
type Port struct {
	// Component is the owning component ID.
	Component string
	// Index is the port number in [0, PortCount).
	Index int
}

// String renders the port as "component:index".
func (p Port) String() string { return fmt.Sprintf("%s:%d", p.Component, p.Index) }

// Connection is an unordered pair of ports joined by a lossless link.
type Connection struct {
	A, B Port
}

// Has reports whether p is one of the two endpoints.
func (c Connection) Has(p Port) bool { return c.A == p || c.B == p }

// Part binds a component to an ID inside a composite network.
type Part struct {
	ID        string
	Component Component
}

// Params holds the physical parameters shared by Waveguide and BTU.
//
// Loss is interpreted per component: dB/cm for a Waveguide, total insertion
// loss in dB for a BTU.
type Params struct {
	Length float64 // physical length [m]
	Loss   float64 // see type doc
	Neff   float64 // effective index at WL0
	Ng     float64 // group index
	WL0    float64 // reference wavelength [m]
}

// DefaultWaveguideParams returns the reference waveguide: 10 µm long,
// lossless, neff=2.34, ng=3.40 at 1550 nm.
func DefaultWaveguideParams() Params {
	return Params{Length: 1e-5, Loss: 0, Neff: 2.34, Ng: 3.40, WL0: 1.55e-6}
}

// DefaultBTUParams returns the mesh cell used by the default factory:
// 500 µm arms, 0.25 dB insertion loss, neff=2.34, ng=3.40 at 1550 nm.
func DefaultBTUParams() Params {
	return Params{Length: 500e-6, Loss: 0.25, Neff: 2.34, Ng: 3.40, WL0: 1.55e-6}
}

func (p Params) validate(method string) error {
	switch {
	case !finite(p.Length) || p.Length < 0:
		return fmt.Errorf("%s: length=%g: %w", method, p.Length, ErrBadParams)
	case !finite(p.Loss) || p.Loss < 0:
		return fmt.Errorf("%s: loss=%g: %w", method, p.Loss, ErrBadParams)
	case !finite(p.Neff) || p.Neff <= 0:
		return fmt.Errorf("%s: neff=%g: %w", method, p.Neff, ErrBadParams)
	case !finite(p.Ng) || p.Ng <= 0:
		return fmt.Errorf("%s: ng=%g: %w", method, p.Ng, ErrBadParams)
	case !finite(p.WL0) || p.WL0 <= 0:
		return fmt.Errorf("%s: wl0=%g: %w", method, p.WL0, ErrBadParams)
	}
	return nil
}

// NeffAt returns the effective index linearly dispersed around WL0.
func (p Params) NeffAt(wl float64) float64 {
	return p.Neff - (wl-p.WL0)*(p.Ng-p.Neff)/p.WL0
}

// StaticPhase returns the propagation phase 2π·neff(λ)·L/λ wrapped to [0,2π).
func (p Params) StaticPhase(wl float64) float64 {
	return WrapPhase(twoPi * p.NeffAt(wl) * p.Length / wl)
}

// Delay returns the group delay ng·L/c.
func (p Params) Delay() float64 {
	return p.Ng * p.Length / SpeedOfLight
}

// PhaseState is the mutable phase pair of a BTU. Trainable marks the phases as
// free parameters for an external optimizer; the BTU never reads it.
type PhaseState struct {
	PhiU      float64 // upper arm phase [rad]
	PhiL      float64 // lower arm phase [rad]
	Trainable bool
}

// PhaseReport is a read-only view of a BTU phase configuration.
type PhaseReport struct {
	PhiU float64
	PhiL float64
	PhiA float64 // common mode (phiU+phiL)/2
	PhiD float64 // differential (phiU−phiL)/2
	PhiC float64 // total common mode at WL0, wrapped to [0,2π)
}

// WrapPhase maps x to [0, 2π).
func WrapPhase(x float64) float64 {
	r := math.Mod(x, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func checkWavelengths(method string, wls []float64) error {
	if len(wls) == 0 {
		return fmt.Errorf("%s: empty sweep: %w", method, ErrBadWavelength)
	}
	for i, wl := range wls {
		if !finite(wl) || wl <= 0 {
			return fmt.Errorf("%s: wls[%d]=%g: %w", method, i, wl, ErrBadWavelength)
		}
	}
	return nil
}
