// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// waveguide.go - 2-port dispersive waveguide with an optional phase offset.
//
// Contract:
//   • neff(λ) = neff − (λ−wl0)·(ng−neff)/wl0.
//   • φ(λ) = (2π·neff(λ)·L/λ mod 2π) + phase.
//   • a = 10^(−loss·L·100/20), loss in dB/cm and L in meters.
//   • S01 = S10 = a·e^{iφ}; every other entry is zero.
//   • Delay = ng·L/c.

package photonic

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const methodWaveguide = "Waveguide"

// Waveguide is a straight 2-port waveguide.
type Waveguide struct {
	Params
	phase     float64
	trainable bool
}

// NewWaveguide validates p and returns a waveguide with the given phase
// offset. The offset is stored wrapped to [0,2π). A non-trainable waveguide
// keeps its offset fixed for life.
func NewWaveguide(p Params, phase float64, trainable bool) (*Waveguide, error) {
	if err := p.validate(methodWaveguide); err != nil {
		return nil, err
	}
	if !finite(phase) {
		return nil, fmt.Errorf("%s: phase=%g: %w", methodWaveguide, phase, ErrBadPhase)
	}
	return &Waveguide{Params: p, phase: WrapPhase(phase), trainable: trainable}, nil
}

// Kind implements Component.
func (w *Waveguide) Kind() Kind { return KindWaveguide }

// PortCount implements Component.
func (w *Waveguide) PortCount() int { return 2 }

// Delay implements Component.
func (w *Waveguide) Delay() float64 { return w.Params.Delay() }

// Phase returns the phase offset.
func (w *Waveguide) Phase() float64 { return w.phase }

// Trainable reports whether SetPhase is permitted.
func (w *Waveguide) Trainable() bool { return w.trainable }

// SetPhase retunes the phase offset of a trainable waveguide.
func (w *Waveguide) SetPhase(phase float64) error {
	if !w.trainable {
		return fmt.Errorf("%s: SetPhase: %w", methodWaveguide, ErrNotTrainable)
	}
	if !finite(phase) {
		return fmt.Errorf("%s: SetPhase(%g): %w", methodWaveguide, phase, ErrBadPhase)
	}
	w.phase = WrapPhase(phase)
	return nil
}

// Amplitude returns the field transmission a = 10^(−lossDb/20).
func (w *Waveguide) Amplitude() float64 {
	lossDB := w.Loss * w.Length * 100
	return math.Pow(10, -lossDB/20)
}

// PhaseAt returns the total transmission phase at wl.
func (w *Waveguide) PhaseAt(wl float64) float64 {
	return w.StaticPhase(wl) + w.phase
}

// ScatteringMatrix implements Component.
func (w *Waveguide) ScatteringMatrix(wls []float64) ([]*mat.CDense, error) {
	if err := checkWavelengths(methodWaveguide, wls); err != nil {
		return nil, err
	}
	a := complex(w.Amplitude(), 0)
	out := make([]*mat.CDense, len(wls))
	for k, wl := range wls {
		s := mat.NewCDense(2, 2, nil)
		t := a * cmplx.Exp(complex(0, w.PhaseAt(wl)))
		s.Set(0, 1, t)
		s.Set(1, 0, t)
		out[k] = s
	}
	return out, nil
}
