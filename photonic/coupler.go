// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// coupler.go - 4-port directional coupler without delay.
//
// The coupling κ is kept as parameter = arccos(κ) so an external optimizer
// can move the parameter freely while cos(parameter) stays inside [0,1]
// for parameter ∈ [0, π/2].

package photonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const methodCoupler = "DirectionalCoupler"

// DirectionalCoupler splits power between the through paths {0↔1},{2↔3}
// (amplitude t=√(1−κ), real) and the cross paths {0↔2},{1↔3}
// (amplitude k=√κ, imaginary).
type DirectionalCoupler struct {
	parameter float64
}

// NewDirectionalCoupler returns a coupler with power coupling kappa ∈ [0,1].
func NewDirectionalCoupler(kappa float64) (*DirectionalCoupler, error) {
	if !finite(kappa) || kappa < 0 || kappa > 1 {
		return nil, fmt.Errorf("%s: kappa=%g: %w", methodCoupler, kappa, ErrCouplingRange)
	}
	return &DirectionalCoupler{parameter: math.Acos(kappa)}, nil
}

// Kind implements Component.
func (c *DirectionalCoupler) Kind() Kind { return KindDirectionalCoupler }

// PortCount implements Component.
func (c *DirectionalCoupler) PortCount() int { return 4 }

// Delay implements Component; couplers are lumped.
func (c *DirectionalCoupler) Delay() float64 { return 0 }

// Coupling returns κ = cos(parameter).
func (c *DirectionalCoupler) Coupling() float64 { return math.Cos(c.parameter) }

// Parameter returns the hidden tuning parameter arccos(κ).
func (c *DirectionalCoupler) Parameter() float64 { return c.parameter }

// SetParameter sets the hidden parameter directly. Values outside [0, π/2]
// would give a negative coupling and are rejected.
func (c *DirectionalCoupler) SetParameter(p float64) error {
	if !finite(p) || p < 0 || p > math.Pi/2 {
		return fmt.Errorf("%s: SetParameter(%g): %w", methodCoupler, p, ErrCouplingRange)
	}
	c.parameter = p
	return nil
}

// Amplitudes returns the through (t) and cross (k) field amplitudes.
func (c *DirectionalCoupler) Amplitudes() (t, k float64) {
	kappa := c.Coupling()
	// cos(acos(1)) can land a hair above 1.
	kappa = math.Min(math.Max(kappa, 0), 1)
	return math.Sqrt(1 - kappa), math.Sqrt(kappa)
}

// ScatteringMatrix implements Component. The response is wavelength independent.
func (c *DirectionalCoupler) ScatteringMatrix(wls []float64) ([]*mat.CDense, error) {
	if err := checkWavelengths(methodCoupler, wls); err != nil {
		return nil, err
	}
	t, k := c.Amplitudes()
	through, cross := complex(t, 0), complex(0, k)
	out := make([]*mat.CDense, len(wls))
	for i := range wls {
		s := mat.NewCDense(4, 4, nil)
		setSym(s, 0, 1, through)
		setSym(s, 2, 3, through)
		setSym(s, 0, 2, cross)
		setSym(s, 1, 3, cross)
		out[i] = s
	}
	return out, nil
}

// setSym writes v to (i,j) and (j,i).
func setSym(s *mat.CDense, i, j int, v complex128) {
	s.Set(i, j, v)
	s.Set(j, i, v)
}
