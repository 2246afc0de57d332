// SPDX-License-Identifier: MIT
package photonic_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/siroap/photonic"
)

// TestPowerConservation checks energy bookkeeping of the 4-port primitives
// over random operating points.
func TestPowerConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("coupler t²+k² = 1", prop.ForAll(
		func(kappa float64) bool {
			c, err := photonic.NewDirectionalCoupler(kappa)
			if err != nil {
				return false
			}
			tt, k := c.Amplitudes()
			return math.Abs(tt*tt+k*k-1) < 1e-12
		},
		gen.Float64Range(0, 1),
	))

	properties.Property("BTU |S01|²+|S02|² = 10^(-loss/10)", prop.ForAll(
		func(phiU, phiL, wl, loss float64) bool {
			p := photonic.DefaultBTUParams()
			p.Loss = loss
			b, err := photonic.NewBTU(p, photonic.PhaseState{PhiU: phiU, PhiL: phiL})
			if err != nil {
				return false
			}
			s, err := b.ScatteringMatrix([]float64{wl})
			if err != nil {
				return false
			}
			want := math.Pow(10, -loss/10)
			row0 := sq(s[0].At(0, 1)) + sq(s[0].At(0, 2))
			row3 := sq(s[0].At(3, 1)) + sq(s[0].At(3, 2))
			return math.Abs(row0-want) < 1e-12 && math.Abs(row3-want) < 1e-12
		},
		gen.Float64Range(-2*math.Pi, 2*math.Pi),
		gen.Float64Range(-2*math.Pi, 2*math.Pi),
		gen.Float64Range(1.5e-6, 1.6e-6),
		gen.Float64Range(0, 3),
	))

	properties.Property("waveguide |S01| independent of wavelength", prop.ForAll(
		func(wl float64) bool {
			p := photonic.DefaultWaveguideParams()
			p.Loss = 1.5
			w, err := photonic.NewWaveguide(p, 0, false)
			if err != nil {
				return false
			}
			s, err := w.ScatteringMatrix([]float64{wl})
			if err != nil {
				return false
			}
			return math.Abs(cmplx.Abs(s[0].At(0, 1))-w.Amplitude()) < 1e-12
		},
		gen.Float64Range(1.2e-6, 1.7e-6),
	))

	properties.TestingRun(t)
}

func sq(v complex128) float64 {
	a := cmplx.Abs(v)
	return a * a
}
