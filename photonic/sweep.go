// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// sweep.go - wavelength and frequency-offset sweeps, dB conversion and the
// real/imaginary tensor layout expected by array-based circuit solvers.
//
// Frequency sweeps:
//   • Offsets are relative to a center frequency fc, in Hz.
//   • Point k sits at fc + offset[k] and is solved at λ = c/(fc + offset[k]).

package photonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	methodWavelengths    = "Wavelengths"
	methodFrequencySweep = "FrequencySweep"
)

// GHz is one gigahertz in Hz.
const GHz = 1e9

// CarrierFrequency returns c/wl0, the optical frequency of wl0.
func CarrierFrequency(wl0 float64) float64 { return SpeedOfLight / wl0 }

// GroupFrequency returns c/(ng·wl0), the reference frequency the mesh
// design sweeps are centered on.
func GroupFrequency(p Params) float64 { return SpeedOfLight / (p.Ng * p.WL0) }

// Wavelengths returns n evenly spaced wavelengths from start to stop inclusive.
// n == 1 yields {start}.
func Wavelengths(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodWavelengths, n, ErrBadWavelength)
	}
	if n == 1 {
		stop = start
	}
	if err := checkWavelengths(methodWavelengths, []float64{start, stop}); err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// FrequencySweep returns n offsets evenly spaced from minOffset to maxOffset
// inclusive (Hz) and the wavelength of each point fc + offset.
// n == 1 yields {minOffset}.
func FrequencySweep(fc, minOffset, maxOffset float64, n int) (wls, offsets []float64, err error) {
	if n < 1 || !finite(fc) || fc <= 0 || !finite(minOffset) || !finite(maxOffset) || maxOffset < minOffset {
		return nil, nil, fmt.Errorf("%s: fc=%g offsets=[%g,%g] n=%d: %w",
			methodFrequencySweep, fc, minOffset, maxOffset, n, ErrBadWavelength)
	}
	offsets = []float64{minOffset}
	if n > 1 {
		offsets = floats.Span(make([]float64, n), minOffset, maxOffset)
	}
	wls = make([]float64, n)
	for k, off := range offsets {
		wls[k] = SpeedOfLight / (fc + off)
	}
	if err = checkWavelengths(methodFrequencySweep, wls); err != nil {
		return nil, nil, err
	}
	return wls, offsets, nil
}

// DB10 converts a power ratio to decibels.
func DB10(power float64) float64 { return 10 * math.Log10(power) }

// Split lays out a sweep of r×c matrices as [2][len(ms)][r][c], index 0
// holding real parts and index 1 imaginary parts.
func Split(ms []*mat.CDense) [2][][][]float64 {
	var out [2][][][]float64
	out[0] = make([][][]float64, len(ms))
	out[1] = make([][][]float64, len(ms))
	for k, m := range ms {
		r, c := m.Dims()
		re, im := make([][]float64, r), make([][]float64, r)
		for i := 0; i < r; i++ {
			re[i], im[i] = make([]float64, c), make([]float64, c)
			for j := 0; j < c; j++ {
				v := m.At(i, j)
				re[i][j], im[i][j] = real(v), imag(v)
			}
		}
		out[0][k], out[1][k] = re, im
	}
	return out
}
