// SPDX-License-Identifier: MIT
// Package: siroap/solver
//
// solver.go - Solver contract, Problem and Response.

package solver

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/siroap/netlist"
	"github.com/katalvlaran/siroap/photonic"
)

// Sentinel errors.
var (
	ErrNoNetlist       = errors.New("solver: nil netlist")
	ErrNoSource        = errors.New("solver: no source terminal")
	ErrNoDetector      = errors.New("solver: no detector terminal")
	ErrUnknownTerminal = errors.New("solver: unknown terminal")
)

// Solver computes the response of a terminated problem over a wavelength sweep.
type Solver interface {
	Solve(ctx context.Context, p Problem, wls []float64) (*Response, error)
}

// Topology is anything that exposes a wired netlist and its terminals,
// such as *mesh.Mesh after Terminate.
type Topology interface {
	Netlist() *netlist.Netlist
	Terminals() []netlist.Terminal
}

// Problem is the input of a Solver. Terminals must cover every free port
// of Netlist exactly once.
type Problem struct {
	Netlist   *netlist.Netlist
	Terminals []netlist.Terminal
}

// FromTopology snapshots t into a Problem.
func FromTopology(t Topology) Problem {
	return Problem{Netlist: t.Netlist(), Terminals: t.Terminals()}
}

// split returns the positions of the source and detector terminals.
func (p Problem) split() (src, det []int, err error) {
	if p.Netlist == nil {
		return nil, nil, ErrNoNetlist
	}
	for i, t := range p.Terminals {
		switch t.Kind {
		case netlist.Source:
			src = append(src, i)
		case netlist.Detector:
			det = append(det, i)
		}
	}
	if len(src) == 0 {
		return nil, nil, ErrNoSource
	}
	if len(det) == 0 {
		return nil, nil, ErrNoDetector
	}
	return src, det, nil
}

func (p Problem) pick(idx []int) []netlist.Terminal {
	out := make([]netlist.Terminal, len(idx))
	for i, k := range idx {
		out[i] = p.Terminals[k]
	}
	return out
}

// Response holds the complex transmission from every source to every
// detector. Amplitude[k].At(d, s) is the field at Detectors[d] for unit
// input at Sources[s] and wavelength Wavelengths[k].
type Response struct {
	Wavelengths []float64
	Sources     []netlist.Terminal
	Detectors   []netlist.Terminal
	Amplitude   []*mat.CDense
}

// Power returns |Amplitude[k]|² element-wise.
func (r *Response) Power(k int) *mat.Dense {
	a := r.Amplitude[k]
	rows, cols := a.Dims()
	p := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := a.At(i, j)
			p.Set(i, j, real(v)*real(v)+imag(v)*imag(v))
		}
	}
	return p
}

// DB returns Power(k) in decibels.
func (r *Response) DB(k int) *mat.Dense {
	p := r.Power(k)
	p.Apply(func(_, _ int, v float64) float64 { return photonic.DB10(v) }, p)
	return p
}

// Trace returns the power from source to detector across the sweep.
func (r *Response) Trace(detector, source string) ([]float64, error) {
	d, ok := index(r.Detectors, detector)
	if !ok {
		return nil, fmt.Errorf("Trace: detector %q: %w", detector, ErrUnknownTerminal)
	}
	s, ok := index(r.Sources, source)
	if !ok {
		return nil, fmt.Errorf("Trace: source %q: %w", source, ErrUnknownTerminal)
	}
	out := make([]float64, len(r.Amplitude))
	for k, a := range r.Amplitude {
		v := a.At(d, s)
		out[k] = real(v)*real(v) + imag(v)*imag(v)
	}
	return out, nil
}

// Tensor renders the amplitudes as [real/imag][wavelength][detector][source].
func (r *Response) Tensor() [2][][][]float64 { return photonic.Split(r.Amplitude) }

func index(ts []netlist.Terminal, name string) (int, bool) {
	for i, t := range ts {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}
