// SPDX-License-Identifier: MIT
// Package: siroap/solver
//
// reference.go - in-process Solver built on photonic.Reduce.
//
// Steps per wavelength:
//   1. Reduce the netlist to the T×T matrix at the terminal ports
//      (terminal order).
//   2. Copy the rows of detectors and columns of sources.
// Context cancellation is checked before every wavelength. Every call,
// including one rejected up front, is recorded in Metrics.

package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/siroap/photonic"
)

const methodSolve = "Solve"

// Reference is the built-in Solver. The zero value is ready to use, logs
// nothing and records no metrics.
type Reference struct {
	Logger  *slog.Logger
	Metrics *Metrics
}

var _ Solver = Reference{}

// Solve implements Solver.
func (r Reference) Solve(ctx context.Context, p Problem, wls []float64) (resp *Response, err error) {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	start := time.Now()
	done := 0
	defer func() {
		r.Metrics.observe(result(err), done, len(p.Terminals), time.Since(start).Seconds())
	}()

	src, det, err := p.split()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	if len(wls) == 0 {
		return nil, fmt.Errorf("%s: empty sweep: %w", methodSolve, photonic.ErrBadWavelength)
	}

	external := make([]photonic.Port, len(p.Terminals))
	for i, t := range p.Terminals {
		external[i] = t.Port
	}
	parts := p.Netlist.Parts()
	links := p.Netlist.Connections()

	resp = &Response{
		Wavelengths: append([]float64(nil), wls...),
		Sources:     p.pick(src),
		Detectors:   p.pick(det),
		Amplitude:   make([]*mat.CDense, 0, len(wls)),
	}
	for _, wl := range wls {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSolve, err)
		}
		var s []*mat.CDense
		if s, err = photonic.Reduce(parts, links, external, []float64{wl}); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSolve, err)
		}
		a := mat.NewCDense(len(det), len(src), nil)
		for i, d := range det {
			for j, so := range src {
				a.Set(i, j, s[0].At(d, so))
			}
		}
		resp.Amplitude = append(resp.Amplitude, a)
		done++
	}
	log.Debug("solve done",
		"parts", len(parts), "terminals", len(p.Terminals),
		"sources", len(src), "detectors", len(det),
		"wavelengths", len(wls), "elapsed", time.Since(start))
	return resp, nil
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
