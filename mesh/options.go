// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// options.go - functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (nil factory, nil logger, non-positive wavelength).
//   • Build itself never panics.

package mesh

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/siroap/photonic"
)

// Option customizes Build by mutating a meshConfig before construction.
type Option func(*meshConfig)

// WithFactory sets the per-cell BTU factory. Build calls it once per cell;
// each call must return a fresh BTU.
func WithFactory(fn func() *photonic.BTU) Option {
	if fn == nil {
		panic("mesh: WithFactory(nil)")
	}
	return func(c *meshConfig) {
		c.factory = fn
	}
}

// WithLogger routes construction, configuration and termination events to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mesh: WithLogger(nil)")
	}
	return func(c *meshConfig) {
		c.logger = l
	}
}

// WithReferenceWavelength sets the wavelength at which ring tracing
// evaluates phiC. Without it each cell uses its own WL0.
func WithReferenceWavelength(wl float64) Option {
	if math.IsNaN(wl) || math.IsInf(wl, 0) || wl <= 0 {
		panic("mesh: WithReferenceWavelength(wl<=0)")
	}
	return func(c *meshConfig) {
		c.refWL = wl
	}
}
