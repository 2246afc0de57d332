// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// config.go - resolved Build configuration and its defaults.
//
// Defaults:
//   • factory = DefaultFactory (trainable BTU, photonic.DefaultBTUParams)
//   • logger  = discard
//   • refWL   = 0 (each cell's own WL0)

package mesh

import (
	"log/slog"

	"github.com/katalvlaran/siroap/photonic"
)

// meshConfig aggregates the knobs of Build. Later options override earlier ones.
type meshConfig struct {
	factory func() *photonic.BTU
	logger  *slog.Logger
	refWL   float64
}

func newMeshConfig(opts ...Option) meshConfig {
	cfg := meshConfig{
		factory: DefaultFactory,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultFactory returns a trainable BTU in the cross state (phiU=phiL=0)
// with photonic.DefaultBTUParams.
func DefaultFactory() *photonic.BTU {
	b, err := photonic.NewBTU(photonic.DefaultBTUParams(), photonic.PhaseState{Trainable: true})
	if err != nil {
		// DefaultBTUParams is valid by construction.
		panic(err)
	}
	return b
}
