// SPDX-License-Identifier: MIT
// Package: siroap/cmd/siroap
//
// root.go - root command, shared flags and run setup.

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/siroap/config"
	"github.com/katalvlaran/siroap/mesh"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath string
	verbose bool

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "siroap",
		Short:         "Model reconfigurable photonic BTU meshes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML run description (defaults apply when empty)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(a.topologyCmd(), a.ringsCmd(), a.solveCmd(), a.btuCmd())
	return root
}

// setup loads the configuration and builds the run logger on stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	a.log = slog.New(h).With("run", uuid.NewString(), "cmd", cmd.Name())
	a.log.Debug("config loaded", "path", a.cfgPath,
		"rows", cfg.Mesh.Rows, "cols", cfg.Mesh.Cols, "states", len(cfg.States))
	return nil
}

// buildMesh builds the configured mesh and applies the configured states.
func (a *app) buildMesh() (*mesh.Mesh, error) {
	factory, err := a.cfg.Factory()
	if err != nil {
		return nil, err
	}
	m, err := mesh.Build(a.cfg.Mesh.Rows, a.cfg.Mesh.Cols,
		mesh.WithFactory(factory),
		mesh.WithLogger(a.log),
		mesh.WithReferenceWavelength(a.cfg.BTU.WL0))
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	if len(a.cfg.States) > 0 {
		if err = m.ParseConfiguration(a.cfg.States); err != nil {
			return nil, err
		}
	}
	return m, nil
}
