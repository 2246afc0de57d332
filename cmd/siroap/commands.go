// SPDX-License-Identifier: MIT
// Package: siroap/cmd/siroap
//
// commands.go - topology, rings and solve subcommands.

package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/siroap/solver"
)

func (a *app) topologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topology",
		Short: "Print cells, connection count and boundary port numbering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.buildMesh()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, m)
			fmt.Fprintln(out, "connections:", m.Netlist().ConnectionCount())

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tPORT")
			for i, p := range m.Boundary() {
				fmt.Fprintf(tw, "%d\t%s\n", i, p)
			}
			return tw.Flush()
		},
	}
}

func (a *app) ringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rings",
		Short: "Print the phase of every closed four-cell ring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.buildMesh()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CELL\tRING\tPHASE_RAD")
			for _, r := range m.RingPhases() {
				fmt.Fprintf(tw, "%s\t%s\t%.6f\n", r.Cell, r.Ring, r.Phase)
			}
			return tw.Flush()
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var metricsFile string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print detector power (dB) per wavelength for every source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.buildMesh()
			if err != nil {
				return err
			}
			if _, err = m.Terminate(a.cfg.Sources, a.cfg.Detectors); err != nil {
				return err
			}
			wls, offsets, err := a.cfg.SweepPoints()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			ref := solver.Reference{Logger: a.log, Metrics: solver.NewMetrics(reg)}
			resp, err := ref.Solve(cmd.Context(), solver.FromTopology(m), wls)
			if err != nil {
				return err
			}
			if err = printResponse(cmd, resp, offsets); err != nil {
				return err
			}
			if metricsFile != "" {
				if err = prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write solver metrics in Prometheus text format")
	return cmd
}

func (a *app) btuCmd() *cobra.Command {
	var points int
	var wl float64
	cmd := &cobra.Command{
		Use:   "btu",
		Short: "Sweep phiU=θ, phiL=−θ on one configured BTU and print bar/cross power",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if points < 1 {
				return fmt.Errorf("btu: --points must be at least 1, got %d", points)
			}
			factory, err := a.cfg.Factory()
			if err != nil {
				return err
			}
			if wl == 0 {
				wl = a.cfg.BTU.WL0
			}
			ref := solver.Reference{Logger: a.log}
			res, err := solver.CharacterizeBTU(cmd.Context(), ref, factory(), solver.Thetas(points), wl)
			if err != nil {
				return err
			}
			a.log.Info("btu characterized", "points", len(res), "wl", wl)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "THETA_PI\tBAR\tCROSS")
			for _, p := range res {
				fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\n", p.Theta/math.Pi, p.Bar, p.Cross)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&points, "points", 50, "number of θ samples over [0, π)")
	cmd.Flags().Float64Var(&wl, "wl", 0, "wavelength in meters (default btu.wl0)")
	return cmd
}

// printResponse writes one row per sweep point and one column per
// detector/source pair. Rows are labeled by frequency offset when offsets
// is set, by wavelength otherwise.
func printResponse(cmd *cobra.Command, resp *solver.Response, offsetsGHz []float64) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if offsetsGHz != nil {
		fmt.Fprint(tw, "OFFSET_GHZ")
	} else {
		fmt.Fprint(tw, "WL_NM")
	}
	for _, d := range resp.Detectors {
		for _, s := range resp.Sources {
			fmt.Fprintf(tw, "\t%s<-%s", d.Name, s.Name)
		}
	}
	fmt.Fprintln(tw)
	for k, wl := range resp.Wavelengths {
		db := resp.DB(k)
		if offsetsGHz != nil {
			fmt.Fprintf(tw, "%.4f", offsetsGHz[k])
		} else {
			fmt.Fprintf(tw, "%.4f", wl*1e9)
		}
		for i := range resp.Detectors {
			for j := range resp.Sources {
				fmt.Fprintf(tw, "\t%.3f", db.At(i, j))
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
