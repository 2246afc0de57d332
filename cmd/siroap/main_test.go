// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTopology_Default(t *testing.T) {
	out, _, err := run(t, "topology")
	require.NoError(t, err)
	assert.Contains(t, out, "Mesh(1x1, cells=4, boundary=8)")
	assert.Contains(t, out, "connections: 4")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+1+8)
	assert.Equal(t, []string{"7", "H0_0:3"}, strings.Fields(lines[len(lines)-1]))
}

func TestRings_Verbose(t *testing.T) {
	path := writeConfig(t, "mesh: {rows: 2, cols: 2}\nstates:\n  V0_0: [bar]\n")
	out, logs, err := run(t, "rings", "--config", path, "-v")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Every interior square of a 2x2 mesh is seen from its four cells.
	assert.Len(t, lines, 1+4*4)
	assert.Contains(t, out, "right_ring")
	assert.Contains(t, logs, "level=DEBUG")
	assert.Contains(t, logs, "mesh built")
	assert.Contains(t, logs, "run=")
}

func TestSolve_Cross(t *testing.T) {
	path := writeConfig(t, `
states:
  V0_0: [cross]
  V0_1: [cross]
  H0_0: [cross]
  H1_0: [cross]
sources: [0]
detectors: [3]
sweep: {start: 1.55e-6, stop: 1.56e-6, points: 3}
`)
	metrics := filepath.Join(t.TempDir(), "siroap.prom")
	out, _, err := run(t, "solve", "-c", path, "--metrics-file", metrics)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"WL_NM", "p3<-s0"}, strings.Fields(lines[0]))
	for _, l := range lines[1:] {
		assert.Equal(t, "-0.500", strings.Fields(l)[1])
	}

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `siroap_solver_solves_total{result="ok"} 1`)
}

func TestSolve_FrequencyOffsets(t *testing.T) {
	path := writeConfig(t, `
states: {V0_0: [cross], V0_1: [cross], H0_0: [cross], H1_0: [cross]}
detectors: [3]
sweep: {offset_ghz: [0, 10], points: 3}
`)
	out, _, err := run(t, "solve", "-c", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"OFFSET_GHZ", "p3<-s0"}, strings.Fields(lines[0]))
	for i, off := range []string{"0.0000", "5.0000", "10.0000"} {
		assert.Equal(t, []string{off, "-0.500"}, strings.Fields(lines[i+1]))
	}
}

func TestBTU_Sweep(t *testing.T) {
	out, _, err := run(t, "btu", "--points", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"THETA_PI", "BAR", "CROSS"}, strings.Fields(lines[0]))
	// 0.25 dB insertion loss passes 10^(-0.025) of the power.
	assert.Equal(t, []string{"0.0000", "0.000000", "0.944061"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0.5000", "0.944061", "0.000000"}, strings.Fields(lines[2]))

	_, _, err = run(t, "btu", "--points", "0")
	assert.ErrorContains(t, err, "--points")
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "topology", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "states:\n  V0_0: [mirror]\n")
	_, _, err = run(t, "rings", "-c", path)
	assert.ErrorContains(t, err, "unknown state")

	path = writeConfig(t, "sources: [1]\ndetectors: [1]\n")
	_, _, err = run(t, "solve", "-c", path)
	assert.ErrorContains(t, err, "both source and detector")

	_, _, err = run(t, "topology", "extra")
	assert.Error(t, err)
}
