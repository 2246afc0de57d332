// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// terminate.go - binding boundary ports to Source, Detector and Term.
//
// Contract:
//   • Every boundary port gets exactly one terminal, in boundary index order.
//   • Names follow the index: s{i} for sources, p{i} for detectors, t{i}
//     for absorbing terminations.
//   • Indices outside [0, 4(N+M)) → ErrIndexRange; an index in both lists
//     → ErrIndexCollision. Repeats inside one list are harmless.
//   • Terminals are assigned once; a second call → ErrAlreadyTerminated.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/siroap/netlist"
)

const methodTerminate = "Terminate"

// Terminate assigns terminals to every boundary port and returns them.
func (m *Mesh) Terminate(sources, detectors []int) ([]netlist.Terminal, error) {
	if m.terminals != nil {
		return nil, configErr(methodTerminate, ErrAlreadyTerminated, "%s", m)
	}
	n := len(m.boundary)
	kind := make(map[int]netlist.TerminalKind, len(sources)+len(detectors))
	for _, i := range sources {
		if i < 0 || i >= n {
			return nil, configErr(methodTerminate, ErrIndexRange, "source %d not in [0,%d)", i, n)
		}
		kind[i] = netlist.Source
	}
	for _, i := range detectors {
		if i < 0 || i >= n {
			return nil, configErr(methodTerminate, ErrIndexRange, "detector %d not in [0,%d)", i, n)
		}
		if kind[i] == netlist.Source {
			return nil, configErr(methodTerminate, ErrIndexCollision, "index %d", i)
		}
		kind[i] = netlist.Detector
	}

	terms := make([]netlist.Terminal, n)
	var nSrc, nDet int
	for i, p := range m.boundary {
		t := netlist.Terminal{Kind: kind[i], Index: i, Port: p}
		switch t.Kind {
		case netlist.Source:
			t.Name = fmt.Sprintf("s%d", i)
			nSrc++
		case netlist.Detector:
			t.Name = fmt.Sprintf("p%d", i)
			nDet++
		default:
			t.Name = fmt.Sprintf("t%d", i)
		}
		terms[i] = t
	}
	m.terminals = terms
	m.logger.Info("mesh terminated", "sources", nSrc, "detectors", nDet, "terms", n-nSrc-nDet)
	return append([]netlist.Terminal(nil), terms...), nil
}
