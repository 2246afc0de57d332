// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// tracer.go - neighbor lookup and common-mode phase accumulation along
// paths of cells.
//
// Neighbors:
//
//	V{i}_{j}:  UL=H{i}_{j-1}  UR=H{i}_{j}    LL=H{i+1}_{j-1}  LR=H{i+1}_{j}
//	           UL, LL undefined at j=0;  UR, LR undefined at j=M
//	H{i}_{j}:  UL=V{i-1}_{j}  UR=V{i-1}_{j+1} LL=V{i}_{j}     LR=V{i}_{j+1}
//	           UL, UR undefined at i=0;  LL, LR undefined at i=N
//
// An undefined neighbor means the mesh boundary was reached; it is reported
// as ok=false, never as an error.

package mesh

import "github.com/katalvlaran/siroap/photonic"

const (
	methodPathPhase = "PathPhase"
	methodRingPhase = "RingPhase"
)

// Neighbor returns the cell one diagonal step from key in direction d.
// ok is false at the mesh boundary or when key is not a cell of the mesh.
func (m *Mesh) Neighbor(key CellKey, d Direction) (next CellKey, ok bool) {
	if !m.Has(key) {
		return CellKey{}, false
	}
	i, j := key.Row, key.Col
	if key.Orientation == Vertical {
		switch d {
		case UL:
			next = H(i, j-1)
		case UR:
			next = H(i, j)
		case LL:
			next = H(i+1, j-1)
		case LR:
			next = H(i+1, j)
		default:
			return CellKey{}, false
		}
	} else {
		switch d {
		case UL:
			next = V(i-1, j)
		case UR:
			next = V(i-1, j+1)
		case LL:
			next = V(i, j)
		case LR:
			next = V(i, j+1)
		default:
			return CellKey{}, false
		}
	}
	// Index arithmetic past an edge lands outside the lattice.
	if !m.Has(next) {
		return CellKey{}, false
	}
	return next, true
}

// PathPhase walks dirs from start and sums the common-mode phase phiC of
// start and of every visited cell. exists turns false on the first step
// that leaves the mesh; the remaining steps are skipped and phase holds the
// sum up to that point. The sum is not wrapped.
func (m *Mesh) PathPhase(start CellKey, dirs []Direction) (phase float64, exists bool, err error) {
	if !m.Has(start) {
		return 0, false, configErr(methodPathPhase, ErrUnknownCell, "%s", start)
	}
	key := start
	phase = m.phiC(key)
	for _, d := range dirs {
		next, ok := m.Neighbor(key, d)
		if !ok {
			m.logger.Debug("path left mesh", "start", start.String(), "at", key.String(), "dir", d.String())
			return phase, false, nil
		}
		key = next
		phase += m.phiC(key)
	}
	return phase, true, nil
}

// RingPhase traces the two rings of key (left/right for vertical cells,
// upper/lower for horizontal cells) and returns the phase of each closed
// ring wrapped to [0,2π). Rings that leave the mesh are omitted.
func (m *Mesh) RingPhase(key CellKey) (map[Ring]float64, error) {
	if !m.Has(key) {
		return nil, configErr(methodRingPhase, ErrUnknownCell, "%s", key)
	}
	out := make(map[Ring]float64, 2)
	for _, rp := range ringPaths[key.Orientation] {
		phase, exists, err := m.PathPhase(key, rp.dirs)
		if err != nil {
			return nil, err
		}
		if exists {
			out[rp.ring] = photonic.WrapPhase(phase)
		}
	}
	return out, nil
}

// RingReport is one closed ring found by RingPhases.
type RingReport struct {
	Cell  CellKey
	Ring  Ring
	Phase float64 // wrapped to [0,2π)
}

// RingPhases traces the rings of every cell in Cells() order.
func (m *Mesh) RingPhases() []RingReport {
	var out []RingReport
	for _, key := range m.order {
		for _, rp := range ringPaths[key.Orientation] {
			phase, exists, _ := m.PathPhase(key, rp.dirs) // key is a cell of m
			if exists {
				out = append(out, RingReport{Cell: key, Ring: rp.ring, Phase: photonic.WrapPhase(phase)})
			}
		}
	}
	return out
}

// phiC returns the cell's common-mode phase at the reference wavelength,
// wrapped to [0,2π).
func (m *Mesh) phiC(key CellKey) float64 {
	b := m.cells[key]
	if m.refWL > 0 {
		return photonic.WrapPhase(b.PhiC(m.refWL))
	}
	return b.RefPhiC()
}
