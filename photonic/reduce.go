// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// reduce.go - steady-state reduction of a linked network of components to
// the scattering matrix seen at its exposed ports.
//
// Model:
//   • All part ports are stacked into one global index space (part order,
//     then local port order). S is block diagonal over parts.
//   • b = S·a (outgoing from incoming); a link p↔q forces a_p = b_q, a_q = b_p.
//   • With I = linked ports, E = exposed ports and C the link permutation:
//       (I − C·S_II)·a_I = C·S_IE·a_E
//       S_ext = S_EE + S_EI·(I − C·S_II)^{-1}·C·S_IE
//   • The complex system is solved through its real 2n×2n embedding
//       [Re −Im; Im Re]·[x_r; x_i] = [b_r; b_i]
//     with gonum's Dense.Solve.
//
// Determinism:
//   • External port order of the result follows the `external` argument.
//
// Complexity:
//   • O(n_I³) per wavelength for the solve, n_I = number of linked ports.

package photonic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodReduce = "Reduce"

// network is the resolved index layout of a set of parts, links and exposed ports.
type network struct {
	parts    []Part
	offset   []int // part index -> first global port
	owner    []int // global port -> part index
	local    []int // global port -> local port index
	peer     []int // global port -> linked global port or -1
	internal []int // linked global ports in link order
	external []int // exposed global ports in caller order
}

// Reduce returns, per wavelength, the len(external)×len(external) scattering
// matrix of the network formed by parts joined with links. Every part port
// must be either linked exactly once or listed exactly once in external.
func Reduce(parts []Part, links []Connection, external []Port, wls []float64) ([]*mat.CDense, error) {
	if err := checkWavelengths(methodReduce, wls); err != nil {
		return nil, err
	}
	nw, err := layout(parts, links, external)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReduce, err)
	}

	// One S-matrix sweep per part, reused for every wavelength slice.
	blocks := make([][]*mat.CDense, len(parts))
	for i, p := range parts {
		s, err := p.Component.ScatteringMatrix(wls)
		if err != nil {
			return nil, fmt.Errorf("%s: part %s: %w", methodReduce, p.ID, err)
		}
		blocks[i] = s
	}

	out := make([]*mat.CDense, len(wls))
	for k := range wls {
		s, err := nw.reduceAt(blocks, k)
		if err != nil {
			return nil, fmt.Errorf("%s: wl=%g: %w", methodReduce, wls[k], err)
		}
		out[k] = s
	}
	return out, nil
}

// layout validates the network description and assigns global port indices.
func layout(parts []Part, links []Connection, external []Port) (*network, error) {
	nw := &network{parts: parts, offset: make([]int, len(parts))}
	byID := make(map[string]int, len(parts))
	total := 0
	for i, p := range parts {
		if p.ID == "" || p.Component == nil {
			return nil, fmt.Errorf("part #%d: %w", i, ErrDuplicatePart)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("part %s: %w", p.ID, ErrDuplicatePart)
		}
		byID[p.ID] = i
		nw.offset[i] = total
		total += p.Component.PortCount()
	}

	nw.owner = make([]int, total)
	nw.local = make([]int, total)
	nw.peer = make([]int, total)
	used := make([]bool, total)
	for i, p := range parts {
		for j := 0; j < p.Component.PortCount(); j++ {
			g := nw.offset[i] + j
			nw.owner[g], nw.local[g], nw.peer[g] = i, j, -1
		}
	}

	global := func(p Port) (int, error) {
		i, ok := byID[p.Component]
		if !ok {
			return 0, fmt.Errorf("port %s: %w", p, ErrUnknownPart)
		}
		if p.Index < 0 || p.Index >= parts[i].Component.PortCount() {
			return 0, fmt.Errorf("port %s: %w", p, ErrPortRange)
		}
		g := nw.offset[i] + p.Index
		if used[g] {
			return 0, fmt.Errorf("port %s: %w", p, ErrPortInUse)
		}
		used[g] = true
		return g, nil
	}

	for _, l := range links {
		a, err := global(l.A)
		if err != nil {
			return nil, err
		}
		b, err := global(l.B)
		if err != nil {
			return nil, err
		}
		nw.peer[a], nw.peer[b] = b, a
		nw.internal = append(nw.internal, a, b)
	}
	for _, p := range external {
		g, err := global(p)
		if err != nil {
			return nil, err
		}
		nw.external = append(nw.external, g)
	}
	for g, ok := range used {
		if !ok {
			p := Port{Component: parts[nw.owner[g]].ID, Index: nw.local[g]}
			return nil, fmt.Errorf("port %s: %w", p, ErrDanglingPort)
		}
	}
	return nw, nil
}

// s returns the global S entry (i,j) at wavelength slice k.
func (nw *network) s(blocks [][]*mat.CDense, k, i, j int) complex128 {
	if nw.owner[i] != nw.owner[j] {
		return 0
	}
	return blocks[nw.owner[i]][k].At(nw.local[i], nw.local[j])
}

func (nw *network) reduceAt(blocks [][]*mat.CDense, k int) (*mat.CDense, error) {
	nI, nE := len(nw.internal), len(nw.external)
	res := mat.NewCDense(nE, nE, nil)
	for a, ea := range nw.external {
		for b, eb := range nw.external {
			res.Set(a, b, nw.s(blocks, k, ea, eb))
		}
	}
	if nI == 0 || nE == 0 {
		return res, nil
	}

	lhs := mat.NewDense(2*nI, 2*nI, nil)
	rhs := mat.NewDense(2*nI, nE, nil)
	for r, ir := range nw.internal {
		pr := nw.peer[ir]
		for c, ic := range nw.internal {
			v := -nw.s(blocks, k, pr, ic)
			if r == c {
				v += 1
			}
			lhs.Set(r, c, real(v))
			lhs.Set(r, c+nI, -imag(v))
			lhs.Set(r+nI, c, imag(v))
			lhs.Set(r+nI, c+nI, real(v))
		}
		for e, ie := range nw.external {
			v := nw.s(blocks, k, pr, ie)
			rhs.Set(r, e, real(v))
			rhs.Set(r+nI, e, imag(v))
		}
	}

	var x mat.Dense
	if err := x.Solve(lhs, rhs); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSingularNetwork)
	}

	for a, ea := range nw.external {
		for b := range nw.external {
			sum := res.At(a, b)
			for r, ir := range nw.internal {
				if nw.owner[ir] != nw.owner[ea] {
					continue
				}
				sum += nw.s(blocks, k, ea, ir) * complex(x.At(r, b), x.At(r+nI, b))
			}
			res.Set(a, b, sum)
		}
	}
	return res, nil
}
