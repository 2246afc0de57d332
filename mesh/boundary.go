// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// boundary.go - global numbering of the 4(N+M) boundary ports.
//
// Edges are numbered in order west, south, east, north; each cell on an
// edge contributes two consecutive indices:
//
//	west   V{i}_0       ports 0,1   i = 0..N-1          → 2i, 2i+1
//	south  H{N}_{j}     ports 0,1   j = 0..M-1          → 2N+2j, +1
//	east   V{N-1-i}_{M} ports 2,3   i = 0..N-1          → 2(N+M)+2i, +1
//	north  H{0}_{M-1-j} ports 2,3   j = 0..M-1          → 2(2N+M)+2j, +1
//
// Termination and solver output depend on this order verbatim.

package mesh

import "github.com/katalvlaran/siroap/photonic"

// BoundaryCount returns 4(N+M).
func BoundaryCount(rows, cols int) int { return 4 * (rows + cols) }

func boundaryPorts(rows, cols int) []photonic.Port {
	ports := make([]photonic.Port, 0, BoundaryCount(rows, cols))
	for i := 0; i < rows; i++ {
		ports = append(ports, cellPort(V(i, 0), 0), cellPort(V(i, 0), 1))
	}
	for j := 0; j < cols; j++ {
		ports = append(ports, cellPort(H(rows, j), 0), cellPort(H(rows, j), 1))
	}
	for i := 0; i < rows; i++ {
		k := V(rows-1-i, cols)
		ports = append(ports, cellPort(k, 2), cellPort(k, 3))
	}
	for j := 0; j < cols; j++ {
		k := H(0, cols-1-j)
		ports = append(ports, cellPort(k, 2), cellPort(k, 3))
	}
	return ports
}
