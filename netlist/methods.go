// SPDX-License-Identifier: MIT
// Package: siroap/netlist
//
// methods.go - component and connection lifecycle and queries.
//
// Determinism:
//   - Components() and Parts() follow insertion order.
//   - Connections() follows connection order.
//   - FreePorts() walks components in insertion order, ports ascending.
//
// Concurrency:
//   - Component catalog under muComp; connection catalog under muConn.
//   - FreePorts nests muComp before muConn; nothing nests them the other
//     way round.

package netlist

import (
	"fmt"

	"github.com/katalvlaran/siroap/photonic"
)

// AddComponent registers c under id.
//
// Errors:
//   - ErrEmptyComponentID, ErrNilComponent, ErrDuplicateID.
//
// Complexity: O(1) amortized.
func (n *Netlist) AddComponent(id string, c photonic.Component) error {
	if id == "" {
		return ErrEmptyComponentID
	}
	if c == nil {
		return fmt.Errorf("AddComponent(%s): %w", id, ErrNilComponent)
	}
	n.muComp.Lock()
	defer n.muComp.Unlock()
	if _, ok := n.components[id]; ok {
		return fmt.Errorf("AddComponent(%s): %w", id, ErrDuplicateID)
	}
	n.components[id] = c
	n.order = append(n.order, id)
	return nil
}

// Component returns the component registered under id.
// Complexity: O(1).
func (n *Netlist) Component(id string) (photonic.Component, error) {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	c, ok := n.components[id]
	if !ok {
		return nil, fmt.Errorf("Component(%s): %w", id, ErrComponentNotFound)
	}
	return c, nil
}

// HasComponent reports whether id is registered.
func (n *Netlist) HasComponent(id string) bool {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	_, ok := n.components[id]
	return ok
}

// Components returns the component IDs in insertion order.
// Complexity: O(V).
func (n *Netlist) Components() []string {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	return append([]string(nil), n.order...)
}

// Parts returns the components as photonic parts in insertion order.
// Complexity: O(V).
func (n *Netlist) Parts() []photonic.Part {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	parts := make([]photonic.Part, len(n.order))
	for i, id := range n.order {
		parts[i] = photonic.Part{ID: id, Component: n.components[id]}
	}
	return parts
}

// ComponentCount returns the number of components.
func (n *Netlist) ComponentCount() int {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	return len(n.order)
}

// PortCount returns the total number of ports across all components.
// Complexity: O(V).
func (n *Netlist) PortCount() int {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	total := 0
	for _, c := range n.components {
		total += c.PortCount()
	}
	return total
}

// Connect joins ports a and b.
//
// Steps:
//  1. Reject a == b (ErrSelfConnection).
//  2. Resolve both components and check index ranges.
//  3. Under muConn, reject ports that already carry a connection.
//  4. Record the connection and both peer pointers.
//
// Errors:
//   - ErrSelfConnection, ErrComponentNotFound, ErrPortRange, ErrPortInUse.
//
// Complexity: O(1).
func (n *Netlist) Connect(a, b photonic.Port) error {
	if a == b {
		return fmt.Errorf("Connect(%s, %s): %w", a, b, ErrSelfConnection)
	}
	if err := n.checkPort(a); err != nil {
		return fmt.Errorf("Connect(%s, %s): %w", a, b, err)
	}
	if err := n.checkPort(b); err != nil {
		return fmt.Errorf("Connect(%s, %s): %w", a, b, err)
	}

	n.muConn.Lock()
	defer n.muConn.Unlock()
	for _, p := range [2]photonic.Port{a, b} {
		if peer, used := n.peers[p]; used {
			return fmt.Errorf("Connect(%s, %s): %s already wired to %s: %w", a, b, p, peer, ErrPortInUse)
		}
	}
	n.connections = append(n.connections, photonic.Connection{A: a, B: b})
	n.peers[a] = b
	n.peers[b] = a
	return nil
}

// checkPort validates that p names an existing component port.
func (n *Netlist) checkPort(p photonic.Port) error {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	c, ok := n.components[p.Component]
	if !ok {
		return fmt.Errorf("port %s: %w", p, ErrComponentNotFound)
	}
	if p.Index < 0 || p.Index >= c.PortCount() {
		return fmt.Errorf("port %s: %w", p, ErrPortRange)
	}
	return nil
}

// Peer returns the port connected to p, if any.
// Complexity: O(1).
func (n *Netlist) Peer(p photonic.Port) (photonic.Port, bool) {
	n.muConn.RLock()
	defer n.muConn.RUnlock()
	q, ok := n.peers[p]
	return q, ok
}

// Connections returns a copy of all connections in insertion order.
// Complexity: O(E).
func (n *Netlist) Connections() []photonic.Connection {
	n.muConn.RLock()
	defer n.muConn.RUnlock()
	return append([]photonic.Connection(nil), n.connections...)
}

// ConnectionCount returns the number of connections.
func (n *Netlist) ConnectionCount() int {
	n.muConn.RLock()
	defer n.muConn.RUnlock()
	return len(n.connections)
}

// FreePorts returns every port without a connection, components in
// insertion order and ports ascending.
// Complexity: O(P) with P the total port count.
func (n *Netlist) FreePorts() []photonic.Port {
	n.muComp.RLock()
	defer n.muComp.RUnlock()
	n.muConn.RLock()
	defer n.muConn.RUnlock()

	var free []photonic.Port
	for _, id := range n.order {
		for i := 0; i < n.components[id].PortCount(); i++ {
			p := photonic.Port{Component: id, Index: i}
			if _, used := n.peers[p]; !used {
				free = append(free, p)
			}
		}
	}
	return free
}
