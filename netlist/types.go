// SPDX-License-Identifier: MIT
// Package: siroap/netlist
//
// types.go - Netlist, Terminal and TerminalKind plus the sentinel errors of
// netlist operations.

package netlist

import (
	"errors"
	"sync"

	"github.com/katalvlaran/siroap/photonic"
)

// Sentinel errors for netlist operations.
var (
	// ErrEmptyComponentID indicates an empty component ID.
	ErrEmptyComponentID = errors.New("netlist: component ID is empty")

	// ErrNilComponent indicates a nil component value.
	ErrNilComponent = errors.New("netlist: component is nil")

	// ErrDuplicateID indicates the component ID is already registered.
	ErrDuplicateID = errors.New("netlist: duplicate component ID")

	// ErrComponentNotFound indicates an operation referenced a missing component.
	ErrComponentNotFound = errors.New("netlist: component not found")

	// ErrPortRange indicates a port index outside [0, PortCount).
	ErrPortRange = errors.New("netlist: port index out of range")

	// ErrPortInUse indicates the port already has a connection.
	ErrPortInUse = errors.New("netlist: port already connected")

	// ErrSelfConnection indicates both endpoints are the same port.
	ErrSelfConnection = errors.New("netlist: port connected to itself")
)

// TerminalKind selects how a free port is terminated.
type TerminalKind int

const (
	// Term is a passive absorbing termination.
	Term TerminalKind = iota
	// Source injects unit optical amplitude.
	Source
	// Detector measures outgoing optical amplitude.
	Detector
)

// String returns the terminal kind name.
func (k TerminalKind) String() string {
	switch k {
	case Source:
		return "Source"
	case Detector:
		return "Detector"
	default:
		return "Term"
	}
}

// Terminal binds one free port to a Source, Detector or Term.
type Terminal struct {
	// Kind is the terminal type.
	Kind TerminalKind
	// Name is "s<i>", "p<i>" or "t<i>" with i the boundary index.
	Name string
	// Index is the boundary port number.
	Index int
	// Port is the component port the terminal is attached to.
	Port photonic.Port
}

// Netlist is an in-memory set of components and port connections.
//
// muComp guards components and order; muConn guards connections and peers.
// Insertion order of components is preserved and drives every enumeration.
type Netlist struct {
	muComp sync.RWMutex // guards components, order
	muConn sync.RWMutex // guards connections, peers

	components map[string]photonic.Component
	order      []string

	connections []photonic.Connection
	peers       map[photonic.Port]photonic.Port
}

// New returns an empty Netlist.
// Complexity: O(1).
func New() *Netlist {
	return &Netlist{
		components: make(map[string]photonic.Component),
		peers:      make(map[photonic.Port]photonic.Port),
	}
}
