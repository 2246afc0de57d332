// Package netlist holds the topology handed to a circuit solver: a set of
// named photonic components plus port-to-port connections.
//
// Invariants:
//
//   - A component ID is unique and non-empty.
//   - Every port carries at most one connection (ErrPortInUse otherwise).
//   - A port is never connected to itself.
//   - Ports without a connection are the network's free ports; FreePorts
//     lists them in component insertion order, ports ascending.
//
// Enumeration is deterministic: Components, Parts and FreePorts follow
// insertion order, Connections follows connection order. The Parts and
// Connections views plug directly into photonic.Reduce.
//
// Terminals bind free ports to a Source, a Detector or an absorbing Term
// and are produced by the mesh termination step.
//
// Errors:
//
//	ErrEmptyComponentID  - component ID is the empty string.
//	ErrNilComponent      - component value is nil.
//	ErrDuplicateID       - a component with this ID already exists.
//	ErrComponentNotFound - referenced component does not exist.
//	ErrPortRange         - port index outside [0, PortCount).
//	ErrPortInUse         - the port already carries a connection.
//	ErrSelfConnection    - a port connected to itself.
//
// A Netlist is safe for concurrent readers; writers are serialized by two
// RWMutexes (component catalog, connection catalog).
package netlist
