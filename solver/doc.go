// Package solver computes end-to-end optical transmission of a terminated
// netlist.
//
// The Solver interface is the seam to an external frequency-domain circuit
// solver. Reference is an in-process implementation: it reduces the netlist
// to the scattering matrix seen at its terminals (photonic.Reduce), injects
// unit amplitude at every Source and reads the outgoing amplitude at every
// Detector. Term ports absorb; nothing is injected there.
//
// Response holds, per wavelength, a detectors×sources complex matrix;
// Power, DB and Trace index it by detector and source names ("p5", "s0").
package solver
