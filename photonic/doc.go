// Package photonic models the optical primitives of a reconfigurable photonic
// integrated circuit and computes their frequency-domain scattering response.
//
// Every primitive implements Component:
//
//	Kind() Kind                                            // closed set, see below
//	PortCount() int                                        // 2 or 4
//	ScatteringMatrix(wls []float64) ([]*mat.CDense, error) // one PortCount×PortCount matrix per wavelength
//	Delay() float64                                        // propagation delay in seconds
//
// The set of components is closed:
//
//	KindWaveguide          - 2 ports, dispersive phase + propagation loss
//	KindDirectionalCoupler - 4 ports, power coupling κ, no delay
//	KindBTU                - 4 ports, generalized 2×2 MZI switch (phiU, phiL)
//	KindRingResonator      - 4 ports, two couplers + two half-ring waveguides
//
// Port conventions (the S-matrix formulas rely on them):
//
//	Waveguide            DirectionalCoupler        BTU
//	0 ──── 1             3        2                     ___phiU____
//	                      \______/              3____  /           \  ___2
//	                      /------\                   \/             \/
//	                     0        1             0____/\____phiL_____/\___1
//
// Units: lengths and wavelengths in meters, waveguide loss in dB/cm,
// BTU loss as total insertion loss in dB.
//
// Composite components (RingResonator4) and whole meshes are reduced to the
// response at their free ports by Reduce, which solves the steady-state
// scattering equations with gonum.
//
// Errors:
//
//	ErrBadParams       - non-physical length/index/loss/wavelength parameters.
//	ErrBadWavelength   - empty sweep or a non-positive / non-finite wavelength.
//	ErrCouplingRange   - coupling coefficient outside [0,1].
//	ErrBadPhase        - non-finite phase value.
//	ErrNotTrainable    - phase mutation on a static (non-trainable) waveguide.
//	ErrDuplicatePart   - two parts share an ID (or ID is empty / component nil).
//	ErrUnknownPart     - a port references a part that does not exist.
//	ErrPortRange       - port index outside [0, PortCount).
//	ErrPortInUse       - a port appears in more than one link/external slot.
//	ErrDanglingPort    - a port is neither linked nor exposed.
//	ErrSingularNetwork - the reduced scattering system has no unique solution.
package photonic
