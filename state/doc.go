// Package state resolves the symbolic configuration of a mesh cell into the
// two arm phases (phiU, phiL) of its BTU.
//
// Resolution table:
//
//	state                   phiU          phiL
//	bar                     π             0
//	cross                   0             0
//	coupler(κ)              2·arccos(κ)   0
//	phase_shifter_bar(θ)    π+θ           θ
//	phase_shifter_cross(θ)  θ             θ
//
// bar and cross take no argument; an argument given to them is ignored.
// coupler requires κ ∈ [0,1]; the phase shifters require a finite θ.
//
// Parse accepts the external [name] / [name, number] list form found in
// configuration files, where the number may decode as any Go integer or
// float type.
//
// Errors:
//
//	ErrUnknownState    - name outside the table.
//	ErrMissingArgument - coupler or phase shifter without its argument.
//	ErrCouplingRange   - κ outside [0,1].
//	ErrBadArgument     - argument is NaN, ±Inf or not a number.
//	ErrMalformed       - external form is empty, too long or has a non-string name.
package state
