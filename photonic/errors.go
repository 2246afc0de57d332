// SPDX-License-Identifier: MIT
// Package: siroap/photonic
//
// errors.go - sentinel errors for the photonic package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w wrapping.
//   • Component math never panics; invalid inputs surface as errors.

package photonic

import "errors"

var (
	// ErrBadParams indicates non-physical component parameters
	// (negative length or loss, non-positive indices or reference wavelength).
	ErrBadParams = errors.New("photonic: invalid component parameters")

	// ErrBadWavelength indicates an empty wavelength sweep or a wavelength that
	// is not a positive finite number.
	ErrBadWavelength = errors.New("photonic: invalid wavelength")

	// ErrCouplingRange indicates a power coupling coefficient outside [0,1].
	ErrCouplingRange = errors.New("photonic: coupling out of range [0,1]")

	// ErrBadPhase indicates a NaN or infinite phase value.
	ErrBadPhase = errors.New("photonic: phase is not finite")

	// ErrNotTrainable indicates an attempt to retune a static phase.
	ErrNotTrainable = errors.New("photonic: phase is not trainable")

	// ErrDuplicatePart indicates a part with an empty/duplicate ID or a nil component.
	ErrDuplicatePart = errors.New("photonic: duplicate or invalid part")

	// ErrUnknownPart indicates a port that references a missing part.
	ErrUnknownPart = errors.New("photonic: unknown part")

	// ErrPortRange indicates a port index outside [0, PortCount).
	ErrPortRange = errors.New("photonic: port index out of range")

	// ErrPortInUse indicates a port used by more than one link or external slot.
	ErrPortInUse = errors.New("photonic: port already in use")

	// ErrDanglingPort indicates a port that is neither linked nor exposed.
	ErrDanglingPort = errors.New("photonic: dangling port")

	// ErrSingularNetwork indicates the internal scattering system I − C·S_II
	// could not be solved.
	ErrSingularNetwork = errors.New("photonic: singular network")
)
