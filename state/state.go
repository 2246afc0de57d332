// SPDX-License-Identifier: MIT
// Package: siroap/state
//
// state.go - symbolic cell states and their resolution to arm phases.

package state

import (
	"errors"
	"fmt"
	"math"
)

// Name is a symbolic cell state.
type Name string

// Known state names.
const (
	Bar               Name = "bar"
	Cross             Name = "cross"
	Coupler           Name = "coupler"
	PhaseShifterBar   Name = "phase_shifter_bar"
	PhaseShifterCross Name = "phase_shifter_cross"
)

// Names lists every known state in table order.
var Names = []Name{Bar, Cross, Coupler, PhaseShifterBar, PhaseShifterCross}

// Sentinel errors.
var (
	ErrUnknownState    = errors.New("state: unknown state")
	ErrMissingArgument = errors.New("state: missing argument")
	ErrCouplingRange   = errors.New("state: coupling out of [0,1]")
	ErrBadArgument     = errors.New("state: invalid argument")
	ErrMalformed       = errors.New("state: malformed state")
)

const methodResolve = "Resolve"

// State is a symbolic tag plus an optional numeric argument
// (κ for coupler, θ for the phase shifters).
type State struct {
	Name   Name
	Arg    float64
	HasArg bool
}

// Of returns an argument-less State.
func Of(name Name) State { return State{Name: name} }

// With returns a State carrying arg.
func With(name Name, arg float64) State { return State{Name: name, Arg: arg, HasArg: true} }

// String renders the state as "name" or "name(arg)".
func (s State) String() string {
	if !s.HasArg {
		return string(s.Name)
	}
	return fmt.Sprintf("%s(%g)", s.Name, s.Arg)
}

// needsArg reports whether the state is parameterized.
func (n Name) needsArg() bool {
	return n == Coupler || n == PhaseShifterBar || n == PhaseShifterCross
}

// Known reports whether n is in the resolution table.
func (n Name) Known() bool {
	for _, k := range Names {
		if n == k {
			return true
		}
	}
	return false
}

// Resolve maps s to the (phiU, phiL) arm phases of a BTU.
// Complexity: O(1).
func Resolve(s State) (phiU, phiL float64, err error) {
	if !s.Name.Known() {
		return 0, 0, fmt.Errorf("%s: %q: %w", methodResolve, s.Name, ErrUnknownState)
	}
	if s.Name.needsArg() {
		if !s.HasArg {
			return 0, 0, fmt.Errorf("%s: %s: %w", methodResolve, s.Name, ErrMissingArgument)
		}
		if math.IsNaN(s.Arg) || math.IsInf(s.Arg, 0) {
			return 0, 0, fmt.Errorf("%s: %s: %w", methodResolve, s, ErrBadArgument)
		}
	}

	switch s.Name {
	case Bar:
		return math.Pi, 0, nil
	case Cross:
		return 0, 0, nil
	case Coupler:
		if s.Arg < 0 || s.Arg > 1 {
			return 0, 0, fmt.Errorf("%s: %s: %w", methodResolve, s, ErrCouplingRange)
		}
		return 2 * math.Acos(s.Arg), 0, nil
	case PhaseShifterBar:
		return math.Pi + s.Arg, s.Arg, nil
	default: // PhaseShifterCross
		return s.Arg, s.Arg, nil
	}
}
