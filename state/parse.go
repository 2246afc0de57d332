// SPDX-License-Identifier: MIT
// Package: siroap/state
//
// parse.go - decoding of the external [name, optionalNumber] list form.

package state

import (
	"fmt"
	"math"
)

const methodParse = "Parse"

// Parse decodes the external list form into a State and checks that it
// resolves. The name must be a string; the optional second element may be
// any integer or float type.
func Parse(raw []any) (State, error) {
	if len(raw) == 0 || len(raw) > 2 {
		return State{}, fmt.Errorf("%s: %d elements: %w", methodParse, len(raw), ErrMalformed)
	}
	name, ok := raw[0].(string)
	if !ok {
		return State{}, fmt.Errorf("%s: name %v (%T): %w", methodParse, raw[0], raw[0], ErrMalformed)
	}

	s := State{Name: Name(name)}
	if len(raw) == 2 && raw[1] != nil {
		v, err := number(raw[1])
		if err != nil {
			return State{}, fmt.Errorf("%s: %s: %w", methodParse, name, err)
		}
		s.Arg, s.HasArg = v, true
	}
	if _, _, err := Resolve(s); err != nil {
		return State{}, fmt.Errorf("%s: %w", methodParse, err)
	}
	return s, nil
}

// number widens any Go numeric value to float64.
func number(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	default:
		return 0, fmt.Errorf("argument %v (%T): %w", v, v, ErrBadArgument)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("argument %v: %w", v, ErrBadArgument)
	}
	return f, nil
}
