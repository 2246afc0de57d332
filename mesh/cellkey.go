// SPDX-License-Identifier: MIT
// Package: siroap/mesh
//
// cellkey.go - structured cell coordinates, tracing directions and ring names.

package mesh

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation distinguishes the two cell lattices of the mesh.
type Orientation int

const (
	// Vertical cells V{i}_{j}, i ∈ [0,N), j ∈ [0,M].
	Vertical Orientation = iota
	// Horizontal cells H{i}_{j}, i ∈ [0,N], j ∈ [0,M).
	Horizontal
)

// String returns "V" or "H".
func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// CellKey addresses one BTU of the mesh. It is comparable and used as a map key.
type CellKey struct {
	Orientation Orientation
	Row         int
	Col         int
}

// V returns the key of vertical cell V{i}_{j}.
func V(i, j int) CellKey { return CellKey{Orientation: Vertical, Row: i, Col: j} }

// H returns the key of horizontal cell H{i}_{j}.
func H(i, j int) CellKey { return CellKey{Orientation: Horizontal, Row: i, Col: j} }

// String renders the external form, e.g. "V3_2".
func (k CellKey) String() string {
	return fmt.Sprintf("%s%d_%d", k.Orientation, k.Row, k.Col)
}

// ParseCellKey parses "V{i}_{j}" or "H{i}_{j}" with non-negative decimal i, j
// in canonical form, so that ParseCellKey(k.String()) == k and every key has
// exactly one spelling.
func ParseCellKey(s string) (CellKey, error) {
	if len(s) < 4 {
		return CellKey{}, fmt.Errorf("ParseCellKey(%q): %w: %w", s, ErrBadCellKey, ErrConfiguration)
	}
	var k CellKey
	switch s[0] {
	case 'V':
		k.Orientation = Vertical
	case 'H':
		k.Orientation = Horizontal
	default:
		return CellKey{}, fmt.Errorf("ParseCellKey(%q): %w: %w", s, ErrBadCellKey, ErrConfiguration)
	}
	row, col, ok := strings.Cut(s[1:], "_")
	if !ok {
		return CellKey{}, fmt.Errorf("ParseCellKey(%q): %w: %w", s, ErrBadCellKey, ErrConfiguration)
	}
	var err error
	if k.Row, err = atoi(row); err != nil {
		return CellKey{}, fmt.Errorf("ParseCellKey(%q): row: %w: %w", s, ErrBadCellKey, ErrConfiguration)
	}
	if k.Col, err = atoi(col); err != nil {
		return CellKey{}, fmt.Errorf("ParseCellKey(%q): col: %w: %w", s, ErrBadCellKey, ErrConfiguration)
	}
	return k, nil
}

// atoi accepts plain non-negative decimals only (no sign, no spaces, no
// leading zeros).
func atoi(s string) (int, error) {
	if s == "" || s[0] == '+' || s[0] == '-' || (len(s) > 1 && s[0] == '0') {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// Direction is one of the four diagonal steps between the two lattices.
type Direction int

const (
	UL Direction = iota // upper left
	UR                  // upper right
	LL                  // lower left
	LR                  // lower right
)

var directionNames = [...]string{"UL", "UR", "LL", "LR"}

// String returns the direction mnemonic.
func (d Direction) String() string {
	if d < UL || d > LR {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Ring names a closed four-cell loop reachable from a cell.
type Ring string

// Rings traced from vertical cells (left, right) and horizontal cells (upper, lower).
const (
	LeftRing  Ring = "left_ring"
	RightRing Ring = "right_ring"
	UpperRing Ring = "upper_ring"
	LowerRing Ring = "lower_ring"
)

// ringPaths lists, per orientation, the rings and their direction sequences.
var ringPaths = map[Orientation][]struct {
	ring Ring
	dirs []Direction
}{
	Vertical: {
		{LeftRing, []Direction{UL, LL, LR}},
		{RightRing, []Direction{UR, LR, LL}},
	},
	Horizontal: {
		{UpperRing, []Direction{UL, UR, LR}},
		{LowerRing, []Direction{LR, LL, UL}},
	},
}
