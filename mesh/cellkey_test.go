// SPDX-License-Identifier: MIT
package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/siroap/mesh"
)

func TestParseCellKey(t *testing.T) {
	ok := []struct {
		in   string
		want mesh.CellKey
	}{
		{"V0_0", mesh.V(0, 0)},
		{"H3_12", mesh.H(3, 12)},
		{"V10_2", mesh.V(10, 2)},
	}
	for _, tc := range ok {
		k, err := mesh.ParseCellKey(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, k)
		assert.Equal(t, tc.in, k.String())
	}

	for _, in := range []string{"", "V0", "X0_0", "V0-0", "Va_1", "V1_b", "V-1_0", "H1_+2", "V_1", "V1_", "V00_0", "H1_01", "V007_3"} {
		_, err := mesh.ParseCellKey(in)
		assert.ErrorIs(t, err, mesh.ErrBadCellKey, in)
		assert.ErrorIs(t, err, mesh.ErrConfiguration, in)
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "UL", mesh.UL.String())
	assert.Equal(t, "LR", mesh.LR.String())
	assert.Equal(t, "Direction(7)", mesh.Direction(7).String())
	assert.Equal(t, "H", mesh.Horizontal.String())
}
