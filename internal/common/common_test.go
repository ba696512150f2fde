package common_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"randomwalk-sim/internal/common"
)

func TestVectorAdd(t *testing.T) {
	sum, err := common.Vector{1, 2}.Add(common.Vector{3, -4})
	require.NoError(t, err)
	require.Equal(t, common.Vector{4, -2}, sum)

	_, err = common.Vector{1, 2}.Add(common.Vector{1})
	require.Error(t, err)
}

func TestVectorDistance(t *testing.T) {
	d, err := common.Vector{0, 0}.Distance(common.Vector{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	sq, err := common.Vector{1, 1}.SquaredDistance(common.Vector{2, 2})
	require.NoError(t, err)
	require.Equal(t, 2.0, sq)

	_, err = common.Vector{1}.SquaredDistance(common.Vector{1, 2})
	require.Error(t, err)
}

func TestVectorNorm(t *testing.T) {
	v := common.Vector{3, 4}
	require.Equal(t, 25.0, v.NormSq())
	require.Equal(t, 5.0, v.Norm())
}

func TestVectorCloneIsIndependent(t *testing.T) {
	v := common.Vector{1, 2}
	clone := v.Clone()
	clone[0] = 99
	require.Equal(t, common.Vector{1, 2}, v)
}

func TestValidateBounds(t *testing.T) {
	require.NoError(t, common.ValidateBounds([]float64{-1, 1, 0, 2}, 2))

	cases := []struct {
		name   string
		bounds []float64
	}{
		{"too short", []float64{-1, 1}},
		{"too long", []float64{-1, 1, -1, 1, -1, 1}},
		{"min equals max", []float64{0, 0, -1, 1}},
		{"min above max", []float64{2, 1, -1, 1}},
		{"nan bound", []float64{math.NaN(), 1, -1, 1}},
		{"infinite bound", []float64{-1, math.Inf(1), -1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := common.ValidateBounds(tc.bounds, 2)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}
