// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func zeros(t *testing.T, r, c int) matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)

	return m
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense[float64]
	tests := []struct {
		name    string
		a, b    matrix.Matrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second typed nil", zeros(t, 2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix[float64]
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"0x0", zeros(t, 0, 0), nil},
		{"3x3", zeros(t, 3, 3), nil},
		{"2x3", zeros(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(zeros(t, 2, 3), zeros(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, zeros(t, 2, 3)), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	s := MustDense(t, [][]float64{{1, 2}, {2 + 1e-12, 3}})
	require.NoError(t, matrix.ValidateSymmetric[float64](s, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric[float64](hide{s}, -1e-9), "negative tol taken by magnitude")
	require.ErrorIs(t, matrix.ValidateSymmetric[float64](s, 1e-14), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(zeros(t, 2, 3), 1.0), matrix.ErrDimensionMismatch)
}
