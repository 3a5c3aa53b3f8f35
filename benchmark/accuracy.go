// SPDX-License-Identifier: MIT

package benchmark

import (
	"errors"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// accuracyTol is the absolute tolerance for scalar known values.
const accuracyTol = 1e-10

// Check is one known-value accuracy test.
type Check struct {
	Name   string
	Passed bool
	Err    error // set when the operation itself failed
}

type accuracyCase struct {
	name string
	run  func() (bool, error)
}

var accuracyCases = []accuracyCase{
	{"Matrix multiplication", checkMul},
	{"Determinant", checkDeterminant},
	{"Dot product", checkDot},
	{"Cross product", checkCross},
	{"Matrix inverse", checkInverse},
	{"Eigenvalues 2x2", checkEigen2},
	{"Singular inverse rejected", checkSingular},
	{"Division by zero rejected", checkDivideByZero},
}

// AccuracyChecks runs every known-value check.
func AccuracyChecks() []Check {
	out := make([]Check, 0, len(accuracyCases))
	for _, c := range accuracyCases {
		ok, err := c.run()
		out = append(out, Check{Name: c.name, Passed: ok && err == nil, Err: err})
	}

	return out
}

func checkMul() (bool, error) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return false, err
	}
	b, err := matrix.FromRows([][]float64{{5, 6}, {7, 8}})
	if err != nil {
		return false, err
	}
	want, err := matrix.FromRows([][]float64{{19, 22}, {43, 50}})
	if err != nil {
		return false, err
	}
	got, err := a.Mul(b)
	if err != nil {
		return false, err
	}

	return matrix.Equal[float64](got, want), nil
}

func checkDeterminant() (bool, error) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		return false, err
	}
	det, err := matrix.Determinant[float64](a)
	if err != nil {
		return false, err
	}

	return math.Abs(det+2) < accuracyTol, nil
}

func checkDot() (bool, error) {
	d, err := vector.Of(1.0, 2.0, 3.0).Dot(vector.Of(4.0, 5.0, 6.0))
	if err != nil {
		return false, err
	}

	return math.Abs(d-32) < accuracyTol, nil
}

func checkCross() (bool, error) {
	c, err := vector.Of(1.0, 2.0, 3.0).Cross(vector.Of(4.0, 5.0, 6.0))
	if err != nil {
		return false, err
	}

	return c.Equal(vector.Of(-3.0, 6.0, -3.0)), nil
}

// checkInverse verifies A·A⁻¹ = I for the 3×3 identity with A[0][1] = 2.
func checkInverse() (bool, error) {
	a, err := matrix.Identity[float64](3)
	if err != nil {
		return false, err
	}
	if err = a.Set(0, 1, 2); err != nil {
		return false, err
	}
	inv, err := matrix.Inverse[float64](a)
	if err != nil {
		return false, err
	}
	prod, err := a.Mul(inv)
	if err != nil {
		return false, err
	}
	id, err := matrix.IdentityLike[float64](a)
	if err != nil {
		return false, err
	}

	return matrix.Equal[float64](prod, id), nil
}

func checkEigen2() (bool, error) {
	a, err := matrix.FromRows([][]float64{{2, 0}, {0, 3}})
	if err != nil {
		return false, err
	}
	vals, err := matrix.Eigenvalues[float64](a)
	if err != nil {
		return false, err
	}
	want := []numeric.Complex[float64]{numeric.RealValue(3.0), numeric.RealValue(2.0)}
	if len(vals) != len(want) {
		return false, nil
	}
	for i := range want {
		if math.Abs(vals[i].Real-want[i].Real) > accuracyTol || vals[i].Imag != 0 {
			return false, nil
		}
	}

	return true, nil
}

func checkSingular() (bool, error) {
	a, err := matrix.FromRows([][]float64{{1, 1}, {1, 1}})
	if err != nil {
		return false, err
	}
	_, err = matrix.Inverse[float64](a)

	return errors.Is(err, matrix.ErrSingular), nil
}

func checkDivideByZero() (bool, error) {
	_, err := vector.Of(1.0, 2.0).Div(numeric.Epsilon64 / 2)

	return errors.Is(err, vector.ErrDivideByZero), nil
}
