// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose reports whether a and b have the same shape and every pair of
// entries satisfies |a-b| ≤ atol + rtol*|b|. Negative tolerances are taken by
// absolute value; NaN entries never compare close.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1). Stops at the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	near := func(av, bv float64) bool {
		// written so that NaN on either side fails
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
