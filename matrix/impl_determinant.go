// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Determinant by recursive Laplace (cofactor) expansion along the first row.
//   - DeterminantLU: a separate, distinct O(k³) operation for callers that need speed.
//
// Determinism:
//   - Expansion visits columns 0..k-1 in order and recurses depth-first, so the
//     floating-point summation order is fixed for a given input.
//
// Complexity:
//   - Determinant: O(k!) time, O(k²) live memory along one recursion path.
//     The cost is intentional; do not swap in a factorization here.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Determinant computes det(m) by cofactor expansion along row 0:
//
//	det(A) = Σ_{i=0}^{k-1} (−1)^i · A[0][i] · det(minor(A, 0, i))
//
// with base cases 1×1 → A[0][0] and 2×2 → ad − bc.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (tagged with msgDeterminant).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opDeterminant, msgDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := cofactorDeterminant(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorDeterminant is the recursive kernel; d is square and non-empty.
func cofactorDeterminant(d *Dense) (float64, error) {
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	var det, sub, cofactor float64
	for i := 0; i < d.c; i++ {
		mnr, err := minor(d, 0, i)
		if err != nil {
			return 0, err
		}
		if sub, err = cofactorDeterminant(mnr); err != nil {
			return 0, err
		}
		cofactor = d.data[i] * sub
		if i%2 == 0 {
			det += cofactor
		} else {
			det -= cofactor
		}
	}

	return det, nil
}

// minor returns a copy of d without row r and column c.
// Errors: ErrOutOfRange when r or c is outside d.
// Complexity: O(r*c).
func minor(d *Dense, r, c int) (*Dense, error) {
	if r < 0 || r >= d.r || c < 0 || c >= d.c {
		return nil, denseErrorf("minor", r, c, ErrOutOfRange)
	}

	return d.Induced(skipIndex(d.r, r), skipIndex(d.c, c))
}

// skipIndex returns 0..n-1 without skip.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// DeterminantLU computes det(m) from an LU factorization with partial pivoting
// (gonum mat.Det). It is O(k³) and may differ from Determinant in the last bits.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (tagged with msgDeterminant).
func DeterminantLU(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, opErrorf(opDeterminantLU, msgDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminantLU, err)
	}
	// mat.NewDense adopts its slice; hand it a copy so d stays untouched.
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.Det(mat.NewDense(d.r, d.c, buf)), nil
}
