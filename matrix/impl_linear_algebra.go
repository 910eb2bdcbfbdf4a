// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication and transpose.
// All functions perform strict fail-fast validation and return clear errors on
// shape mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures with opErrorf.
//   - Fast paths run on the flat buffer when every operand is a *Dense; otherwise
//     a generic i→j fallback reads through At.

package matrix

import "fmt"

// zeroSum is the initial sum value for dot products and similar accumulations.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opDeterminant   = "Determinant"
	opDeterminantLU = "DeterminantLU"
	opPrint         = "Print"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (tagged with opTag and msgAddSub).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - sign*b[i] is exact for sign = ±1, so Sub yields a[i]-b[i] bit for bit.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, msgAddSub, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseZeroOK(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (invalid operand or shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (invalid operand or shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→j→k over the flat buffers;
//     otherwise the same order through At.
//
// Behavior highlights:
//   - Each entry is the dot product of row i of A and column j of B, accumulated
//     from k=0 upward starting at zeroSum. No zero-skipping, so 0·Inf yields NaN.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (invalid operand or inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, msgMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseZeroOK(aRows, bCols)
	var (
		i, j, k int
		av, bv  float64
		sum     float64
		rowOffA int
		rowOffR int
		err     error
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	fastPath := okA && okB

	for i = 0; i < aRows; i++ {
		rowOffA = i * aCols
		rowOffR = i * bCols
		for j = 0; j < bCols; j++ {
			sum = zeroSum
			for k = 0; k < aCols; k++ {
				if fastPath {
					// da.data layout: i*aCols + k; db.data layout: k*bCols + j
					sum += da.data[rowOffA+k] * db.data[k*bCols+j]
					continue
				}
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += av * bv
			}
			res.data[rowOffR+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateValid(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (tagged with msgTranspose).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateValid(m); err != nil {
		return nil, opErrorf(opTranspose, msgTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseZeroOK(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
