// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Facades over raw [][]float64 values for callers that do not hold a *Dense.
//   - Every facade guards its input with IsMatrix (isSquareMatrix for the
//     determinant) before converting, then delegates to the Dense kernel.
//
// Notes:
//   - Conversion uses WithNoValidateNaNInf: a raw value is rejected exactly when
//     the shape predicate rejects it, never because of its numbers.
//   - Results are freshly allocated; inputs are never written.

package matrix

import "io"

// rawOpts is the conversion policy shared by all facades.
var rawOpts = []Option{WithNoValidateNaNInf()}

// AddData returns a + b for raw matrices of equal shape.
// Errors: ErrShapeMismatch ("matrix dimensions must be equal and valid").
func AddData(a, b [][]float64) ([][]float64, error) {
	return addSubData(a, b, +1, opAdd)
}

// SubData returns a − b for raw matrices of equal shape.
// Errors: ErrShapeMismatch ("matrix dimensions must be equal and valid").
func SubData(a, b [][]float64) ([][]float64, error) {
	return addSubData(a, b, -1, opSub)
}

func addSubData(a, b [][]float64, sign float64, opTag string) ([][]float64, error) {
	if !IsMatrix(a) || !IsMatrix(b) || len(a) != len(b) || len(a[0]) != len(b[0]) {
		return nil, opErrorf(opTag, msgAddSub, ErrShapeMismatch)
	}
	da, db, err := fromRawPair(a, b, opTag, msgAddSub)
	if err != nil {
		return nil, err
	}
	res, err := addSub(da, db, sign, opTag)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// MulData returns the product a × b of raw matrices with len(a[0]) == len(b).
// Errors: ErrShapeMismatch ("columns of A must equal rows of B ...").
func MulData(a, b [][]float64) ([][]float64, error) {
	if !IsMatrix(a) || !IsMatrix(b) || len(a[0]) != len(b) {
		return nil, opErrorf(opMul, msgMul, ErrShapeMismatch)
	}
	da, db, err := fromRawPair(a, b, opMul, msgMul)
	if err != nil {
		return nil, err
	}
	res, err := Mul(da, db)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// TransposeData returns the transpose of a raw matrix.
// A single empty row transposes to an empty (zero-row) result.
// Errors: ErrShapeMismatch ("input must be a valid matrix").
func TransposeData(a [][]float64) ([][]float64, error) {
	if !IsMatrix(a) {
		return nil, opErrorf(opTranspose, msgTranspose, ErrShapeMismatch)
	}
	da, err := FromRows(a, rawOpts...)
	if err != nil {
		return nil, opErrorf(opTranspose, msgTranspose, err)
	}
	res, err := Transpose(da)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// DeterminantData returns the cofactor-expansion determinant of a raw matrix.
// Errors: ErrNotSquare ("matrix must be square ...") for empty, ragged or
// non-square input.
func DeterminantData(a [][]float64) (float64, error) {
	if !isSquareMatrix(a) {
		return 0, opErrorf(opDeterminant, msgDeterminant, ErrNotSquare)
	}
	da, err := FromRows(a, rawOpts...)
	if err != nil {
		return 0, opErrorf(opDeterminant, msgDeterminant, err)
	}

	return Determinant(da)
}

// FprintData renders a raw matrix to w like Fprint.
// Errors: ErrShapeMismatch ("input is not a valid matrix").
func FprintData(w io.Writer, a [][]float64) error {
	if !IsMatrix(a) {
		return opErrorf(opPrint, msgPrint, ErrShapeMismatch)
	}
	da, err := FromRows(a, rawOpts...)
	if err != nil {
		return opErrorf(opPrint, msgPrint, err)
	}

	return Fprint(w, da)
}

// PrintData renders a raw matrix to standard output like Print.
func PrintData(a [][]float64) error {
	if !IsMatrix(a) {
		return opErrorf(opPrint, msgPrint, ErrShapeMismatch)
	}
	da, err := FromRows(a, rawOpts...)
	if err != nil {
		return opErrorf(opPrint, msgPrint, err)
	}

	return Print(da)
}

func fromRawPair(a, b [][]float64, opTag, msg string) (*Dense, *Dense, error) {
	da, err := FromRows(a, rawOpts...)
	if err != nil {
		return nil, nil, opErrorf(opTag, msg, err)
	}
	db, err := FromRows(b, rawOpts...)
	if err != nil {
		return nil, nil, opErrorf(opTag, msg, err)
	}

	return da, db, nil
}
