// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep kernels minimal by delegating nil/validity/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can tag them uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Valid → Shape).

package matrix

// IsMatrix reports whether rows is a valid matrix: at least one row, and every
// row has exactly the length of the first row. Zero-length rows are allowed as
// long as all rows agree.
// Complexity: O(r).
func IsMatrix(rows [][]float64) bool {
	if len(rows) == 0 {
		return false
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return false
		}
	}

	return true
}

// isSquareMatrix reports whether rows has at least one row and every row has
// as many entries as there are rows. Ragged input is therefore never square.
// Complexity: O(r).
func isSquareMatrix(rows [][]float64) bool {
	n := len(rows)
	if n == 0 {
		return false
	}
	for _, row := range rows {
		if len(row) != n {
			return false
		}
	}

	return true
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil { // typed nil behind the interface
		return ErrNilMatrix
	}

	return nil
}

// ValidateValid ensures m is non-nil, has at least one row and a
// non-negative column count. Zero columns are allowed ([][]float64{{}}).
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateValid(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 1 || m.Cols() < 0 {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateBinarySameShape: Composite: Valid(a) → Valid(b) → SameShape.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateValid(a); err != nil {
		return err
	}
	if err := ValidateValid(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible: Composite: Valid(a) → Valid(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateValid(a); err != nil {
		return err
	}
	if err := ValidateValid(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSquare checks that m is a valid matrix with Rows == Cols.
// Errors: ErrNilMatrix if nil, ErrNotSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 1 || m.Rows() != m.Cols() {
		return ErrNotSquare
	}

	return nil
}
