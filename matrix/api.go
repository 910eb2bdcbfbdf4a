// SPDX-License-Identifier: MIT
// Package matrix: public constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points next to NewDense/FromRows.
//   - Each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal entries
// (NaN never equals NaN). Nil or unreadable operands are never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil || ValidateSameShape(a, b) != nil {
		return false
	}
	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
