// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly tagged with the operation
// name via %w) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape validity -> operand compatibility -> numeric policy.

var (
	// ErrShapeMismatch is returned when an operand is not a valid matrix
	// (no rows, ragged rows) or when operand shapes are incompatible
	// (Add/Sub different shapes, Mul where a.Cols != b.Rows).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (FromRows with validation on).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// Per-operation failure texts. Each operation reports its own message next to
// the sentinel so callers can tell which precondition failed.
const (
	msgAddSub      = "matrix dimensions must be equal and valid"
	msgMul         = "columns of A must equal rows of B and both matrices must be valid"
	msgTranspose   = "input must be a valid matrix"
	msgDeterminant = "matrix must be square to compute its determinant"
	msgPrint       = "input is not a valid matrix"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// opErrorf wraps err with an operation tag and that operation's failure text:
// "<tag>: <sentinel>: <msg>".
func opErrorf(tag, msg string, err error) error {
	return fmt.Errorf("%s: %w: %s", tag, err, msg)
}
