// Package matrix offers dense real-valued matrix algebra.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major matrix built only through validity-checked
//     constructors (FromRows, NewDense, NewZeros, NewIdentity).
//   - Element-wise Add and Sub, the standard product Mul and Transpose. Every
//     operation returns a fresh *Dense and never mutates its operands.
//   - Determinant by recursive Laplace (cofactor) expansion along the first row,
//     O(k!) for a k×k input, and DeterminantLU, a separate O(k³) pivoted-LU variant.
//   - IsMatrix, the shape predicate for raw [][]float64 values, and *Data facades
//     (AddData, MulData, ...) that guard raw input with it.
//   - Print/Fprint, a console-table rendering for human inspection.
//
// Errors are package sentinels (ErrShapeMismatch, ErrNotSquare, ...) tagged with
// the operation name; match them with errors.Is.
//
// Dense values are never modified after construction, so they can be shared
// between goroutines without locking.
package matrix
