// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
// Compiled only with the package tests; exposes unexported helpers to matrix_test
// without widening the production API.

var (
	// Minor exposes minor for white-box tests.
	Minor = minor
	// IsSquareMatrix exposes isSquareMatrix for white-box tests.
	IsSquareMatrix = isSquareMatrix
)
