// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic At fallback in the code under test.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomRows returns an r×c slice filled deterministically from seed with
// values in [-5, 5).
func RandomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*10 - 5
		}
	}

	return out
}

// CloneRows deep-copies raw rows so tests can assert inputs stay untouched.
func CloneRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if row != nil {
			out[i] = append([]float64{}, row...)
		}
	}

	return out
}
