// SPDX-License-Identifier: MIT
package cli

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/matrix"
)

const (
	docA = "- [1, 2]\n- [3, 4]\n"
	docB = "[[5, 6], [7, 8]]"
)

func decodeRows(t *testing.T, out string) [][]float64 {
	t.Helper()
	var rows [][]float64
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows), out)

	return rows
}

func TestMatrix_BinaryOps(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)
	b := writeFile(t, "b.json", docB)

	cases := map[string][][]float64{
		"add": {{6, 8}, {10, 12}},
		"sub": {{-4, -4}, {-4, -4}},
		"mul": {{19, 22}, {43, 50}},
	}
	for op, want := range cases {
		out, _, err := execute(t, nil, "--output", "yaml", "matrix", op, a, b)
		require.NoError(t, err, op)
		assert.Equal(t, want, decodeRows(t, out), op)
	}
}

func TestMatrix_TableOutput(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)
	out, _, err := execute(t, nil, "matrix", "transpose", a)
	require.NoError(t, err)
	assert.Contains(t, out, "(index)")

	out, _, err = execute(t, nil, "matrix", "print", a)
	require.NoError(t, err)
	for _, v := range []string{"(index)", "1", "2", "3", "4"} {
		assert.Contains(t, out, v)
	}
}

func TestMatrix_ShapeErrors(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)
	row := writeFile(t, "row.yaml", "- [1, 2, 3]\n")

	_, _, err := execute(t, nil, "matrix", "add", a, row)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "matrix dimensions must be equal and valid")

	_, _, err = execute(t, nil, "matrix", "mul", a, row)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, _, err = execute(t, nil, "matrix", "det", row)
	assert.ErrorIs(t, err, matrix.ErrNotSquare)

	ragged := writeFile(t, "ragged.yaml", "- [1, 2]\n- [3]\n")
	_, _, err = execute(t, nil, "matrix", "transpose", ragged)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	_, _, err = execute(t, nil, "matrix", "add", a)
	assert.Error(t, err, "two operands required")
}

func TestMatrix_Det(t *testing.T) {
	path := writeFile(t, "m.yaml", "- [2, -3, 1]\n- [2, 0, -1]\n- [1, 4, 5]\n")

	out, _, err := execute(t, nil, "matrix", "det", path)
	require.NoError(t, err)
	assert.Equal(t, "49\n", out)

	out, _, err = execute(t, nil, "matrix", "det", "--lu", path)
	require.NoError(t, err)
	assert.InDelta(t, 49, parseOutput(t, out), 1e-9)

	out, _, err = execute(t, nil, "--output", "yaml", "matrix", "det", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "determinant: 49"), out)
}

func TestMatrix_DetOrderGuard(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDetOrder = 2
	path := writeFile(t, "m.yaml", "- [1, 0, 0]\n- [0, 1, 0]\n- [0, 0, 1]\n")

	_, stderr, err := execute(t, cfg, "matrix", "det", path)
	assert.ErrorIs(t, err, ErrDetTooLarge)
	assert.Contains(t, stderr, "determinant refused")

	out, _, err := execute(t, cfg, "matrix", "det", "--lu", path)
	require.NoError(t, err)
	assert.InDelta(t, 1, parseOutput(t, out), 1e-12)
}

func TestMatrix_Check(t *testing.T) {
	square := writeFile(t, "sq.yaml", docA)
	ragged := writeFile(t, "ragged.yaml", "- [1, 2]\n- [3]\n")
	empty := writeFile(t, "empty.yaml", "- []\n")

	cases := []struct {
		path string
		want checkReport
	}{
		{square, checkReport{Valid: true, Square: true, Rows: 2, Cols: 2}},
		{ragged, checkReport{Valid: false, Rows: 2}},
		{empty, checkReport{Valid: true, Rows: 1, Cols: 0}},
	}
	for _, tc := range cases {
		out, _, err := execute(t, nil, "--output", "yaml", "matrix", "check", tc.path)
		require.NoError(t, err)
		var got checkReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, tc.want, got, tc.path)
	}

	out, _, err := execute(t, nil, "matrix", "check", square)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "true")
}

func TestMatrix_TransposeEmptyRow(t *testing.T) {
	path := writeFile(t, "empty.yaml", "[[]]")
	out, _, err := execute(t, nil, "matrix", "transpose", path)
	require.NoError(t, err)
	assert.Empty(t, decodeRows(t, out))
}
