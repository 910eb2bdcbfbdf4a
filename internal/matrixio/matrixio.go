// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as YAML documents holding a list
// of rows. JSON arrays are accepted too, being YAML flow sequences.
//
//	- [1, 2]
//	- [3, 4]
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/numkit/matrix"
)

// ErrEmpty is returned when a document holds no rows at all.
var ErrEmpty = errors.New("matrixio: empty document")

// DecodeRows reads one YAML document of rows from r without checking its shape.
func DecodeRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}
	if rows == nil {
		return nil, ErrEmpty
	}

	return rows, nil
}

// Decode reads rows with DecodeRows and builds a *matrix.Dense.
// opts are passed to matrix.FromRows, so NaN/Inf are rejected unless relaxed.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	rows, err := DecodeRows(r)
	if err != nil {
		return nil, err
	}
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return m, nil
}

// LoadRows opens path and decodes it with DecodeRows.
func LoadRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	rows, err := DecodeRows(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return rows, nil
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// Encode writes m to w as a YAML block sequence of rows.
func Encode(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateValid(m); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}
	rows, err := readRows(m)
	if err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}
	if err = yaml.NewEncoder(w).Encode(rows); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}

	return nil
}

// readRows copies m out row by row; *matrix.Dense hands out its own copy.
func readRows(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}
