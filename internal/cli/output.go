// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/matrixio"
	"github.com/katalvlaran/numkit/matrix"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable draws a bordered table, matching matrix.Fprint.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())

	return err
}

func writeYAML(w io.Writer, v any) error {
	if err := yaml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}

// writeValue prints a scalar result: the bare number for table output,
// a one-key mapping for yaml.
func writeValue(w io.Writer, output, key string, v float64) error {
	if output == config.OutputYAML {
		return writeYAML(w, map[string]float64{key: v})
	}
	_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))

	return err
}

func writeMatrix(w io.Writer, output string, m *matrix.Dense) error {
	if output == config.OutputYAML {
		return matrixio.Encode(w, m)
	}

	return matrix.Fprint(w, m)
}
