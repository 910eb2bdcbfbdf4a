// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// indexHeader labels the row-index column, console.table style.
const indexHeader = "(index)"

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Fprint renders m as a bordered table to w: a header row "(index) 0 1 …"
// followed by one line per row, prefixed with its index. Values use the
// shortest %g form. m is only read.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (tagged with msgPrint); write errors from w.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateValid(m); err != nil {
		return opErrorf(opPrint, msgPrint, err)
	}
	d, err := toDense(m)
	if err != nil {
		return matrixErrorf(opPrint, err)
	}

	headers := make([]string, 0, d.c+1)
	headers = append(headers, indexHeader)
	for j := 0; j < d.c; j++ {
		headers = append(headers, strconv.Itoa(j))
	}
	rows := make([][]string, d.r)
	for i := range rows {
		rows[i] = make([]string, 1, d.c+1)
		rows[i][0] = strconv.Itoa(i)
	}
	d.Do(func(i, _ int, v float64) bool {
		rows[i] = append(rows[i], formatValue(v))
		return true
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)

	if _, err = fmt.Fprintln(w, t.String()); err != nil {
		return matrixErrorf(opPrint, err)
	}

	return nil
}

// Print writes the Fprint rendering of m to standard output.
func Print(m Matrix) error {
	return Fprint(os.Stdout, m)
}
