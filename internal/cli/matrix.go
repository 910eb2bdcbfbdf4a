// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/matrixio"
	"github.com/katalvlaran/numkit/matrix"
)

// ErrDetTooLarge is returned by "matrix det" when the cofactor expansion
// would exceed the configured order.
var ErrDetTooLarge = errors.New("determinant order above NUMKIT_MAX_DET_ORDER, use --lu")

type binaryOp func(a, b matrix.Matrix) (*matrix.Dense, error)

// NewMatrixCommand creates the matrix command group. Every operand is a YAML
// or JSON file holding a list of rows.
func NewMatrixCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Dense matrix algebra on YAML/JSON files",
	}

	cmd.AddCommand(newBinaryCommand(root, "add", "Print A + B", matrix.Add))
	cmd.AddCommand(newBinaryCommand(root, "sub", "Print A - B", matrix.Sub))
	cmd.AddCommand(newBinaryCommand(root, "mul", "Print the product A × B", matrix.Mul))
	cmd.AddCommand(newTransposeCommand(root))
	cmd.AddCommand(newDetCommand(root))
	cmd.AddCommand(newPrintCommand(root))
	cmd.AddCommand(newCheckCommand(root))

	return cmd
}

func newBinaryCommand(root *RootOptions, name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <A> <B>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrixio.Load(args[0])
			if err != nil {
				return err
			}
			b, err := matrixio.Load(args[1])
			if err != nil {
				return err
			}
			root.Log.Debug("operands",
				zap.String("op", name),
				zap.Stringer("a", a),
				zap.Stringer("b", b),
			)
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return writeMatrix(cmd.OutOrStdout(), root.Output, res)
		},
	}
}

func newTransposeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <A>",
		Short: "Print the transpose of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrixio.Load(args[0])
			if err != nil {
				return err
			}
			res, err := matrix.Transpose(a)
			if err != nil {
				return err
			}
			if res.Rows() == 0 {
				// a single empty row has an empty transpose; Fprint needs rows
				root.Log.Warn("empty transpose", zap.String("file", args[0]))
				return writeYAML(cmd.OutOrStdout(), res.ToRows())
			}

			return writeMatrix(cmd.OutOrStdout(), root.Output, res)
		},
	}
}

func newDetCommand(root *RootOptions) *cobra.Command {
	var lu bool
	cmd := &cobra.Command{
		Use:   "det <A>",
		Short: "Print the determinant of a square matrix",
		Long: `Print the determinant of A by cofactor expansion along the first row.
The expansion costs O(n!) so orders above NUMKIT_MAX_DET_ORDER are refused;
--lu switches to an O(n³) LU factorization instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrixio.Load(args[0])
			if err != nil {
				return err
			}

			var det float64
			if lu {
				det, err = matrix.DeterminantLU(a)
			} else {
				if a.Rows() > root.Config.MaxDetOrder && a.Rows() == a.Cols() {
					root.Log.Warn("determinant refused",
						zap.Int("order", a.Rows()),
						zap.Int("max", root.Config.MaxDetOrder),
					)
					return fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrDetTooLarge)
				}
				det, err = matrix.Determinant(a)
			}
			if err != nil {
				return err
			}

			return writeValue(cmd.OutOrStdout(), root.Output, "determinant", det)
		},
	}
	cmd.Flags().BoolVar(&lu, "lu", false, "use LU factorization instead of cofactor expansion")

	return cmd
}

func newPrintCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "print <A>",
		Short: "Print A as an indexed table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrixio.Load(args[0], matrix.WithNoValidateNaNInf())
			if err != nil {
				return err
			}
			root.Log.Debug("print", zap.Int("rows", a.Rows()), zap.Int("cols", a.Cols()))

			return matrix.Fprint(cmd.OutOrStdout(), a)
		},
	}
}

type checkReport struct {
	Valid  bool `yaml:"valid"`
	Square bool `yaml:"square"`
	Rows   int  `yaml:"rows"`
	Cols   int  `yaml:"cols"`
}

func newCheckCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <A>",
		Short: "Report whether a file holds a valid (and square) matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := matrixio.LoadRows(args[0])
			if err != nil {
				return err
			}
			rep := checkReport{Valid: matrix.IsMatrix(rows), Rows: len(rows)}
			if rep.Valid {
				rep.Cols = len(rows[0])
				rep.Square = rep.Rows == rep.Cols
			}
			if root.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), rep)
			}

			return renderTable(cmd.OutOrStdout(), []string{"valid", "square", "rows", "cols"}, [][]string{{
				strconv.FormatBool(rep.Valid),
				strconv.FormatBool(rep.Square),
				strconv.Itoa(rep.Rows),
				strconv.Itoa(rep.Cols),
			}})
		},
	}
}
