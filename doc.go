// Package numkit is a small numerical toolkit in two independent parts.
//
// What is in it?
//
//	quadrature/: definite integrals of a scalar function over [a, b] with the
//	             trapezoidal, Simpson, midpoint, 3-node Gauss-Legendre and left
//	             rectangular rules
//	matrix/    : an immutable dense matrix with Add, Sub, Mul, Transpose, a
//	             cofactor-expansion Determinant, a pivoted-LU DeterminantLU and
//	             a console-table Print
//
// Both libraries are synchronous, allocate their results and never mutate their
// inputs. Invalid input is reported through package sentinel errors matched
// with errors.Is; nothing panics on user data.
//
// The numkit command (cmd/numkit) drives both from the command line:
//
//	numkit integrate --rule simpson --fn square --a 0 --b 1 --n 10
//	numkit integrate --rule gauss --n 3 --expr "Math.exp(-x*x)" --a=-1 --b 1
//	numkit matrix mul a.yaml b.yaml
//	numkit matrix det --lu big.yaml
//
// Matrix files are YAML (or JSON) lists of rows. Defaults come from NUMKIT_*
// environment variables; see internal/config.
package numkit
