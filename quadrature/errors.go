// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella for every argument rejection in this package.
// All sentinels below wrap it, so errors.Is(err, ErrInvalidArgument) holds for each.
var ErrInvalidArgument = errors.New("quadrature: invalid argument")

var (
	// ErrNilFunc indicates that the integrand is nil.
	ErrNilFunc = fmt.Errorf("%w: integrand is nil", ErrInvalidArgument)

	// ErrNonFiniteBound indicates that a or b is NaN or ±Inf.
	ErrNonFiniteBound = fmt.Errorf("%w: bounds must be finite real numbers", ErrInvalidArgument)

	// ErrNonPositiveSteps indicates n <= 0.
	ErrNonPositiveSteps = fmt.Errorf("%w: n must be a positive integer", ErrInvalidArgument)

	// ErrOddSteps indicates an odd n passed to Simpson.
	ErrOddSteps = fmt.Errorf("%w: n must be even", ErrInvalidArgument)

	// ErrGaussSteps indicates n outside {2, 3} passed to Gaussian.
	ErrGaussSteps = fmt.Errorf("%w: n must be 2 or 3", ErrInvalidArgument)

	// ErrUnknownRule indicates an unrecognised rule name or Rule value.
	ErrUnknownRule = fmt.Errorf("%w: unknown rule", ErrInvalidArgument)
)

// quadratureErrorf tags err with the rule name, keeping the sentinel reachable via %w.
func quadratureErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
