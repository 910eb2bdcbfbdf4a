// SPDX-License-Identifier: MIT
// Package: quadrature
//
// Purpose:
//   - Single source of truth for argument checks shared by every rule.
//   - Return plain sentinels; the rule entry points tag them with their name.
//
// Note:
//   - Checks run in a fixed order: integrand → bounds → n.

package quadrature

import "math"

// validateCommon checks the integrand and the bounds.
// Complexity: O(1).
func validateCommon(f Func, a, b float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if isNonFinite(a) || isNonFinite(b) {
		return ErrNonFiniteBound
	}

	return nil
}

// validateSteps requires n >= 1.
func validateSteps(n int) error {
	if n <= 0 {
		return ErrNonPositiveSteps
	}

	return nil
}

// validateEvenSteps requires n >= 1 and n even.
func validateEvenSteps(n int) error {
	if err := validateSteps(n); err != nil {
		return err
	}
	if n%2 != 0 {
		return ErrOddSteps
	}

	return nil
}

// validateGaussSteps requires n ∈ {2, 3}.
func validateGaussSteps(n int) error {
	if n != 2 && n != 3 {
		return ErrGaussSteps
	}

	return nil
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
