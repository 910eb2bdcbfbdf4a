// SPDX-License-Identifier: MIT

package quadrature

import "fmt"

// Integrate dispatches to the rule selected by r.
// Rule-specific errors are returned unchanged; an out-of-range r yields ErrUnknownRule.
func Integrate(r Rule, f Func, a, b float64, n int) (float64, error) {
	switch r {
	case RuleTrapezoidal:
		return Trapezoidal(f, a, b, n)
	case RuleSimpson:
		return Simpson(f, a, b, n)
	case RuleMidpoint:
		return Midpoint(f, a, b, n)
	case RuleGaussian:
		return Gaussian(f, a, b, n)
	case RuleRectangular:
		return Rectangular(f, a, b, n)
	default:
		return 0, quadratureErrorf(opIntegrate, fmt.Errorf("%v: %w", r, ErrUnknownRule))
	}
}

// StepsHint describes the accepted values of n for r, for help texts.
func StepsHint(r Rule) string {
	switch r {
	case RuleSimpson:
		return "n >= 1, even"
	case RuleGaussian:
		return "n in {2, 3}"
	case RuleTrapezoidal, RuleMidpoint, RuleRectangular:
		return "n >= 1"
	default:
		return "unknown"
	}
}
