// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"strings"
)

// Func is a scalar integrand. It is assumed to be pure; the rules may call it
// any number of times, at any sampled point, in a fixed deterministic order.
type Func func(x float64) float64

// Rule selects one of the quadrature rules for Integrate.
type Rule int

const (
	// RuleTrapezoidal selects Trapezoidal.
	RuleTrapezoidal Rule = iota
	// RuleSimpson selects Simpson (n must be even).
	RuleSimpson
	// RuleMidpoint selects Midpoint.
	RuleMidpoint
	// RuleGaussian selects Gaussian (n must be 2 or 3).
	RuleGaussian
	// RuleRectangular selects Rectangular (left endpoints).
	RuleRectangular
)

// Operation name constants for error tagging and Rule.String.
const (
	opTrapezoidal = "Trapezoidal"
	opSimpson     = "Simpson"
	opMidpoint    = "Midpoint"
	opGaussian    = "Gaussian"
	opRectangular = "Rectangular"
	opIntegrate   = "Integrate"
	opParseRule   = "ParseRule"
)

var ruleNames = [...]string{
	RuleTrapezoidal: "trapezoidal",
	RuleSimpson:     "simpson",
	RuleMidpoint:    "midpoint",
	RuleGaussian:    "gaussian",
	RuleRectangular: "rectangular",
}

// ruleAliases maps accepted spellings (lower-case) onto rules.
var ruleAliases = map[string]Rule{
	"trapezoidal":    RuleTrapezoidal,
	"trapezoid":      RuleTrapezoidal,
	"trapz":          RuleTrapezoidal,
	"simpson":        RuleSimpson,
	"simpsons":       RuleSimpson,
	"midpoint":       RuleMidpoint,
	"mid":            RuleMidpoint,
	"gaussian":       RuleGaussian,
	"gauss":          RuleGaussian,
	"gauss-legendre": RuleGaussian,
	"rectangular":    RuleRectangular,
	"rect":           RuleRectangular,
	"left":           RuleRectangular,
}

// String returns the canonical lower-case rule name.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// Rules returns every rule in declaration order.
func Rules() []Rule {
	return []Rule{RuleTrapezoidal, RuleSimpson, RuleMidpoint, RuleGaussian, RuleRectangular}
}

// ParseRule resolves a rule by canonical name or alias, ignoring case and
// surrounding whitespace. Unknown names yield ErrUnknownRule.
func ParseRule(name string) (Rule, error) {
	r, ok := ruleAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, quadratureErrorf(opParseRule, fmt.Errorf("%q: %w", name, ErrUnknownRule))
	}

	return r, nil
}
