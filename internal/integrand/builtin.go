// SPDX-License-Identifier: MIT

// Package integrand resolves integrands for the numkit CLI: a table of named
// builtin functions and compiled JavaScript expressions in x.
package integrand

import (
	"math"
	"sort"

	"github.com/katalvlaran/numkit/quadrature"
)

var builtins = map[string]quadrature.Func{
	"identity": func(x float64) float64 { return x },
	"square":   func(x float64) float64 { return x * x },
	"cube":     func(x float64) float64 { return x * x * x },
	"sqrt":     math.Sqrt,
	"exp":      math.Exp,
	"log":      math.Log,
	"sin":      math.Sin,
	"cos":      math.Cos,
	"tan":      math.Tan,
	"recip":    func(x float64) float64 { return 1 / x },
	"gaussian": func(x float64) float64 { return math.Exp(-x * x) },
}

// Lookup returns the builtin integrand registered under name.
func Lookup(name string) (quadrature.Func, bool) {
	f, ok := builtins[name]

	return f, ok
}

// Names lists the builtin integrands in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for name := range builtins {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
