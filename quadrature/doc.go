// SPDX-License-Identifier: MIT

// Package quadrature approximates definite integrals of scalar functions.
//
// 🚀 What is quadrature?
//
//	A quadrature rule replaces ∫ₐᵇ f(x) dx with a weighted sum of samples of f.
//	Every rule here splits [a, b] into n equal subintervals of width
//	h = (b − a) / n and differs only in where it samples and how it weighs:
//	  • Trapezoidal: endpoints ½, interior nodes 1
//	  • Simpson    : endpoints 1, odd nodes 4, even nodes 2, scaled by h/3 (n even)
//	  • Midpoint   : centre of every subinterval
//	  • Gaussian   : fixed 3-node Gauss-Legendre rule on each subinterval (n ∈ {2,3})
//	  • Rectangular: left endpoint of every subinterval
//
// ✨ Contract:
//   - Arguments are validated before f is evaluated even once.
//   - Failures wrap ErrInvalidArgument; match them with errors.Is.
//   - a == b yields 0 and b < a yields the sign-flipped integral; neither is an error.
//   - No state is shared between calls, so every function is safe for concurrent use
//     as long as f itself is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numkit/quadrature"
//
//	sq := func(x float64) float64 { return x * x }
//	v, err := quadrature.Simpson(sq, 0, 1, 100) // ≈ 1/3
//
//	// or pick the rule at runtime
//	r, _ := quadrature.ParseRule("gauss")
//	v, err = quadrature.Integrate(r, sq, 0, 1, 3)
//
// Complexity:
//
//	Every rule performs O(n) evaluations of f (Gaussian: exactly 3n) and O(1) memory.
package quadrature
