// SPDX-License-Identifier: MIT
// Package: quadrature
//
// Purpose:
//   - The five composite rules. All share h = (b − a) / n and accumulate a
//     weighted sum of samples in a fixed index order, scaled by h at the end.
//
// Determinism:
//   - f is evaluated in ascending node order; no reordering or pairwise summation,
//     so results are bit-for-bit reproducible for a given (f, a, b, n).

package quadrature

// Trapezoidal approximates ∫ₐᵇ f using the composite trapezoidal rule.
//
// Implementation:
//   - Stage 1: validate f, a, b and n >= 1.
//   - Stage 2: sum ½f(a) + ½f(b) + Σ_{i=1}^{n−1} f(a+ih).
//   - Stage 3: scale by h.
//
// Errors:
//   - ErrNilFunc, ErrNonFiniteBound, ErrNonPositiveSteps (all wrap ErrInvalidArgument).
//
// Complexity:
//   - n+1 evaluations of f, O(1) memory.
func Trapezoidal(f Func, a, b float64, n int) (float64, error) {
	if err := validateCommon(f, a, b); err != nil {
		return 0, quadratureErrorf(opTrapezoidal, err)
	}
	if err := validateSteps(n); err != nil {
		return 0, quadratureErrorf(opTrapezoidal, err)
	}

	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b)) // endpoints carry half weight
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}

// Simpson approximates ∫ₐᵇ f using the composite Simpson 1/3 rule.
//
// Implementation:
//   - Stage 1: validate f, a, b; n must be positive and even.
//   - Stage 2: sum f(a) + f(b) + Σ_{i=1}^{n−1} w_i f(a+ih), w_i = 4 for odd i, 2 for even i.
//   - Stage 3: scale by h/3.
//
// Errors:
//   - ErrNilFunc, ErrNonFiniteBound, ErrNonPositiveSteps, ErrOddSteps.
//
// Complexity:
//   - n+1 evaluations of f, O(1) memory.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if err := validateCommon(f, a, b); err != nil {
		return 0, quadratureErrorf(opSimpson, err)
	}
	if err := validateEvenSteps(n); err != nil {
		return 0, quadratureErrorf(opSimpson, err)
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	var w float64
	for i := 1; i < n; i++ {
		w = 4
		if i%2 == 0 {
			w = 2
		}
		sum += w * f(a+float64(i)*h)
	}

	return sum * h / 3, nil
}

// Midpoint approximates ∫ₐᵇ f by sampling the centre of each subinterval.
// Errors: ErrNilFunc, ErrNonFiniteBound, ErrNonPositiveSteps.
// Complexity: n evaluations of f.
func Midpoint(f Func, a, b float64, n int) (float64, error) {
	if err := validateCommon(f, a, b); err != nil {
		return 0, quadratureErrorf(opMidpoint, err)
	}
	if err := validateSteps(n); err != nil {
		return 0, quadratureErrorf(opMidpoint, err)
	}

	h := (b - a) / float64(n)
	first := a + h/2
	var sum float64
	for i := 0; i < n; i++ {
		sum += f(first + float64(i)*h)
	}

	return sum * h, nil
}

// Rectangular approximates ∫ₐᵇ f with left-endpoint rectangles.
// Errors: ErrNilFunc, ErrNonFiniteBound, ErrNonPositiveSteps.
// Complexity: n evaluations of f.
func Rectangular(f Func, a, b float64, n int) (float64, error) {
	if err := validateCommon(f, a, b); err != nil {
		return 0, quadratureErrorf(opRectangular, err)
	}
	if err := validateSteps(n); err != nil {
		return 0, quadratureErrorf(opRectangular, err)
	}

	h := (b - a) / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}
