// SPDX-License-Identifier: MIT

package quadrature

// Three-node Gauss-Legendre table on [−1, 1], rounded to 10 decimals.
// The table is fixed: n selects the number of subintervals, never the node count.
var (
	gaussNodes   = [3]float64{-0.7745966692, 0, 0.7745966692}
	gaussWeights = [3]float64{0.5555555556, 0.8888888889, 0.5555555556}
)

// Gaussian approximates ∫ₐᵇ f with a composite 3-node Gauss-Legendre rule.
//
// Implementation:
//   - Stage 1: validate f, a, b; n must be 2 or 3.
//   - Stage 2: split [a,b] into n subintervals of width h; on subinterval i map
//     each node xⱼ to a + h/2 + ih + (h/2)·xⱼ and accumulate wⱼ·f(x).
//   - Stage 3: scale by h/2 (the Jacobian of the [−1,1] → subinterval map).
//
// Behavior highlights:
//   - Exactly 3 evaluations per subinterval, 3n in total, in node-table order.
//   - Exact (up to the rounded table) for polynomials of degree ≤ 5.
//
// Errors:
//   - ErrNilFunc, ErrNonFiniteBound, ErrGaussSteps.
func Gaussian(f Func, a, b float64, n int) (float64, error) {
	if err := validateCommon(f, a, b); err != nil {
		return 0, quadratureErrorf(opGaussian, err)
	}
	if err := validateGaussSteps(n); err != nil {
		return 0, quadratureErrorf(opGaussian, err)
	}

	h := (b - a) / float64(n)
	half := h / 2
	var sum, centre float64
	var i, j int
	for i = 0; i < n; i++ {
		centre = a + half + float64(i)*h
		for j = 0; j < len(gaussNodes); j++ {
			sum += gaussWeights[j] * f(centre+half*gaussNodes[j])
		}
	}

	return sum * h / 2, nil
}
