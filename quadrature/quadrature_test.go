// SPDX-License-Identifier: MIT
// Package quadrature_test contains unit tests for the quadrature rules.
package quadrature_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/numkit/quadrature"
)

type ruleFn func(quadrature.Func, float64, float64, int) (float64, error)

// namedRule pairs each rule with an n it accepts for a "large n" run.
type namedRule struct {
	name   string
	fn     ruleFn
	largeN int
}

var allRules = []namedRule{
	{"Trapezoidal", quadrature.Trapezoidal, 100},
	{"Simpson", quadrature.Simpson, 100},
	{"Midpoint", quadrature.Midpoint, 100},
	{"Gaussian", quadrature.Gaussian, 3},
	{"Rectangular", quadrature.Rectangular, 100},
}

func square(x float64) float64 { return x * x }

func TestRules_SquareOnUnitInterval(t *testing.T) {
	t.Parallel()
	for _, r := range allRules {
		r := r
		t.Run(r.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.fn(square, 0, 1, r.largeN)
			require.NoError(t, err)
			// two decimal places, as in toBeCloseTo(1/3, 2)
			assert.InDelta(t, 1.0/3.0, got, 5e-3)
		})
	}
}

func TestRules_HandComputedSmallN(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		fn   ruleFn
		n    int
		want float64
	}{
		{"Trapezoidal n=1", quadrature.Trapezoidal, 1, 0.5},
		{"Trapezoidal n=2", quadrature.Trapezoidal, 2, 0.375},
		{"Simpson n=2", quadrature.Simpson, 2, 1.0 / 3.0},
		{"Midpoint n=1", quadrature.Midpoint, 1, 0.25},
		{"Midpoint n=2", quadrature.Midpoint, 2, 0.3125},
		{"Rectangular n=1", quadrature.Rectangular, 1, 0},
		{"Rectangular n=2", quadrature.Rectangular, 2, 0.125},
		{"Rectangular n=100", quadrature.Rectangular, 100, 0.32835},
		{"Trapezoidal n=100", quadrature.Trapezoidal, 100, 1.0/3.0 + 1e-4/6},
		{"Midpoint n=100", quadrature.Midpoint, 100, 1.0/3.0 - 1e-4/12},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(square, 0, 1, tc.n)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestGaussian_ExactForLowDegreePolynomials(t *testing.T) {
	t.Parallel()
	quintic := func(x float64) float64 { return math.Pow(x, 5) - 2*x*x + 1 }
	// ∫₀² (x⁵ − 2x² + 1) dx = 64/6 − 16/3 + 2
	want := 64.0/6.0 - 16.0/3.0 + 2
	for _, n := range []int{2, 3} {
		got, err := quadrature.Gaussian(quintic, 0, 2, n)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-8, "n=%d", n)
	}
}

func TestGaussian_EvaluatesThreeNodesPerSubinterval(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 3} {
		calls := 0
		_, err := quadrature.Gaussian(func(x float64) float64 { calls++; return x }, -1, 4, n)
		require.NoError(t, err)
		assert.Equal(t, 3*n, calls, "n=%d", n)
	}
}

func TestRules_DegenerateAndReversedInterval(t *testing.T) {
	t.Parallel()
	cube := func(x float64) float64 { return x*x*x + 1 }
	for _, r := range allRules {
		r := r
		t.Run(r.name, func(t *testing.T) {
			zero, err := r.fn(cube, 2.5, 2.5, r.largeN)
			require.NoError(t, err)
			assert.Equal(t, 0.0, zero)

			fwd, err := r.fn(cube, 0, 2, r.largeN)
			require.NoError(t, err)
			rev, err := r.fn(cube, 2, 0, r.largeN)
			require.NoError(t, err)
			assert.Less(t, rev, 0.0)
			// Rectangular samples left endpoints, so the reversed run sees the other end.
			if r.name == "Rectangular" {
				assert.InDelta(t, -fwd, rev, 0.5)
				return
			}
			assert.InDelta(t, -fwd, rev, 1e-9)
		})
	}
}

func TestRules_RejectInvalidArguments(t *testing.T) {
	t.Parallel()
	for _, r := range allRules {
		r := r
		t.Run(r.name, func(t *testing.T) {
			_, err := r.fn(nil, 0, 1, r.largeN)
			assert.ErrorIs(t, err, quadrature.ErrNilFunc)
			assert.ErrorIs(t, err, quadrature.ErrInvalidArgument)

			for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
				_, err = r.fn(square, bad, 1, r.largeN)
				assert.ErrorIs(t, err, quadrature.ErrNonFiniteBound)
				_, err = r.fn(square, 0, bad, r.largeN)
				assert.ErrorIs(t, err, quadrature.ErrNonFiniteBound)
			}

			for _, n := range []int{0, -1, -100} {
				_, err = r.fn(square, 0, 1, n)
				assert.ErrorIs(t, err, quadrature.ErrInvalidArgument, "n=%d", n)
			}
		})
	}
}

func TestRules_ValidationPrecedesEvaluation(t *testing.T) {
	t.Parallel()
	calls := 0
	probe := func(x float64) float64 { calls++; return x }
	_, err := quadrature.Simpson(probe, 0, 1, 3)
	require.Error(t, err)
	_, err = quadrature.Gaussian(probe, 0, 1, 4)
	require.Error(t, err)
	_, err = quadrature.Trapezoidal(probe, math.NaN(), 1, 10)
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestSimpson_RejectsOddN(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 5, 101} {
		_, err := quadrature.Simpson(square, 0, 1, n)
		assert.ErrorIs(t, err, quadrature.ErrOddSteps, "n=%d", n)
		assert.ErrorIs(t, err, quadrature.ErrInvalidArgument, "n=%d", n)
	}
	_, err := quadrature.Simpson(square, 0, 1, 0)
	assert.ErrorIs(t, err, quadrature.ErrNonPositiveSteps)
	assert.Contains(t, err.Error(), "Simpson: ")
}

func TestGaussian_RejectsNOutsideTwoThree(t *testing.T) {
	t.Parallel()
	for _, n := range []int{-2, 0, 1, 4, 10, 100} {
		_, err := quadrature.Gaussian(square, 0, 1, n)
		assert.ErrorIs(t, err, quadrature.ErrGaussSteps, "n=%d", n)
	}
}

func TestRules_AgreeWithGonumOnUniformGrid(t *testing.T) {
	t.Parallel()
	f := func(x float64) float64 { return math.Sin(x) + x*x*x }
	const a, b, n = 0.0, 2.0, 64
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	h := (b - a) / n
	for i := range xs {
		xs[i] = a + float64(i)*h
		ys[i] = f(xs[i])
	}

	trap, err := quadrature.Trapezoidal(f, a, b, n)
	require.NoError(t, err)
	assert.InDelta(t, integrate.Trapezoidal(xs, ys), trap, 1e-12)

	simp, err := quadrature.Simpson(f, a, b, n)
	require.NoError(t, err)
	// Both are fourth order; on 64 intervals they agree far below the truncation error.
	assert.InDelta(t, integrate.Simpsons(xs, ys), simp, 1e-7)
	assert.InDelta(t, 1-math.Cos(2)+4, simp, 1e-7)
}

func TestIntegrate_DispatchMatchesDirectCall(t *testing.T) {
	t.Parallel()
	for i, r := range quadrature.Rules() {
		direct, err := allRules[i].fn(math.Exp, -1, 1, allRules[i].largeN)
		require.NoError(t, err)
		got, err := quadrature.Integrate(r, math.Exp, -1, 1, allRules[i].largeN)
		require.NoError(t, err)
		assert.Equal(t, direct, got, r.String())
	}

	_, err := quadrature.Integrate(quadrature.Rule(42), math.Exp, 0, 1, 2)
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)
}

func TestParseRule(t *testing.T) {
	t.Parallel()
	for _, r := range quadrature.Rules() {
		got, err := quadrature.ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := quadrature.ParseRule("  Gauss-Legendre ")
	require.NoError(t, err)
	assert.Equal(t, quadrature.RuleGaussian, got)

	_, err = quadrature.ParseRule("romberg")
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)
	assert.Equal(t, "Rule(9)", quadrature.Rule(9).String())
}

func TestRules_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()
	want, err := quadrature.Simpson(math.Cos, 0, math.Pi/2, 200)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = quadrature.Simpson(math.Cos, 0, math.Pi/2, 200)
		}(i)
	}
	wg.Wait()
	for _, v := range results {
		assert.Equal(t, want, v)
	}
}
