// SPDX-License-Identifier: MIT

package integrand

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dop251/goja"

	"github.com/katalvlaran/numkit/quadrature"
)

// ErrNotFunction is returned by Compile when the wrapped expression does not
// evaluate to a callable.
var ErrNotFunction = errors.New("integrand: expression is not callable")

// maxCallStack bounds recursion inside user expressions.
const maxCallStack = 1024

// Expr is a JavaScript expression in the variable x compiled into a callable.
// An Expr owns its goja runtime and must not be used from several goroutines.
type Expr struct {
	src string
	vm  *goja.Runtime
	fn  goja.Callable
	err error
}

// Compile turns a JavaScript expression such as "Math.sin(x) * x" into an Expr.
// Syntax errors surface here, not at evaluation time.
func Compile(expr string) (*Expr, error) {
	prog, err := goja.Compile("integrand", "(function(x) { return ("+expr+"); })", true)
	if err != nil {
		return nil, fmt.Errorf("integrand: compile %q: %w", expr, err)
	}

	vm := goja.New()
	vm.SetMaxCallStackSize(maxCallStack)
	for _, name := range []string{"require", "module", "exports", "process"} {
		if err = vm.Set(name, goja.Undefined()); err != nil {
			return nil, fmt.Errorf("integrand: setup: %w", err)
		}
	}

	val, err := vm.RunProgram(prog)
	if err != nil {
		return nil, fmt.Errorf("integrand: evaluate %q: %w", expr, err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("%q: %w", expr, ErrNotFunction)
	}

	return &Expr{src: expr, vm: vm, fn: fn}, nil
}

// String returns the source expression.
func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at x. JavaScript exceptions and interrupts are
// returned as errors; non-numeric results convert with JavaScript semantics.
func (e *Expr) Eval(x float64) (float64, error) {
	v, err := e.fn(goja.Undefined(), e.vm.ToValue(x))
	if err != nil {
		return math.NaN(), fmt.Errorf("integrand: %q at x=%g: %w", e.src, x, err)
	}

	return v.ToFloat(), nil
}

// Func adapts e to a quadrature.Func. A failed evaluation yields NaN and the
// first such error is kept for Err.
func (e *Expr) Func() quadrature.Func {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil && e.err == nil {
			e.err = err
		}

		return v
	}
}

// Err returns the first evaluation error recorded by Func, if any.
func (e *Expr) Err() error { return e.err }

// Bind interrupts any running evaluation once ctx is done. The returned
// release func stops watching ctx, waits for the watcher to exit and re-arms
// the runtime; call it when the integration has finished.
func (e *Expr) Bind(ctx context.Context) (release func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	return func() {
		close(done)
		<-exited // no Interrupt can land after ClearInterrupt
		e.vm.ClearInterrupt()
	}
}
