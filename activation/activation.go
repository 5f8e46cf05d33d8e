// SPDX-License-Identifier: MIT

package activation

import (
	"fmt"
	"math"
)

// Activation is the two-function capability a network applies per cell.
//
// Derivative receives the already-activated value y = Func(x), not x.
type Activation interface {
	Func(x float64) float64
	Derivative(y float64) float64
}

// Compile-time assertions.
var (
	_ Activation = Sigmoid{}
	_ Activation = Funcs{}
)

// Sigmoid is the logistic function σ(x) = 1 / (1 + e^−x).
//
// σ squashes values into (0, 1). For large negative x, e^−x overflows to
// +Inf and σ(x) evaluates to 0; no special-casing is applied.
type Sigmoid struct{}

// Func returns 1 / (1 + e^−x).
func (Sigmoid) Func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Derivative returns y(1−y) where y = σ(x).
func (Sigmoid) Derivative(y float64) float64 { return y * (1 - y) }

// Default returns the activation used when none is configured (Sigmoid).
func Default() Activation { return Sigmoid{} }

// Funcs adapts a plain function pair to Activation.
// F is the nonlinearity, D its derivative in terms of F's output.
type Funcs struct {
	F func(x float64) float64
	D func(y float64) float64
}

// NewFuncs builds a Funcs after checking that both functions are set.
//
// Errors:
//   - ErrNilFunc when f or d is nil.
func NewFuncs(f, d func(float64) float64) (Funcs, error) {
	a := Funcs{F: f, D: d}
	if err := a.validate("NewFuncs"); err != nil {
		return Funcs{}, err
	}

	return a, nil
}

func (a Funcs) validate(tag string) error {
	if a.F == nil {
		return fmt.Errorf("%s: func: %w", tag, ErrNilFunc)
	}
	if a.D == nil {
		return fmt.Errorf("%s: derivative: %w", tag, ErrNilFunc)
	}

	return nil
}

// Validate reports ErrNilFunc when a is nil, a nil *Funcs, or a Funcs
// with F or D unset. Other implementations are accepted as-is.
func Validate(a Activation) error {
	switch v := a.(type) {
	case nil:
		return fmt.Errorf("Validate: %w", ErrNilFunc)
	case Funcs:
		return v.validate("Validate")
	case *Funcs:
		if v == nil {
			return fmt.Errorf("Validate: %w", ErrNilFunc)
		}
		return v.validate("Validate")
	}

	return nil
}

// Func calls F.
func (a Funcs) Func(x float64) float64 { return a.F(x) }

// Derivative calls D.
func (a Funcs) Derivative(y float64) float64 { return a.D(y) }
