// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvnet/activation"
)

// DefaultLearningRate is the step size used when WithLearningRate is not given.
const DefaultLearningRate = 0.1

// initMax is the exclusive upper bound of the uniform parameter initialization.
const initMax = 1.0

// StepInfo describes one completed training step; it is passed to the OnStep hook.
// All slices are copies owned by the receiver of the hook.
type StepInfo struct {
	Step   int       // 1-based count of completed steps on this network
	Input  []float64 // sample input
	Target []float64 // sample target
	Output []float64 // network output before the update
	Error  []float64 // target − output
}

// Option configures a Network via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks used to build a Network.
type Options struct {
	// LearningRate scales every gradient; must be finite and > 0.
	LearningRate float64

	// Activation is applied cell-wise after each layer transition.
	Activation activation.Activation

	// Rand is the source for parameter initialization; nil means the
	// non-reproducible math/rand top-level source.
	Rand *rand.Rand

	// OnStep is called after every successful training step.
	OnStep func(StepInfo)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - DefaultLearningRate
//   - sigmoid activation
//   - math/rand top-level source
//   - no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		LearningRate: DefaultLearningRate,
		Activation:   activation.Default(),
		Rand:         nil,
		OnStep:       func(StepInfo) {},
		err:          nil,
	}
}

// WithLearningRate sets the learning rate.
//
//	lr > 0 and finite: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if !validLearningRate(lr) {
			o.err = fmt.Errorf("%w: learning rate %v", ErrOptionViolation, lr)
			return
		}
		o.LearningRate = lr
	}
}

// WithActivation sets the activation. A nil activation, or a Funcs with
// F or D unset, is an invalid option.
func WithActivation(a activation.Activation) Option {
	return func(o *Options) {
		if err := checkActivation(a); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Activation = a
	}
}

// checkActivation returns ErrNilActivation (joined with activation.ErrNilFunc
// for incomplete Funcs) when a cannot be applied.
func checkActivation(a activation.Activation) error {
	if a == nil {
		return ErrNilActivation
	}
	if err := activation.Validate(a); err != nil {
		return fmt.Errorf("%w: %w", ErrNilActivation, err)
	}

	return nil
}

// WithRand sets the initialization source. A nil r keeps the default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed initializes parameters from a fresh source seeded with seed,
// making construction reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed)) //nolint:gosec // not security-critical
	}
}

// WithOnStep registers a callback run after every training step.
func WithOnStep(fn func(StepInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
