// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// Sentinel errors for network construction, configuration and use.
var (
	// ErrTooFewLayers is returned when fewer than two layer sizes are given.
	ErrTooFewLayers = errors.New("network: need at least input and output layer sizes")

	// ErrInvalidLayerSize is returned for a non-positive layer size.
	ErrInvalidLayerSize = errors.New("network: layer size must be > 0")

	// ErrInvalidLearningRate is returned for a learning rate that is not a positive finite number.
	ErrInvalidLearningRate = errors.New("network: learning rate must be finite and > 0")

	// ErrNilActivation is returned when a nil activation is configured.
	ErrNilActivation = errors.New("network: activation is nil")

	// ErrOptionViolation is returned by New when an invalid Option was supplied.
	ErrOptionViolation = errors.New("network: invalid option supplied")

	// ErrLayerIndex is returned for a layer-transition index outside [0, transitions).
	ErrLayerIndex = errors.New("network: layer index out of range")

	// ErrNotActivated is returned by introspection before any activation ran.
	ErrNotActivated = errors.New("network: no activation cached yet")

	// ErrInputSize is returned when an input vector length differs from sizes[0].
	// It matches matrix.ErrShapeMismatch through errors.Is.
	ErrInputSize = fmt.Errorf("network: input length: %w", matrix.ErrShapeMismatch)

	// ErrTargetSize is returned when a target vector length differs from the output size.
	// It matches matrix.ErrShapeMismatch through errors.Is.
	ErrTargetSize = fmt.Errorf("network: target length: %w", matrix.ErrShapeMismatch)
)

// networkErrorf wraps err with an operation tag, preserving it for errors.Is.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validLearningRate reports whether lr is finite and strictly positive.
func validLearningRate(lr float64) bool {
	return lr > 0 && !math.IsInf(lr, 0) && !math.IsNaN(lr)
}

