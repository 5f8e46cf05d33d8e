// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Activate runs a forward pass and returns the output layer as a vector.
// The input and every layer output are cached for Train and introspection.
// Parameters are not modified.
//
// Errors:
//   - ErrInputSize (matches matrix.ErrShapeMismatch) if len(input) != sizes[0].
//   - matrix.ErrTypeMismatch if input holds NaN or ±Inf.
//
// Complexity: O(Σ sizes[i]·sizes[i+1]).
func (n *Network) Activate(input []float64) ([]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.forward("Activate", input); err != nil {
		return nil, err
	}

	return n.outputs[len(n.outputs)-1].ToVector(), nil
}

// forward computes out_i = f(W_i·out_{i−1} + b_i) for every transition and
// replaces the cache only when every stage succeeded. Caller holds mu.
func (n *Network) forward(tag string, input []float64) error {
	if err := matrix.ValidateVecLen(input, n.sizes[0]); err != nil {
		return fmt.Errorf("%s: got %d, want %d: %w", tag, len(input), n.sizes[0], ErrInputSize)
	}
	x, err := matrix.FromVector(input)
	if err != nil {
		return networkErrorf(tag, err)
	}

	f := n.act.Func
	outs := make([]*matrix.Dense, len(n.weights))
	prev := x
	for i, w := range n.weights {
		z, err := matrix.Dot(w, prev)
		if err != nil {
			return networkErrorf(fmt.Sprintf("%s: layer %d", tag, i), err)
		}
		if _, err = z.Add(n.biases[i]); err != nil {
			return networkErrorf(fmt.Sprintf("%s: layer %d", tag, i), err)
		}
		outs[i] = z.Map(func(_, _ int, v float64) float64 { return f(v) })
		prev = outs[i]
	}

	n.input = x
	n.outputs = outs

	return nil
}
