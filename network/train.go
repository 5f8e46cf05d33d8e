// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Train performs one online backpropagation step on a single sample.
//
// Stages:
//  1. Validate input and target lengths (nothing is touched on failure).
//  2. Forward pass; the cache holds the input and every layer output.
//  3. Backward pass from the output transition to the first, reading only
//     the pre-step parameters and writing into fresh next[i] matrices.
//  4. Swap the new parameters in, cache the per-layer errors, bump Steps.
//  5. Call the OnStep hook (outside the lock).
//
// Errors:
//   - ErrInputSize, ErrTargetSize (both match matrix.ErrShapeMismatch).
//   - matrix.ErrTypeMismatch if input or target holds NaN or ±Inf.
//
// Complexity: O(Σ sizes[i]·sizes[i+1]).
func (n *Network) Train(input, target []float64) error {
	info, hook, err := n.step(input, target)
	if err != nil {
		return err
	}
	hook(info)

	return nil
}

// step runs stages 1-4 under mu and returns the hook to call afterwards.
func (n *Network) step(input, target []float64) (StepInfo, func(StepInfo), error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := matrix.ValidateVecLen(input, n.sizes[0]); err != nil {
		return StepInfo{}, nil, fmt.Errorf("Train: got %d, want %d: %w", len(input), n.sizes[0], ErrInputSize)
	}
	out := n.sizes[len(n.sizes)-1]
	if err := matrix.ValidateVecLen(target, out); err != nil {
		return StepInfo{}, nil, fmt.Errorf("Train: got %d, want %d: %w", len(target), out, ErrTargetSize)
	}
	t, err := matrix.FromVector(target)
	if err != nil {
		return StepInfo{}, nil, networkErrorf("Train: target", err)
	}
	if err = n.forward("Train", input); err != nil {
		return StepInfo{}, nil, err
	}

	info, err := n.backward(t)
	if err != nil {
		return StepInfo{}, nil, err
	}
	info.Input = append([]float64(nil), input...)
	info.Target = append([]float64(nil), target...)

	return info, n.onStep, nil
}

// backward applies one gradient step using the cached forward pass against
// target t. Caller holds mu.
//
//	e_last = t − out_last
//	e_i    = W_{i+1}ᵀ · e_{i+1}
//	g_i    = lr · e_i ⊙ f'(out_i)
//	W_i'   = W_i + g_i · out_{i−1}ᵀ
//	b_i'   = b_i + g_i
func (n *Network) backward(t *matrix.Dense) (StepInfo, error) {
	layers := len(n.weights)
	last := n.outputs[layers-1]

	e, err := matrix.Sub(t, last)
	if err != nil {
		return StepInfo{}, networkErrorf("Train: output error", err)
	}

	var (
		errs  = make([]*matrix.Dense, layers)
		nextW = make([]*matrix.Dense, layers)
		nextB = make([]*matrix.Dense, layers)
		df    = n.act.Derivative
	)
	for i := layers - 1; i >= 0; i-- {
		tag := fmt.Sprintf("Train: layer %d", i)
		if i < layers-1 {
			if e, err = matrix.Dot(n.weights[i+1].Clone().Transpose(), errs[i+1]); err != nil {
				return StepInfo{}, networkErrorf(tag, err)
			}
		}
		errs[i] = e

		prev := n.input
		if i > 0 {
			prev = n.outputs[i-1]
		}

		grad, err := matrix.Apply(n.outputs[i], func(_, _ int, y float64) float64 { return df(y) }).Hadamard(e)
		if err != nil {
			return StepInfo{}, networkErrorf(tag, err)
		}
		grad.Scale(n.lr)

		delta, err := matrix.Dot(grad, prev.Clone().Transpose())
		if err != nil {
			return StepInfo{}, networkErrorf(tag, err)
		}
		if nextW[i], err = matrix.Add(n.weights[i], delta); err != nil {
			return StepInfo{}, networkErrorf(tag, err)
		}
		if nextB[i], err = matrix.Add(n.biases[i], grad); err != nil {
			return StepInfo{}, networkErrorf(tag, err)
		}
	}

	n.weights, n.biases = nextW, nextB
	n.errors = errs
	n.steps++

	return StepInfo{
		Step:   n.steps,
		Output: last.ToVector(),
		Error:  errs[layers-1].ToVector(),
	}, nil
}
