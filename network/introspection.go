// SPDX-License-Identifier: MIT

package network

import (
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// LastInput returns a copy of the input of the most recent Activate or Train.
//
// Errors:
//   - ErrNotActivated before the first successful forward pass.
func (n *Network) LastInput() ([]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.input == nil {
		return nil, networkErrorf("LastInput", ErrNotActivated)
	}

	return n.input.ToVector(), nil
}

// LastOutput returns a copy of the output layer from the most recent forward pass.
// After Train it is the output computed before the parameter update.
func (n *Network) LastOutput() ([]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.outputs == nil {
		return nil, networkErrorf("LastOutput", ErrNotActivated)
	}

	return n.outputs[len(n.outputs)-1].ToVector(), nil
}

// LastResult is LastOutput with every value rounded to the nearest integer,
// for classification-style display.
func (n *Network) LastResult() ([]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.outputs == nil {
		return nil, networkErrorf("LastResult", ErrNotActivated)
	}
	res := n.outputs[len(n.outputs)-1].ToVector()
	for i, v := range res {
		res[i] = math.Round(v)
	}

	return res, nil
}

// LayerOutputs returns copies of every cached layer output, one column per transition.
func (n *Network) LayerOutputs() ([]*matrix.Dense, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.outputs == nil {
		return nil, networkErrorf("LayerOutputs", ErrNotActivated)
	}

	return cloneAll(n.outputs), nil
}

// LayerErrors returns copies of the per-transition error vectors of the most
// recent Train call, or nil if the network has not been trained.
func (n *Network) LayerErrors() []*matrix.Dense {
	n.mu.Lock()
	defer n.mu.Unlock()

	return cloneAll(n.errors)
}
