// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/matrix"
)

// Network is a fully-connected feedforward network.
//
// For transition i (0 ≤ i < len(sizes)−1):
//
//	weights[i] has shape sizes[i+1]×sizes[i]
//	biases[i]  has shape sizes[i+1]×1
//
// Caches:
//   - input: the column vector of the most recent Activate/Train call.
//   - outputs: post-activation output of every transition from that call.
//   - errors: per-transition error vectors of the most recent Train call.
//
// Safe for concurrent use; all methods take mu.
type Network struct {
	mu sync.Mutex

	sizes   []int
	weights []*matrix.Dense
	biases  []*matrix.Dense

	lr     float64
	act    activation.Activation
	onStep func(StepInfo)
	steps  int

	input   *matrix.Dense
	outputs []*matrix.Dense
	errors  []*matrix.Dense
}

// New builds a network for the given layer sizes (input, hidden..., output).
// Weights and biases are drawn uniformly from [0, 1), weight then bias for
// each transition in order, using the configured source.
//
// Errors:
//   - ErrTooFewLayers if len(sizes) < 2.
//   - ErrInvalidLayerSize if any size ≤ 0.
//   - ErrOptionViolation if an Option was invalid.
//
// Complexity: O(Σ sizes[i]·sizes[i+1]).
func New(sizes []int, opts ...Option) (*Network, error) {
	if len(sizes) < 2 {
		return nil, networkErrorf(fmt.Sprintf("New: %d sizes", len(sizes)), ErrTooFewLayers)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, networkErrorf(fmt.Sprintf("New: sizes[%d]=%d", i, s), ErrInvalidLayerSize)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, networkErrorf("New", o.err)
	}

	n := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*matrix.Dense, len(sizes)-1),
		biases:  make([]*matrix.Dense, len(sizes)-1),
		lr:      o.LearningRate,
		act:     o.Activation,
		onStep:  o.OnStep,
	}

	var err error
	for i := 0; i < len(sizes)-1; i++ {
		if n.weights[i], err = matrix.NewRandom(sizes[i+1], sizes[i], o.Rand, initMax, false); err != nil {
			return nil, networkErrorf("New", err)
		}
		if n.biases[i], err = matrix.NewRandom(sizes[i+1], 1, o.Rand, initMax, false); err != nil {
			return nil, networkErrorf("New", err)
		}
	}

	return n, nil
}

// Transitions returns the number of weight matrices, len(LayerSizes())−1.
func (n *Network) Transitions() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.weights)
}

// LayerSizes returns a copy of the layer sizes.
func (n *Network) LayerSizes() []int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]int(nil), n.sizes...)
}

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.lr
}

// SetLearningRate replaces the learning rate; later Train calls use it.
//
// Errors:
//   - ErrInvalidLearningRate if lr is not finite and > 0.
func (n *Network) SetLearningRate(lr float64) error {
	if !validLearningRate(lr) {
		return networkErrorf(fmt.Sprintf("SetLearningRate: %v", lr), ErrInvalidLearningRate)
	}
	n.mu.Lock()
	n.lr = lr
	n.mu.Unlock()

	return nil
}

// Activation returns the configured activation.
func (n *Network) Activation() activation.Activation {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.act
}

// SetActivation replaces the activation used by later Activate/Train calls.
//
// Errors:
//   - ErrNilActivation if a is nil or a Funcs with F or D unset
//     (the latter also matches activation.ErrNilFunc).
func (n *Network) SetActivation(a activation.Activation) error {
	if err := checkActivation(a); err != nil {
		return networkErrorf("SetActivation", err)
	}
	n.mu.Lock()
	n.act = a
	n.mu.Unlock()

	return nil
}

// Steps returns the number of completed training steps.
func (n *Network) Steps() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.steps
}

// Weights returns deep copies of the weight matrices, one per transition.
func (n *Network) Weights() []*matrix.Dense {
	n.mu.Lock()
	defer n.mu.Unlock()

	return cloneAll(n.weights)
}

// Biases returns deep copies of the bias columns, one per transition.
func (n *Network) Biases() []*matrix.Dense {
	n.mu.Lock()
	defer n.mu.Unlock()

	return cloneAll(n.biases)
}

// SetLayer replaces the parameters of transition i with copies of w and b.
// Both are validated before anything is stored.
//
// Errors:
//   - ErrLayerIndex if i is outside [0, Transitions()).
//   - matrix.ErrNilMatrix if w or b is nil.
//   - matrix.ErrShapeMismatch if w is not sizes[i+1]×sizes[i] or b is not sizes[i+1]×1.
func (n *Network) SetLayer(i int, w, b *matrix.Dense) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	tag := fmt.Sprintf("SetLayer(%d)", i)
	if i < 0 || i >= len(n.weights) {
		return networkErrorf(tag, ErrLayerIndex)
	}
	if err := matrix.ValidateBinarySameShape(w, n.weights[i]); err != nil {
		return networkErrorf(tag+": weights", err)
	}
	if err := matrix.ValidateBinarySameShape(b, n.biases[i]); err != nil {
		return networkErrorf(tag+": biases", err)
	}
	n.weights[i] = w.Clone()
	n.biases[i] = b.Clone()

	return nil
}

func cloneAll(ms []*matrix.Dense) []*matrix.Dense {
	if ms == nil {
		return nil
	}
	out := make([]*matrix.Dense, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}

	return out
}
