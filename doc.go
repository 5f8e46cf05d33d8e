// Package lvnet is a small, dependency-light playground for feedforward
// neural networks: dense matrices, pluggable activations and online
// backpropagation, all in pure Go.
//
// 🚀 What is lvnet?
//
//	A compact engine built from three subpackages:
//		• matrix     — row-major Dense storage, elementwise + dot/transpose kernels, validators
//		• activation — the Func/Derivative contract, Sigmoid, plain function adapters
//		• network    — layer construction, forward activation, one-sample training steps
//
// Errors are sentinel values (matrix.ErrShapeMismatch, network.ErrInputSize, ...)
// wrapped with operation context, so callers match them with errors.Is.
// Training progress is observed through the network.WithOnStep hook.
//
// Quick ASCII example (sizes []int{2, 3, 1}):
//
//	x0 ─┬─ h0 ─┐
//	    ├─ h1 ─┼─ y
//	x1 ─┴─ h2 ─┘
//
//	two weight matrices (3×2, 1×3) and two bias columns (3×1, 1×1).
//
//	n, _ := network.New([]int{2, 3, 1}, network.WithSeed(1), network.WithLearningRate(0.2))
//	_ = n.Train([]float64{1, 0}, []float64{1})
//	out, _ := n.Activate([]float64{1, 0})
//
//	go get github.com/katalvlaran/lvnet
package lvnet
