// Package network implements a fully-connected feedforward neural network
// trained online by backpropagation.
//
// A Network is built from an ordered list of layer sizes
// (input, zero or more hidden, output). Each layer transition i owns a
// weight matrix of shape sizes[i+1]×sizes[i] and a bias column of shape
// sizes[i+1]×1, both initialized uniformly in [0, 1).
//
// Forward activation (Activate) computes, for every transition,
//
//	out_i = f(W_i · out_{i-1} + b_i)     with out_{-1} = input
//
// and caches the input and every out_i for training and introspection.
//
// One training step (Train) runs the forward pass, then walks the
// transitions from the output back to the input:
//
//	e_last = target − out_last
//	e_i    = W_{i+1}ᵀ · e_{i+1}                (old W_{i+1})
//	g_i    = lr · e_i ⊙ f'(out_i)
//	W_i'   = W_i + g_i · out_{i-1}ᵀ
//	b_i'   = b_i + g_i
//
// Every gradient reads the pre-step parameters: the new matrices are
// collected into separate slices and swapped in only after the whole
// backward pass succeeds.
//
// Concurrency: calls on one *Network are serialized by an internal mutex, so
// a Train never observes another call's cached layer outputs. Distinct
// networks share no state.
package network
