// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnet/activation"
	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
)

// identity is f(x)=x with derivative 1, which keeps hand-computed expectations exact.
var identity = activation.Funcs{
	F: func(x float64) float64 { return x },
	D: func(float64) float64 { return 1 },
}

// MustNew builds a network or fails the test.
func MustNew(t testing.TB, sizes []int, opts ...network.Option) *network.Network {
	t.Helper()
	n, err := network.New(sizes, opts...)
	require.NoError(t, err, "New(%v)", sizes)

	return n
}

// MustRows builds a *matrix.Dense from a grid or fails the test.
func MustRows(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(grid)
	require.NoError(t, err)

	return m
}

// toGonum converts a *matrix.Dense into a gonum *mat.Dense (row-major copy).
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	return mat.NewDense(r, c, m.ToVector())
}

// referenceStep is an independent gonum rendition of one training step.
// It returns the updated weights and biases.
func referenceStep(ws, bs []*mat.Dense, act activation.Activation, lr float64, input, target []float64) ([]*mat.Dense, []*mat.Dense) {
	layers := len(ws)
	x := mat.NewDense(len(input), 1, append([]float64(nil), input...))
	outs := make([]*mat.Dense, layers)
	prev := x
	for i := range ws {
		var z mat.Dense
		z.Mul(ws[i], prev)
		z.Add(&z, bs[i])
		z.Apply(func(_, _ int, v float64) float64 { return act.Func(v) }, &z)
		outs[i] = &z
		prev = &z
	}

	nextW := make([]*mat.Dense, layers)
	nextB := make([]*mat.Dense, layers)
	var e mat.Dense
	e.Sub(mat.NewDense(len(target), 1, append([]float64(nil), target...)), outs[layers-1])
	for i := layers - 1; i >= 0; i-- {
		if i < layers-1 {
			var back mat.Dense
			back.Mul(ws[i+1].T(), &e)
			e = back
		}
		p := x
		if i > 0 {
			p = outs[i-1]
		}
		var g, delta, w, b mat.Dense
		g.Apply(func(_, _ int, y float64) float64 { return act.Derivative(y) }, outs[i])
		g.MulElem(&g, &e)
		g.Scale(lr, &g)
		delta.Mul(&g, p.T())
		w.Add(ws[i], &delta)
		b.Add(bs[i], &g)
		nextW[i], nextB[i] = &w, &b
	}

	return nextW, nextB
}
