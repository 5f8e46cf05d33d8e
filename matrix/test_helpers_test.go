// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Bridge *matrix.Dense to gonum's mat.Dense, used as an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnet/matrix"
)

// oracleTol is the absolute tolerance used when comparing against gonum.
// gonum may sum products in a different order, so bitwise equality is not expected.
const oracleTol = 1e-12

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
//
// Errors:
//   - Fatal test failure if lengths mismatch or Set fails.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: want %d values", r*c)
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// RandomDense FILLS an r×c matrix with deterministic U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	return MustDense(t, r, c).Map(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	})
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// toGonum converts a *matrix.Dense into a gonum *mat.Dense (row-major copy).
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	return mat.NewDense(r, c, m.ToVector())
}

// requireMatchesGonum asserts shape equality and element-wise closeness to a gonum matrix.
func requireMatchesGonum(t testing.TB, want mat.Matrix, got *matrix.Dense) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Shape()
	require.Equal(t, []int{wr, wc}, []int{gr, gc}, "shape")
	flat := make([]float64, 0, wr*wc)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			flat = append(flat, want.At(i, j))
		}
	}
	require.True(t, floats.EqualApprox(flat, got.ToVector(), oracleTol),
		"want %v\n got %v", flat, got.ToVector())
}
