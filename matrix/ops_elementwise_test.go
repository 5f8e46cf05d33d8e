// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnet/matrix"
)

// --- in-place matrix operand -------------------------------------------------

func TestAddSubHadamard_InPlace(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	got, err := a.Add(b)
	require.NoError(t, err)
	require.Same(t, a, got, "in-place form returns the receiver")
	require.Equal(t, []float64{11, 22, 33, 44}, a.ToVector())

	_, err = a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, a.ToVector())

	_, err = a.Hadamard(b)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 40, 90, 160}, a.ToVector())

	// b was only read.
	require.Equal(t, []float64{10, 20, 30, 40}, b.ToVector())
}

func TestElementwise_SelfOperand(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	_, err := a.Add(a)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, a.ToVector())
}

// TestElementwise_ShapeMismatch_NoPartialMutation checks the 2×2 vs 3×2 case
// for every matrix-operand form and verifies the receiver is untouched.
func TestElementwise_ShapeMismatch_NoPartialMutation(t *testing.T) {
	t.Parallel()

	ops := map[string]func(a, b *matrix.Dense) (*matrix.Dense, error){
		"Add":      (*matrix.Dense).Add,
		"Sub":      (*matrix.Dense).Sub,
		"Hadamard": (*matrix.Dense).Hadamard,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
			b := NewFilledDense(t, 3, 2, []float64{1, 1, 1, 1, 1, 1})
			_, err := op(a, b)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			require.Equal(t, []float64{1, 2, 3, 4}, a.ToVector())

			_, err = op(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}

	_, err := matrix.Add(NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}), MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Hadamard(MustDense(t, 1, 2), MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// --- scalar operand ----------------------------------------------------------

func TestScalarOps(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.Same(t, a, a.AddScalar(1))
	require.Equal(t, []float64{2, 3, 4, 5}, a.ToVector())
	a.SubScalar(2).Scale(10)
	require.Equal(t, []float64{0, 10, 20, 30}, a.ToVector())
}

// TestElementwiseLaws covers add(M,0)==M and multiply(M,1)==M.
func TestElementwiseLaws(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		m := RandomDense(t, 3, 4, seed)
		require.True(t, matrix.AddScalar(m, 0).Equal(m))
		require.True(t, matrix.Scale(m, 1).Equal(m))
		require.True(t, matrix.SubScalar(m, 0).Equal(m))

		zeros := MustDense(t, 3, 4)
		sum, err := matrix.Add(m, zeros)
		require.NoError(t, err)
		require.True(t, sum.Equal(m))
	}
}

// --- non-mutating package forms ---------------------------------------------

func TestStaticForms_DoNotMutate(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	n := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})
	mBefore, nBefore := m.Clone(), n.Clone()

	sum, err := matrix.Add(m, n)
	require.NoError(t, err)
	require.NotSame(t, m, sum)
	require.NotSame(t, n, sum)
	require.Equal(t, []float64{7, 7, 7, 7, 7, 7}, sum.ToVector())

	diff, err := matrix.Sub(m, n)
	require.NoError(t, err)
	require.Equal(t, []float64{-5, -3, -1, 1, 3, 5}, diff.ToVector())

	prod, err := matrix.Hadamard(m, n)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 10, 12, 12, 10, 6}, prod.ToVector())

	_ = matrix.Scale(m, 3)
	_ = matrix.AddScalar(m, 3)
	_ = matrix.Apply(m, func(_, _ int, v float64) float64 { return -v })

	require.True(t, m.Equal(mBefore))
	require.True(t, n.Equal(nBefore))

	// The result owns its storage.
	sum.Scale(0)
	require.True(t, m.Equal(mBefore))
}

// TestElementwise_MatchesGonum cross-checks Add/Sub/Hadamard against gonum.
func TestElementwise_MatchesGonum(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 4, 5, 11)
	b := RandomDense(t, 4, 5, 22)
	ga, gb := toGonum(a), toGonum(b)

	var want mat.Dense

	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	want.Add(ga, gb)
	requireMatchesGonum(t, &want, got)

	got, err = matrix.Sub(a, b)
	require.NoError(t, err)
	want.Sub(ga, gb)
	requireMatchesGonum(t, &want, got)

	got, err = matrix.Hadamard(a, b)
	require.NoError(t, err)
	want.MulElem(ga, gb)
	requireMatchesGonum(t, &want, got)

	want.Scale(0.25, ga)
	requireMatchesGonum(t, &want, matrix.Scale(a, 0.25))
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
