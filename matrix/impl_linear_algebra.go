// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the network:
// matrix product (Dot) and transpose, each in an in-place method form and a
// non-mutating package-function form. All functions perform strict
// fail-fast validation and return clear errors on shape mismatches.
//
// Notes:
//   - Elementwise kernels live in ops_elementwise.go.
//   - All kernels use the central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for sum-of-products cells.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDot       = "Dot"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// product computes a·b into a freshly allocated buffer.
// Every cell is the plain left-to-right sum of pairwise products
// a[i,k]*b[k,j] for k = 0..n-1: no zero skipping, no reordering, so
// IEEE-754 values (including NaN/Inf) propagate exactly as written.
//
// Determinism:
//   - Fixed i→j→k loop order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func product(a, b *Dense) []float64 {
	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]float64, aRows*bCols)
	var (
		i, j, k    int
		rowOffsetA int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				// a.data layout: i*aCols + k ; b.data layout: k*bCols + j
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			out[i*bCols+j] = sum
		}
	}

	return out
}

// Dot replaces the receiver with the matrix product m·o and returns it.
// MAIN DESCRIPTION:
//   - Standard matrix product; the receiver's shape becomes m.Rows()×o.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, o) (nil, m.Cols == o.Rows).
//   - Stage 2: compute the product into a new buffer (o may alias m).
//   - Stage 3: swap the buffer and column count into the receiver.
//
// Behavior highlights:
//   - On error the receiver is untouched (validation precedes any write).
//   - m.Dot(m) is legal for square m: the product is computed before the swap.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (from Stage 1).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Dot(o *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	m.data = product(m, o)
	m.c = o.c

	return m, nil
}

// Dot returns a·b as a new matrix; neither operand is modified.
// It clones a and delegates to (*Dense).Dot.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*n + r*c).
func Dot(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	return a.Clone().Dot(b)
}

// Transpose replaces the receiver with its transpose and returns it.
// Shape swaps from r×c to c×r; data[i*c + j] moves to data[j*r + i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new buffer.
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	out := make([]float64, len(m.data))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = m.data[baseSrc+j]
		}
	}
	m.r, m.c, m.data = cols, rows, out

	return m
}

// Transpose returns mᵀ as a new matrix, leaving m unchanged.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Clone().Transpose(), nil
}
