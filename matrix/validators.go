// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/grid checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Rows %d vs %d", a.Rows(), b.Rows()), ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: Columns %d vs %d", a.Cols(), b.Cols()), ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrShapeMismatch,
		)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is treated as length 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrShapeMismatch)
	}

	return nil
}

// ValidateFinite reports ErrTypeMismatch on the first NaN or ±Inf value.
// Time: O(n). Space: O(1).
func ValidateFinite(values []float64) error {
	for idx, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: index %d", idx), ErrTypeMismatch)
		}
	}

	return nil
}

// ValidateGrid checks raw grid data against a declared rows×cols shape.
//
// Implementation:
//   - Stage 1: row count must equal rows (ErrShapeMismatch).
//   - Stage 2: every row length must equal cols (ErrShapeMismatch).
//   - Stage 3: every cell must be finite (ErrTypeMismatch).
//
// Behavior highlights:
//   - Shape problems are reported before cell problems, whatever their position.
//   - Never coerces: ragged rows are neither padded nor truncated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ValidateGrid(rows, cols int, grid [][]float64) error {
	if len(grid) != rows {
		return validatorErrorf(fmt.Sprintf("ValidateGrid: %d rows, want %d", len(grid), rows), ErrShapeMismatch)
	}
	var i int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateGrid: row %d has %d cols, want %d", i, len(grid[i]), cols),
				ErrShapeMismatch,
			)
		}
	}
	for i = 0; i < rows; i++ {
		if err := ValidateFinite(grid[i]); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateGrid: row %d", i), err)
		}
	}

	return nil
}
