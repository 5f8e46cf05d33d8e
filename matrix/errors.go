// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// operation context via %w) and tests MUST check them via errors.Is.
// No kernel panics on caller-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> cell type -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Hadamard on different shapes, Dot where a.Cols != b.Rows,
	// or raw grid data that does not match the declared rows/cols.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrTypeMismatch indicates a raw grid cell that is not a usable number
	// (NaN or ±Inf). Grids are rejected, never coerced.
	ErrTypeMismatch = errors.New("matrix: cell is not a finite number")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
