// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own the backing buffer exclusively: no constructor or accessor aliases caller memory.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); ToVector: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRow     = "Row"     // method tag used in error wrappers
	ctxCol     = "Col"     // method tag used in error wrappers
	ctxSetRows = "SetRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <sentinel>"; the sentinel stays
// reachable through errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 for every reachable value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromVector builds a column matrix (len(values)×1) from a flat sequence.
// The values are copied; later writes to the slice do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when values is empty.
//   - ErrTypeMismatch when a value is NaN or ±Inf.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromVector(values []float64) (*Dense, error) {
	m, err := NewDense(len(values), 1)
	if err != nil {
		return nil, fmt.Errorf("FromVector: %w", err)
	}
	if err = ValidateFinite(values); err != nil {
		return nil, fmt.Errorf("FromVector: %w", err)
	}
	copy(m.data, values)

	return m, nil
}

// FromRows builds a matrix whose shape is inferred from grid
// (len(grid) rows, len(grid[0]) cols) and whose cells are copied from it.
//
// Implementation:
//   - Stage 1: infer the shape; reject an empty grid or empty first row.
//   - Stage 2: ValidateGrid against the inferred shape (ragged rows, NaN/Inf).
//   - Stage 3: copy rows into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeMismatch, ErrTypeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(grid [][]float64) (*Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(grid), len(grid[0]))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	if err = m.SetRows(grid); err != nil {
		return nil, err
	}

	return m, nil
}

// SetRows replaces the matrix contents with a copy of grid.
// The grid must match the declared shape exactly and hold only finite
// values; on any violation the receiver is left untouched.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrTypeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) SetRows(grid [][]float64) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetRows, ErrNilMatrix)
	}
	// Validate everything first so a failure never leaves a partial copy.
	if err := ValidateGrid(m.r, m.c, grid); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxSetRows, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		copy(m.data[i*m.c:(i+1)*m.c], grid[i])
	}

	return nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method name and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel instead.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Arithmetic values are stored as-is (NaN/Inf included); only raw grid
// ingestion applies the finite-only policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original and vice versa.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// ToVector flattens the matrix into a new slice in row-major order.
// For a column vector this is the natural "array" view of its values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) ToVector() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// ToRows returns a fresh [][]float64 copy of the grid.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether o has the same shape and bit-identical cells.
// NaN cells never compare equal, matching IEEE-754 semantics.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx, v := range m.data {
		if v != o.data[idx] {
			return false
		}
	}

	return true
}

// String is a HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Map replaces each element with f(i,j,v) in place and returns the receiver.
// MAIN DESCRIPTION:
//   - The general-purpose primitive behind activation application and random fill.
//
// Implementation:
//   - Stage 1: nested loops - rows then cols; compute base offset per row.
//   - Stage 2: write f(i,j,v) back into the same cell.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Non-finite results are stored unchanged (no numeric trapping).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Map(f func(i, j int, v float64) float64) *Dense {
	var i, j, base int

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return m
}
