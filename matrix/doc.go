// Package matrix provides a small, bounds-checked dense matrix for
// row-major float64 data.
//
// The matrix package provides:
//
//   - Dense: a rows×cols grid backed by one flat slice (offset = i*cols + j).
//   - In-place kernels on *Dense (Add, Sub, Hadamard, Scale, Dot, Transpose,
//     Map, Random) that mutate the receiver and return it for chaining.
//   - Non-mutating package functions of the same names that clone the first
//     operand before delegating, so both inputs stay untouched.
//   - Conversions to and from flat vectors and [][]float64 grids.
//
// Every operation that takes a matrix operand validates shapes before it
// touches the receiver: a failed call never leaves a half-updated matrix.
// Failures are reported with the sentinels in errors.go (ErrShapeMismatch,
// ErrTypeMismatch, ...) and can be matched with errors.Is.
//
// Floating-point edge cases produced by arithmetic (overflow, NaN) are not
// trapped; they flow through as ordinary IEEE-754 values. Only raw grid
// ingestion (FromRows, SetRows) rejects non-finite cells.
//
// See the examples in this package for usage patterns.
package matrix
