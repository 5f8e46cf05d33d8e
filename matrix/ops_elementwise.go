// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise arithmetic in two explicit variants: scalar (AddScalar,
//     SubScalar, Scale) and same-shape matrix (Add, Sub, Hadamard).
//   - Each variant exists as an in-place method on *Dense (mutates and returns
//     the receiver) and as a package function that clones the first operand.
//
// Design:
//   - The scalar/matrix split is made by the caller through the method name;
//     no runtime inspection of the operand type takes place.
//   - One private kernel (ewBinary) owns validation and the flat loop for all
//     matrix-operand forms.
//
// Determinism & Performance:
//   - Fixed flat loop 0..n-1 over the row-major buffer.
//   - In-place forms allocate nothing; package forms allocate one clone.

package matrix

// ewBinary applies out[idx] = op(m[idx], o[idx]) in place on m.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, o); wrap failures with opTag.
//   - Stage 2: single flat loop over both buffers.
//
// Behavior highlights:
//   - The receiver is untouched when validation fails.
//   - o may be m itself (e.g. m.Add(m) doubles every cell).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ewBinary(m, o *Dense, op func(a, b float64) float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] = op(m.data[idx], o.data[idx])
	}

	return m, nil
}

// ewScalar applies m[idx] = op(m[idx], s) in place on m.
// Complexity: O(r*c).
func ewScalar(m *Dense, s float64, op func(a, b float64) float64) *Dense {
	for idx := range m.data {
		m.data[idx] = op(m.data[idx], s)
	}

	return m
}

func plus(a, b float64) float64  { return a + b }
func minus(a, b float64) float64 { return a - b }
func times(a, b float64) float64 { return a * b }

// Add sets m[i,j] += o[i,j] and returns m.
// Errors: ErrNilMatrix, ErrShapeMismatch (receiver untouched).
// Complexity: O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) { return ewBinary(m, o, plus, opAdd) }

// Sub sets m[i,j] -= o[i,j] and returns m.
// Errors: ErrNilMatrix, ErrShapeMismatch (receiver untouched).
// Complexity: O(r*c).
func (m *Dense) Sub(o *Dense) (*Dense, error) { return ewBinary(m, o, minus, opSub) }

// Hadamard sets m[i,j] *= o[i,j] (element-wise product) and returns m.
// Errors: ErrNilMatrix, ErrShapeMismatch (receiver untouched).
// Complexity: O(r*c).
func (m *Dense) Hadamard(o *Dense) (*Dense, error) { return ewBinary(m, o, times, opHadamard) }

// AddScalar adds s to every cell and returns m.
func (m *Dense) AddScalar(s float64) *Dense { return ewScalar(m, s, plus) }

// SubScalar subtracts s from every cell and returns m.
func (m *Dense) SubScalar(s float64) *Dense { return ewScalar(m, s, minus) }

// Scale multiplies every cell by alpha and returns m.
func (m *Dense) Scale(alpha float64) *Dense { return ewScalar(m, alpha, times) }

// cloneOperand validates a and returns its deep copy, tagging errors with opTag.
func cloneOperand(a *Dense, opTag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return a.Clone(), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Neither operand is modified and the result shares no storage with them.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	c, err := cloneOperand(a, opAdd)
	if err != nil {
		return nil, err
	}

	return c.Add(b)
}

// Sub computes the element-wise difference C = A − B into a fresh result.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	c, err := cloneOperand(a, opSub)
	if err != nil {
		return nil, err
	}

	return c.Sub(b)
}

// Hadamard computes the element-wise product C = A ⊙ B into a fresh result.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	c, err := cloneOperand(a, opHadamard)
	if err != nil {
		return nil, err
	}

	return c.Hadamard(b)
}

// AddScalar returns a + s (every cell) as a new matrix.
func AddScalar(a *Dense, s float64) *Dense { return a.Clone().AddScalar(s) }

// SubScalar returns a − s (every cell) as a new matrix.
func SubScalar(a *Dense, s float64) *Dense { return a.Clone().SubScalar(s) }

// Scale returns α*a as a new matrix.
func Scale(a *Dense, alpha float64) *Dense { return a.Clone().Scale(alpha) }

// Apply returns a copy of m with f applied to every cell; m is unchanged.
// Complexity: O(r*c).
func Apply(m *Dense, f func(i, j int, v float64) float64) *Dense {
	return m.Clone().Map(f)
}
