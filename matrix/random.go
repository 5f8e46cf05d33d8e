// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/rand"
)

// Random fills every cell with a uniform value in [0, max) and returns m.
// When asInteger is true each value is rounded to the nearest integer
// (so the range becomes {0, ..., round(max)}).
//
// rng selects the source; nil uses the math/rand top-level source, which is
// safe for concurrent use but not reproducible. Pass a seeded *rand.Rand for
// deterministic fills (a *rand.Rand itself is not safe for concurrent use).
//
// Complexity: O(r*c).
func (m *Dense) Random(rng *rand.Rand, max float64, asInteger bool) *Dense {
	next := rand.Float64 //nolint:gosec // weight initialization is not security-critical
	if rng != nil {
		next = rng.Float64
	}

	return m.Map(func(_, _ int, _ float64) float64 {
		v := next() * max
		if asInteger {
			return math.Round(v)
		}
		return v
	})
}

// NewRandom allocates a rows×cols matrix and fills it via Random.
//
// Errors:
//   - ErrInvalidDimensions.
func NewRandom(rows, cols int, rng *rand.Rand, max float64, asInteger bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return m.Random(rng, max, asInteger), nil
}
