// SPDX-License-Identifier: MIT

package activation

import "errors"

// ErrNilFunc is returned by NewFuncs and Validate when a function is missing.
var ErrNilFunc = errors.New("activation: nil function")
