// SPDX-License-Identifier: MIT

package solver

import "errors"

// ErrMalformedProblem is returned when the input does not describe an n×n
// system: a bad or missing n, too few numbers, non-numeric tokens, or
// operands of the wrong shape.
var ErrMalformedProblem = errors.New("solver: malformed problem")
