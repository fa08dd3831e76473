// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrTooManyVertices indicates a size above core.MaxVertices.
	ErrTooManyVertices = errors.New("builder: parameter too large")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrUnknownTopology indicates a name ByName does not know.
	ErrUnknownTopology = errors.New("builder: unknown topology")
)
