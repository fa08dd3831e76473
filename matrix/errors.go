// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Validators return these sentinels unwrapped; call sites wrap them once with
// context via fmt.Errorf("ctx: %w", ErrX) and callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonBinary signals an ingested entry other than 0 or 1.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Adjacency was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
