// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for ingestion checks on raw integer rows.
//  - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures rows is a non-empty n×n table.
//
// Errors: ErrBadShape if rows is empty, ErrNonSquare if any row length differs from len(rows).
// Complexity: O(n).
func ValidateSquare(rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateSquare", ErrBadShape)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d has %d entries, want %d", i, len(rows[i]), n), ErrNonSquare)
		}
	}

	return nil
}

// ValidateBinary ensures every entry of rows is 0 or 1.
// Assumes the shape was already checked.
// Complexity: O(n²).
func ValidateBinary(rows [][]int) error {
	for i := range rows {
		for j, v := range rows[i] {
			if v != 0 && v != 1 {
				return validatorErrorf(fmt.Sprintf("ValidateBinary: entry (%d,%d)=%d", i, j, v), ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i,j < n.
func ValidateIndex(n, i, j int) error {
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrOutOfRange
	}

	return nil
}
