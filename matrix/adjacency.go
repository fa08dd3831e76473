// SPDX-License-Identifier: MIT

// Package matrix - boolean adjacency storage (row-major) & safe accessors.
//
// Purpose:
//   - Flat row-major buffer with the explicit index formula i*n + j.
//   - Safety at the public surface: At/Set return errors instead of panicking.
//   - Fixed loop orders, no map iteration, so every scan is deterministic.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// adjacencyErrorf wraps an error with the Adjacency method context and indices.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}

// Adjacency is a square boolean matrix.
//   - n holds the dimension.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// Entry (i,j) == true means the edge i→j exists.
type Adjacency struct {
	n    int
	data []bool
}

// NewAdjacency allocates an n×n matrix with no edges.
// Returns ErrBadShape for n ≤ 0.
// Complexity: O(n²).
func NewAdjacency(n int) (*Adjacency, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadShape)
	}

	return &Adjacency{n: n, data: make([]bool, n*n)}, nil
}

// FromRows builds an Adjacency from 0/1 integer rows.
// Stage 1 (Validate): square shape, binary entries.
// Stage 2 (Execute): copy into the flat buffer.
// Returns ErrBadShape, ErrNonSquare or ErrNonBinary (wrapped).
func FromRows(rows [][]int) (*Adjacency, error) {
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	if err := ValidateBinary(rows); err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	n := len(rows)
	a := &Adjacency{n: n, data: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.data[i*n+j] = rows[i][j] == 1
		}
	}

	return a, nil
}

// Size returns the matrix dimension n. A nil receiver has size 0.
func (a *Adjacency) Size() int {
	if a == nil {
		return 0
	}

	return a.n
}

// At returns entry (i,j).
func (a *Adjacency) At(i, j int) (bool, error) {
	if a == nil {
		return false, adjacencyErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if err := ValidateIndex(a.n, i, j); err != nil {
		return false, adjacencyErrorf(ctxAt, i, j, err)
	}

	return a.data[i*a.n+j], nil
}

// Set assigns entry (i,j).
func (a *Adjacency) Set(i, j int, v bool) error {
	if a == nil {
		return adjacencyErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if err := ValidateIndex(a.n, i, j); err != nil {
		return adjacencyErrorf(ctxSet, i, j, err)
	}
	a.data[i*a.n+j] = v

	return nil
}

// Has reports whether edge i→j exists. Out-of-range indices and a nil
// receiver read as false; this is the accessor traversal loops use.
func (a *Adjacency) Has(i, j int) bool {
	if a == nil || i < 0 || i >= a.n || j < 0 || j >= a.n {
		return false
	}

	return a.data[i*a.n+j]
}

// Row returns a copy of row i, or nil when i is out of range.
func (a *Adjacency) Row(i int) []bool {
	if a == nil || i < 0 || i >= a.n {
		return nil
	}
	out := make([]bool, a.n)
	copy(out, a.data[i*a.n:(i+1)*a.n])

	return out
}

// Rows exports the matrix as 0/1 integer rows (the inverse of FromRows).
func (a *Adjacency) Rows() [][]int {
	if a == nil {
		return nil
	}
	out := make([][]int, a.n)
	for i := 0; i < a.n; i++ {
		out[i] = make([]int, a.n)
		for j := 0; j < a.n; j++ {
			if a.data[i*a.n+j] {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Clone returns a deep copy.
func (a *Adjacency) Clone() *Adjacency {
	if a == nil {
		return nil
	}
	data := make([]bool, len(a.data))
	copy(data, a.data)

	return &Adjacency{n: a.n, data: data}
}

// IsSymmetric reports whether a[i][j] == a[j][i] for all i, j.
// The scan covers the upper triangle and returns at the first mismatch.
func (a *Adjacency) IsSymmetric() bool {
	_, _, found := a.FirstAsymmetry()

	return !found
}

// FirstAsymmetry returns the first pair (i,j), i<j in row-major order,
// with a[i][j] != a[j][i]. ok is false when the matrix is symmetric.
func (a *Adjacency) FirstAsymmetry() (i, j int, ok bool) {
	if a == nil {
		return 0, 0, false
	}
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// EdgeCount returns the number of true entries.
func (a *Adjacency) EdgeCount() int {
	if a == nil {
		return 0
	}
	count := 0
	for _, v := range a.data {
		if v {
			count++
		}
	}

	return count
}

// String renders the matrix as rows of 0/1 separated by spaces.
func (a *Adjacency) String() string {
	if a == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < a.n; i++ {
		for j := 0; j < a.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			if a.data[i*a.n+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
