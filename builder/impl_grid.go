// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
)

const (
	methodGrid      = "Grid"
	methodBipartite = "CompleteBipartite"
	minGridDim      = 1
	minPartSize     = 1
)

// Grid builds a rows×cols 4-neighbourhood grid; vertex r*cols+c is cell
// (r,c) and edges point right and down.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := checkSize(methodGrid, rows*cols, core.MinVertices); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(rows * cols)
		if err != nil {
			return nil, err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					link(a, cfg, u, u+1)
				}
				if r+1 < rows {
					link(a, cfg, u, u+cols)
				}
			}
		}

		return a, nil
	}
}

// CompleteBipartite builds K_{n1,n2}: left side 0..n1-1, right side
// n1..n1+n2-1, edges left→right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if n1 < minPartSize || n2 < minPartSize {
			return nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		if err := checkSize(methodBipartite, n1+n2, core.MinVertices); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n1 + n2)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				link(a, cfg, i, j)
			}
		}

		return a, nil
	}
}
