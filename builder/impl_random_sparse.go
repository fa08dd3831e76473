// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples each pair independently with probability p. Pairs
// are visited in row-major order; undirected graphs sample i<j once,
// directed graphs sample every ordered pair i≠j.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodRandomSparse, n, core.MinVertices); err != nil {
			return nil, err
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true sampling
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}

		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!cfg.directed && j < i) {
					continue
				}
				if keep() {
					link(a, cfg, i, j)
				}
			}
		}

		return a, nil
	}
}
