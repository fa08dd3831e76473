// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/matrix"
)

// Constructor produces a matrix under the resolved configuration.
// Constructors validate their parameters first and never panic.
type Constructor func(cfg builderConfig) (*matrix.Adjacency, error)

// Build resolves opts and runs con. Errors are wrapped as "Build: %w";
// branch on them with errors.Is against the package sentinels.
func Build(con Constructor, opts ...BuilderOption) (*matrix.Adjacency, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrUnknownTopology)
	}
	a, err := con(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return a, nil
}

// topologies maps CLI names to constructors taking a vertex count. Grid uses
// the most square factorisation of n; bipartite splits n in half.
var topologies = map[string]func(n int, p float64) Constructor{
	"path":      func(n int, _ float64) Constructor { return Path(n) },
	"cycle":     func(n int, _ float64) Constructor { return Cycle(n) },
	"star":      func(n int, _ float64) Constructor { return Star(n) },
	"wheel":     func(n int, _ float64) Constructor { return Wheel(n) },
	"complete":  func(n int, _ float64) Constructor { return Complete(n) },
	"bipartite": func(n int, _ float64) Constructor { return CompleteBipartite(n/2, n-n/2) },
	"grid": func(n int, _ float64) Constructor {
		r := squareFactor(n)
		return Grid(r, n/r)
	},
	"random": func(n int, p float64) Constructor { return RandomSparse(n, p) },
}

// Names lists the topologies ByName accepts, sorted.
func Names() []string {
	out := make([]string, 0, len(topologies))
	for k := range topologies {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName returns the constructor for topology name over n vertices; p is
// used by "random" only.
func ByName(name string, n int, p float64) (Constructor, error) {
	fn, ok := topologies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownTopology, name, Names())
	}

	return fn(n, p), nil
}

// squareFactor returns the largest divisor of n not above sqrt(n).
func squareFactor(n int) int {
	best := 1
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			best = d
		}
	}

	return best
}

// checkSize validates n against min and core.MaxVertices.
func checkSize(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if n > core.MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, core.MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// link sets u→v, and v→u unless directed.
func link(a *matrix.Adjacency, cfg builderConfig, u, v int) {
	_ = a.Set(u, v, true)
	if !cfg.directed {
		_ = a.Set(v, u, true)
	}
}
