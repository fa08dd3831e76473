// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/bfsviz/matrix"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 2
)

// Path builds P_n: edges i→i+1 for i=0..n-2.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodPath, n, minPathNodes); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < n; i++ {
			link(a, cfg, i, i+1)
		}

		return a, nil
	}
}

// Cycle builds C_n: edges i→(i+1)%n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodCycle, n, minCycleNodes); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			link(a, cfg, i, (i+1)%n)
		}

		return a, nil
	}
}

// Star builds a star with centre 0: edges 0→i for i=1..n-1.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodStar, n, minStarNodes); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			link(a, cfg, 0, i)
		}

		return a, nil
	}
}

// Wheel builds W_n: centre 0 with spokes 0→i and rim 1→2→…→n-1→1.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodWheel, n, minWheelNodes); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}
		rim := n - 1
		for i := 1; i < n; i++ {
			link(a, cfg, 0, i)
			link(a, cfg, i, 1+i%rim)
		}

		return a, nil
	}
}

// Complete builds K_n without loops; directed emits i→j for i<j.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := checkSize(methodComplete, n, minCompleteNodes); err != nil {
			return nil, err
		}
		a, err := matrix.NewAdjacency(n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(a, cfg, i, j)
			}
		}

		return a, nil
	}
}
