// File: load.go
// Role: Graph file parsing.
//
// Format:
//   - whitespace/newline-delimited integers;
//   - first the vertex count n, MinVertices ≤ n ≤ MaxVertices;
//   - then n*n adjacency entries in row-major order, each 0 or 1.
//
// Tokens after the n² entries are ignored.
package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/bfsviz/matrix"
)

// Load parses a graph from r and returns it with no vertices placed.
//
// Implementation:
//   - Stage 1: Read and validate the vertex count (ErrInvalidVertexCount).
//   - Stage 2: Read exactly n² entries (ErrMalformedMatrix on missing,
//     unreadable or non-binary tokens).
//   - Stage 3: Build the matrix and delegate to NewGraph.
//
// Errors carry the offending token position; match them with errors.Is.
func Load(r io.Reader, opts ...GraphOption) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading vertex count: %v", ErrInvalidVertexCount, err)
		}
		return nil, fmt.Errorf("%w: missing vertex count", ErrInvalidVertexCount)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable vertex count %q", ErrInvalidVertexCount, sc.Text())
	}
	if n < MinVertices || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidVertexCount, n, MinVertices, MaxVertices)
	}

	adj, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n*n; k++ {
		i, j := k/n, k%n
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: reading entry (%d,%d): %v", ErrMalformedMatrix, i, j, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d entries", ErrMalformedMatrix, k, n*n)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable entry (%d,%d) %q", ErrMalformedMatrix, i, j, sc.Text())
		}
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: entry (%d,%d)=%d is not 0 or 1", ErrMalformedMatrix, i, j, v)
		}
		if err := adj.Set(i, j, v == 1); err != nil {
			return nil, err
		}
	}

	return NewGraph(adj, opts...)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string, opts ...GraphOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open graph file: %w", err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes adj in the format Load reads: the vertex count on the first
// line, then one row per line.
func Save(w io.Writer, adj *matrix.Adjacency) error {
	if adj == nil {
		return ErrNilAdjacency
	}
	if n := adj.Size(); n < MinVertices || n > MaxVertices {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidVertexCount, n, MinVertices, MaxVertices)
	}
	_, err := fmt.Fprintf(w, "%d\n%s", adj.Size(), adj.String())

	return err
}
