// Package matrix provides the square boolean adjacency storage used by the
// visualizer's graph model.
//
// What
//
//   - Adjacency: an n×n row-major boolean buffer with checked (At/Set) and
//     unchecked (Has) accessors.
//   - FromRows ingests 0/1 integer rows as read from a graph file.
//   - IsSymmetric decides undirected vs. directed rendering, stopping at the
//     first mismatching pair.
//
// Errors
//
//   - ErrBadShape     if n ≤ 0.
//   - ErrNonSquare    if ingested rows are ragged or not n×n.
//   - ErrNonBinary    if an ingested entry is neither 0 nor 1.
//   - ErrOutOfRange   for At/Set with an index outside [0,n).
//   - ErrNilMatrix    for operations on a nil receiver.
//
// Complexity
//
//   - NewAdjacency/FromRows/Clone: O(n²); At/Set/Has: O(1);
//     IsSymmetric: O(n²) worst case, O(1) best case.
package matrix
