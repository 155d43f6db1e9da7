// Package walkenum implements the bounded walk enumerator of §4.7: a
// depth-bounded DFS between two VG sides that tracks orientation
// across bidirected edges and reports EnumerationBound when the bound
// is exhausted without reaching the target.
package walkenum
