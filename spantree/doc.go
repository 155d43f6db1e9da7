// Package spantree builds a DFS spanning tree over a bidirected graph
// (§4.2) and provides the bracket-list arena (§4.3) the cycle-equivalence
// pass in package cycleeq mutates during its post-order walk.
//
// A spanning-tree node is not a graph.VG vertex but a vertex *side*: the
// tuple (vertex, end). Two sides per vertex are linked by an implicit
// internal edge (crossing the vertex itself), and a synthetic root is
// connected to every side so the whole augmented graph — disconnected
// VG components included — forms a single DFS tree with the dummy root
// at its apex, per §4.2's "DFS from a synthetic dummy root connected to
// every VG end".
package spantree
