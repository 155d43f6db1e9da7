// Package graph implements the bidirected sequence graph (VG): vertices
// carrying a DNA label and two ends, edges joining specific ends, and
// reference walks indexed by vertex. The graph is mutable during
// ingestion and becomes read-only once Freeze is called.
package graph
