// Package rov implements the RoV (Region of Variation) generator of
// §4.6: a DFS over a built pvst.Tree that calls eligible vertices
// (those whose endpoints every reference in the call-set visits),
// prefers the deepest eligible vertex along any ancestor chain, and
// optionally narrows the result to a single genomic region.
package rov
