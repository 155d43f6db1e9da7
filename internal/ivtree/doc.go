// Package ivtree is a static containment index over closed integer
// intervals, adapted from the project's original sorted-slice interval
// tree. It answers "which of these candidate regions directly contains
// which other", used by package pvst to nest flubble regions by their
// DFS-number span, and "which intervals cover or sit inside a query
// interval" (Supersets, Subsets).
//
// The index is built once from a fixed slice of intervals and never
// mutated afterwards; there is no insert/delete, only Supersets,
// Subsets and the parent/child walk recovered from the same
// containment stack the constructor already computes.
package ivtree
