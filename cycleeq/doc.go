// Package cycleeq implements the bracket-list cycle-equivalence pass of
// §4.4: a post-order walk over a spantree.Tree that assigns each tree
// edge a class id such that two tree edges share a class iff they are
// cut by the same set of fundamental cycles. This is the
// Johnson-Pedersen-style bracket-list algorithm.
package cycleeq
