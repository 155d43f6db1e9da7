// Package pvst builds the Panagenome Variation Structure Tree of §4.5
// from a spanning tree whose edges already carry cycle-equivalence
// classes (package cycleeq). Each non-trivial class becomes a flubble
// vertex; family-refinement passes then reclassify flubbles into
// {tiny, parallel, concealed, smothered, midi} where their shape
// permits, and a clan pass marks direct subflubbles of a flubble
// parent. Nesting among regions is computed by reusing
// internal/ivtree's containment index over each region's span of
// spanning-tree discovery numbers, the same structural fact the
// original sorted-interval index was built to answer.
package pvst
