// Package povu decomposes a bidirected variation graph into a nested
// tree of regions of variation (RoVs) and the allelic walks through
// them.
//
// A decomposition run proceeds in eight stages: ingest a graph.VG,
// build a spantree.Tree over a synthetic root, assign cycleeq
// equivalence classes to its tree edges, assemble a pvst.Tree from
// those classes, select a call set and generate eligible rov.RoVs,
// enumerate bounded walks across each RoV with walkenum, and pair those
// walks against reference itineraries with overlay to type variants and
// detect tangled references. Decompose wires all eight stages together
// and fans the last two out across disjoint RoVs.
//
// Every fallible operation returns an error carrying one of the kinds
// in package errs; there is no global error state. Progress and warning
// narration goes to an injected Sink rather than a package-level
// logger, so a library consumer controls all I/O.
package povu
