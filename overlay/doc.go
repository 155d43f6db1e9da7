// Package overlay implements §4.8: pairing each enumerated walk of a
// RoV against the reference walks that visit it, recording allele
// slices and per-reference loop counts, and typing the variant a pair
// of walks represents once the walk that matches a reference has been
// identified.
package overlay
