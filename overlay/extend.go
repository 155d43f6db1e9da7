package overlay

import "github.com/povu-project/povu/graph"

// extendRight reports whether, advancing both w (from wStart) and r
// (from rStart) forward, the next length steps agree exactly in
// (v_id, orientation). Out-of-range requests are false, never a panic.
func extendRight(r, w graph.Walk, wStart, rStart, length int) bool {
	if wStart+length > len(w) || rStart+length > len(r) {
		return false
	}
	for i := 0; i < length; i++ {
		if w[wStart+i] != r[rStart+i] {
			return false
		}
	}
	return true
}

// extendLeft reports whether w's length steps ending at wStart (going
// backward) agree with r's length steps ending at rStart, with r read
// backward and its orientation flipped at each step.
func extendLeft(r, w graph.Walk, wStart, rStart, length int) bool {
	if wStart-length+1 < 0 || rStart-length+1 < 0 {
		return false
	}
	for i := 0; i < length; i++ {
		ws := w[wStart-i]
		rs := r[rStart-i]
		if ws.V != rs.V || ws.Or != rs.Or.Flip() {
			return false
		}
	}
	return true
}

// longestPrefix finds the longest length in [0, max] for which
// extendRight(r, w, wStart, rStart, length) holds. extendRight's
// agreement is prefix-closed (if length steps agree, any shorter
// count does too), so a binary search suffices.
func longestPrefix(r, w graph.Walk, wStart, rStart, max int) int {
	lo, hi := 0, max
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if extendRight(r, w, wStart, rStart, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// longestSuffix finds the longest length in [0, max] for which
// extendLeft(r, w, wEnd, rEnd, length) holds.
func longestSuffix(r, w graph.Walk, wEnd, rEnd, max int) int {
	lo, hi := 0, max
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if extendLeft(r, w, wEnd, rEnd, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// commonPrefixLen and commonSuffixLen compare two walks directly, in
// the same orientation throughout, unlike extendLeft's reversed-and-
// flipped reading (which pairing uses to detect a reference segment
// read backward through an inversion). Variant typing's interior
// segment is bounded by these, not by extendLeft.
func commonPrefixLen(a, b graph.Walk, max int) int {
	n := 0
	for n < max && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffixLen(a, b graph.Walk, max int) int {
	n := 0
	for n < max && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
