package ast

import "github.com/delook/delook/internal/conv"

// PositionCount returns N, the number of distinct linearized positions
// in the tree (the highest Symbol.Index, since indices are dense in
// [1..N] per INV-2). Package nfa uses this to size its state matrix:
// one state per position plus the start state.
func PositionCount(root *Node) int {
	max := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind {
		case Symbol:
			if n.Index > max {
				max = n.Index
			}
		default:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(root)
	return max
}

// boundsCheck panics if n would overflow the uint32 index space the
// automaton packages use — a pattern this large is a construction bug,
// not a user error (spec.md §7), matching internal/conv's panic policy.
func boundsCheck(n int) {
	conv.IntToUint32(n)
}
