package nfa

import (
	"sort"

	"github.com/delook/delook/internal/sparse"
)

// wildcard is the label used for the "any character" position during
// construction; Intersect treats it as matching any concrete label on
// either operand (spec.md §9, "Wildcard asymmetry" — this repo takes
// the preferred symmetric reading rather than the left-only one).
const wildcard rune = '.'

// epsilonMarker identifies the seed product state (0, epsilon-marker,
// 0); it is not a real alphabet character so it can never collide with
// a linearized position's label.
const epsilonMarker rune = 0

type productEdge struct {
	label rune
	to    int
}

// Intersect builds the automaton for L(a) ∩ L(b) via product
// construction: forward BFS discovers reachable product states
// (a_idx, label, b_idx), then a backward pass over incoming edges from
// every accepting state prunes states that can never reach acceptance
// (spec.md §4.4). The surviving states are renumbered so the seed keeps
// index 0, in ascending discovery order for determinism.
func Intersect(a, b *NFA[rune]) *NFA[rune] {
	type key struct {
		a, b  int
		label rune
	}
	index := map[key]int{}
	var aIdx, bIdx []int
	var accept []bool
	var edges [][]productEdge
	var incoming [][]int

	newState := func(ai, bi int, lbl rune) (int, bool) {
		k := key{ai, bi, lbl}
		if idx, ok := index[k]; ok {
			return idx, false
		}
		idx := len(aIdx)
		index[k] = idx
		aIdx = append(aIdx, ai)
		bIdx = append(bIdx, bi)
		accept = append(accept, a.Accept[ai] && b.Accept[bi])
		edges = append(edges, nil)
		incoming = append(incoming, nil)
		return idx, true
	}

	seed, _ := newState(0, 0, epsilonMarker)
	queue := []int{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		ai, bi := aIdx[cur], bIdx[cur]
		for aj := 0; aj < a.Size; aj++ {
			c, ok := a.Transition(ai, aj)
			if !ok {
				continue
			}
			for bj := 0; bj < b.Size; bj++ {
				d, ok2 := b.Transition(bi, bj)
				if !ok2 {
					continue
				}
				lbl, matched := matchLabel(c, d)
				if !matched {
					continue
				}
				child, fresh := newState(aj, bj, lbl)
				if fresh {
					queue = append(queue, child)
				}
				edges[cur] = append(edges[cur], productEdge{label: lbl, to: child})
				incoming[child] = append(incoming[child], cur)
			}
		}
	}

	live := sparse.NewSparseSet(uint32(len(aIdx)))
	var backQueue []int
	for i, acc := range accept {
		if acc {
			live.Insert(uint32(i))
			backQueue = append(backQueue, i)
		}
	}
	for len(backQueue) > 0 {
		cur := backQueue[0]
		backQueue = backQueue[1:]
		for _, p := range incoming[cur] {
			if !live.Contains(uint32(p)) {
				live.Insert(uint32(p))
				backQueue = append(backQueue, p)
			}
		}
	}

	if !live.Contains(uint32(seed)) {
		return Empty[rune]()
	}

	ids := append([]uint32(nil), live.Values()...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	oldToNew := make(map[int]int, len(ids))
	oldToNew[seed] = 0
	next := 1
	for _, oid := range ids {
		o := int(oid)
		if o == seed {
			continue
		}
		oldToNew[o] = next
		next++
	}

	out := New[rune](next)
	for o, ni := range oldToNew {
		out.Accept[ni] = accept[o]
		for _, e := range edges[o] {
			if nj, ok := oldToNew[e.to]; ok {
				out.SetTransition(ni, nj, e.label)
			}
		}
	}
	return out
}

// matchLabel reports the label the product edge should carry when an
// A-transition labeled c and a B-transition labeled d are paired: equal
// labels pass through unchanged, a wildcard on either side yields the
// other side's concrete label, and incompatible concrete labels do not
// match.
func matchLabel(c, d rune) (rune, bool) {
	switch {
	case c == d:
		return c, true
	case c == wildcard:
		return d, true
	case d == wildcard:
		return c, true
	default:
		return 0, false
	}
}
