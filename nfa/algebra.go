package nfa

// Union builds the automaton for L(a) ∪ L(b). The result's states are
// laid out as [0, a.1..a.size-1, b.1..b.size-1]: both operands' start
// states are merged into state 0, and each operand's interior states
// keep their relative order in their own block (spec.md §4.4).
func Union[L comparable](a, b *NFA[L]) *NFA[L] {
	size := a.Size + b.Size - 1
	out := New[L](size)

	mapB := func(i int) int {
		if i == 0 {
			return 0
		}
		return a.Size - 1 + i
	}

	for i := 0; i < a.Size; i++ {
		for j := 0; j < a.Size; j++ {
			if lbl, ok := a.Transition(i, j); ok {
				out.SetTransition(i, j, lbl)
			}
		}
	}
	for i := 0; i < b.Size; i++ {
		for j := 0; j < b.Size; j++ {
			if lbl, ok := b.Transition(i, j); ok {
				out.SetTransition(mapB(i), mapB(j), lbl)
			}
		}
	}

	out.Accept[0] = a.Accept[0] || b.Accept[0]
	for i := 1; i < a.Size; i++ {
		out.Accept[i] = a.Accept[i]
	}
	for i := 1; i < b.Size; i++ {
		out.Accept[mapB(i)] = b.Accept[i]
	}
	return out
}

// Concat builds the automaton for L(a) · L(b). If either operand is
// empty the result is empty. Otherwise every A-state accepting in A has
// B's row-0 outgoing edges spliced into the B block of its row, so that
// reaching an accepting A-state transparently continues into B (spec.md
// §4.4).
func Concat[L comparable](a, b *NFA[L]) *NFA[L] {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty[L]()
	}
	size := a.Size + b.Size - 1
	out := New[L](size)

	mapB := func(i int) int {
		return a.Size - 1 + i
	}

	for i := 0; i < a.Size; i++ {
		for j := 0; j < a.Size; j++ {
			if lbl, ok := a.Transition(i, j); ok {
				out.SetTransition(i, j, lbl)
			}
		}
	}
	for i := 1; i < b.Size; i++ {
		for j := 1; j < b.Size; j++ {
			if lbl, ok := b.Transition(i, j); ok {
				out.SetTransition(mapB(i), mapB(j), lbl)
			}
		}
	}
	for i := 0; i < a.Size; i++ {
		if !a.Accept[i] {
			continue
		}
		for j := 1; j < b.Size; j++ {
			if lbl, ok := b.Transition(0, j); ok {
				out.SetTransition(i, mapB(j), lbl)
			}
		}
	}

	for i := 0; i < a.Size; i++ {
		out.Accept[i] = a.Accept[i] && b.Accept[0]
	}
	for i := 1; i < b.Size; i++ {
		out.Accept[mapB(i)] = b.Accept[i]
	}
	return out
}
