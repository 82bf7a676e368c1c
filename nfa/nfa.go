// Package nfa implements the position-automaton data structure and its
// algebra: construction from a linearized position tree, the union,
// concat, and intersect operators, and the supporting invariants spelled
// out for the generic "size x size matrix of labeled transitions"
// automaton (spec.md §3-4.4).
//
// The type is generic over its label, matching the teacher's own habit
// of parameterizing a single automaton type over its label rather than
// maintaining near-duplicate structs (Design Note, spec.md §9). This
// repo instantiates only NFA[rune]; state elimination (package elim)
// keeps its own string-labeled matrix rather than an NFA[string].
package nfa

import "strings"

// transition is the matrix cell type: Set distinguishes "no transition"
// from a transition labeled with the zero value of L.
type transition[L comparable] struct {
	Set   bool
	Label L
}

// NFA is a generic position automaton over label type L. State 0 is
// always the unique start state; Accept marks every accepting state.
// Trans[i][j] holds the (at most one) label on the edge i -> j.
type NFA[L comparable] struct {
	Size   int
	Accept []bool
	Trans  [][]transition[L]
}

// New allocates an NFA with size states, all non-accepting and with no
// transitions.
func New[L comparable](size int) *NFA[L] {
	trans := make([][]transition[L], size)
	for i := range trans {
		trans[i] = make([]transition[L], size)
	}
	return &NFA[L]{
		Size:   size,
		Accept: make([]bool, size),
		Trans:  trans,
	}
}

// SetTransition labels the edge i -> j with label, overwriting any
// existing label (callers are responsible for the "at most one label
// per ordered pair" invariant, INV-3).
func (a *NFA[L]) SetTransition(i, j int, label L) {
	a.Trans[i][j] = transition[L]{Set: true, Label: label}
}

// Transition returns the label on edge i -> j, if any.
func (a *NFA[L]) Transition(i, j int) (L, bool) {
	t := a.Trans[i][j]
	return t.Label, t.Set
}

// HasSelfLoop reports whether state i has a transition to itself.
func (a *NFA[L]) HasSelfLoop(i int) bool {
	_, ok := a.Transition(i, i)
	return ok
}

// IsEmpty reports whether a recognizes the empty language: exactly the
// shape produced by Empty() — one non-accepting state with no
// self-loop (spec.md §4.3).
func (a *NFA[L]) IsEmpty() bool {
	return a.Size == 1 && !a.Accept[0] && !a.HasSelfLoop(0)
}

// String renders a debug view of the automaton: one line per state
// listing its accept status and outgoing edges. This is a supplemented
// diagnostic, not part of the core contract (SPEC_FULL.md §5), grounded
// on the teacher's StateKind.String() rendering habit in nfa/nfa.go.
func (a *NFA[L]) String() string {
	var b strings.Builder
	for i := 0; i < a.Size; i++ {
		if a.Accept[i] {
			b.WriteString("*")
		}
		b.WriteString(stateLabel(i))
		b.WriteString(":")
		first := true
		for j := 0; j < a.Size; j++ {
			lbl, ok := a.Transition(i, j)
			if !ok {
				continue
			}
			if !first {
				b.WriteString(",")
			}
			first = false
			b.WriteString(" -")
			b.WriteString(anyToString(lbl))
			b.WriteString("-> ")
			b.WriteString(stateLabel(j))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func stateLabel(i int) string {
	return "s" + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func anyToString(v any) string {
	switch t := v.(type) {
	case rune:
		return string(t)
	case string:
		return t
	default:
		return ""
	}
}
