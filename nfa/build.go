package nfa

import "github.com/delook/delook/ast"

// Empty returns the automaton recognizing the empty language: a single
// non-accepting state with no transitions (spec.md §4.3).
func Empty[L comparable]() *NFA[L] {
	return New[L](1)
}

// Epsilon returns the automaton recognizing {""}: a single accepting
// state with no transitions.
func Epsilon[L comparable]() *NFA[L] {
	a := New[L](1)
	a.Accept[0] = true
	return a
}

// Build constructs a position automaton from a linearized position
// tree: states 0..N where N is the tree's position count, state 0 the
// unique start. For every p in first(root) it adds the edge 0 -> p
// labeled with p's character; for every (p,q) in follow(root) it adds
// p -> q labeled with q's character. State 0 is accepting iff the tree
// is nullable; every state in last(root) is accepting (spec.md §4.3).
func Build(tree *ast.Node) *NFA[rune] {
	n := ast.PositionCount(tree)
	a := New[rune](n + 1)

	chars := make([]rune, n+1)
	var collect func(nd *ast.Node)
	collect = func(nd *ast.Node) {
		if nd.Kind == ast.Symbol {
			chars[nd.Index] = rune(nd.Char)
			return
		}
		for _, c := range nd.Children {
			collect(c)
		}
	}
	collect(tree)

	for _, p := range ast.First(tree) {
		a.SetTransition(0, p, chars[p])
	}
	follow := ast.Follow(tree)
	for p, qs := range follow {
		for _, q := range qs {
			a.SetTransition(p, q, chars[q])
		}
	}
	a.Accept[0] = ast.Nullable(tree)
	for _, p := range ast.Last(tree) {
		a.Accept[p] = true
	}
	return a
}
