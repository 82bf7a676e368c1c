package ast

// Nullable reports whether n's language contains the empty string
// (spec.md §4.2).
func Nullable(n *Node) bool {
	switch n.Kind {
	case Symbol:
		return false
	case Iter:
		return true
	case Union:
		for _, c := range n.Children {
			if Nullable(c) {
				return true
			}
		}
		return false
	case Concat:
		for _, c := range n.Children {
			if !Nullable(c) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// First returns the set of positions that can begin a match of n.
func First(n *Node) []int {
	switch n.Kind {
	case Symbol:
		return []int{n.Index}
	case Iter:
		return First(n.Children[0])
	case Union:
		var out []int
		for _, c := range n.Children {
			out = append(out, First(c)...)
		}
		return out
	case Concat:
		var out []int
		for _, c := range n.Children {
			out = append(out, First(c)...)
			if !Nullable(c) {
				break
			}
		}
		return out
	default:
		return nil
	}
}

// Last returns the set of positions that can end a match of n.
func Last(n *Node) []int {
	switch n.Kind {
	case Symbol:
		return []int{n.Index}
	case Iter:
		return Last(n.Children[0])
	case Union:
		var out []int
		for _, c := range n.Children {
			out = append(out, Last(c)...)
		}
		return out
	case Concat:
		var out []int
		for i := len(n.Children) - 1; i >= 0; i-- {
			c := n.Children[i]
			out = append(out, Last(c)...)
			if !Nullable(c) {
				break
			}
		}
		return out
	default:
		return nil
	}
}

// Follow returns, for every position p in the tree, the set of
// positions that can immediately succeed p in some string of the
// tree's language (spec.md §4.2). The result is keyed by position
// index; a position with no follow set is simply absent from the map.
func Follow(root *Node) map[int][]int {
	seen := map[int]map[int]bool{}
	add := func(froms, tos []int) {
		for _, p := range froms {
			set := seen[p]
			if set == nil {
				set = map[int]bool{}
				seen[p] = set
			}
			for _, q := range tos {
				set[q] = true
			}
		}
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		switch n.Kind {
		case Concat:
			for _, c := range n.Children {
				walk(c)
			}
			for i := range n.Children {
				for j := i + 1; j < len(n.Children); j++ {
					gapNullable := true
					for k := i + 1; k < j; k++ {
						if !Nullable(n.Children[k]) {
							gapNullable = false
							break
						}
					}
					if !gapNullable {
						break
					}
					add(Last(n.Children[i]), First(n.Children[j]))
				}
			}
		case Union:
			for _, c := range n.Children {
				walk(c)
			}
		case Iter:
			walk(n.Children[0])
			add(Last(n.Children[0]), First(n.Children[0]))
		}
	}
	walk(root)

	out := make(map[int][]int, len(seen))
	for p, set := range seen {
		qs := make([]int, 0, len(set))
		for q := range set {
			qs = append(qs, q)
		}
		out[p] = qs
	}
	return out
}
