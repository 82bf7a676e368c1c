// Package elim converts a position automaton back into a classical
// regex by iterative state elimination: absorb every intermediate
// state's transitions into its neighbors' edge labels until only the
// start and a fresh accept sink remain (spec.md §4.5).
package elim

import "github.com/delook/delook/nfa"

// ToRegex converts a into an equivalent anchored classical regex. It
// returns ok=false if a recognizes the empty language — this grammar
// has no literal empty-set construct, so there is no string to return.
//
// A fresh accept sink is appended (state a.Size); every originally
// accepting state gets an epsilon edge to it and loses its own accept
// bit. States 1..a.Size-1 are then eliminated in ascending index order
// (spec.md §5's determinism requirement, and §9's open-question
// resolution: lowest index), each absorbed into every live
// predecessor/successor pair via the splice formula in §4.5.
func ToRegex(a *nfa.NFA[rune]) (string, bool) {
	n := a.Size
	sink := n
	size := n + 1

	label := make([][]string, size)
	ok := make([][]bool, size)
	for i := range label {
		label[i] = make([]string, size)
		ok[i] = make([]bool, size)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if c, has := a.Transition(i, j); has {
				label[i][j], ok[i][j] = string(c), true
			}
		}
		if a.Accept[i] {
			label[i][sink], ok[i][sink] = "", true
		}
	}

	alive := make([]bool, size)
	for i := range alive {
		alive[i] = true
	}

	for k := 1; k < n; k++ {
		for i := 0; i < size; i++ {
			if i == k || !alive[i] || !ok[i][k] {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k || !alive[j] || !ok[k][j] {
					continue
				}
				label[i][j], ok[i][j] = absorb(
					label[i][j], ok[i][j],
					label[i][k],
					label[k][k], ok[k][k],
					label[k][j],
				)
			}
		}
		alive[k] = false
	}

	if !ok[0][sink] {
		return "", false
	}
	return "^" + label[0][sink] + "$", true
}

// absorb rewrites edge (i,j) to account for the path i -> k -> j being
// removed, per the splice formula in spec.md §4.5:
//
//	L[i][j] <- (L[i][j] | )? . L[i][k] . (L[k][k])* . L[k][j]
//
// with the unfold optimization collapsing the common
// "L[i][j]=ε, L[i][k]=L[k][k], L[k][j]=ε" case to a bare L[i][k]*.
func absorb(oldLabel string, oldOk bool, lik, lkk string, lkkOk bool, lkj string) (string, bool) {
	if oldOk && oldLabel == "" && lkkOk && lkk == lik && lkj == "" {
		return star(lik), true
	}

	loop := ""
	if lkkOk {
		loop = star(lkk)
	}
	through := lik + loop + lkj

	if !oldOk {
		return through, true
	}
	if oldLabel == "" {
		return "(" + through + ")?", true
	}
	return "(" + oldLabel + "|" + through + ")", true
}

// star parenthesizes x (if needed) and appends '*'; the empty label
// (absent self-loop) contributes nothing.
func star(x string) string {
	if x == "" {
		return ""
	}
	return wrap(x) + "*"
}

// wrap parenthesizes s unless it is a single character or already a
// single fully-parenthesized group (spec.md §4.5, "Parenthesization").
func wrap(s string) string {
	if isAtomic(s) {
		return s
	}
	return "(" + s + ")"
}

func isAtomic(s string) bool {
	if len([]rune(s)) == 1 {
		return true
	}
	return isFullyParenthesized(s)
}

// isFullyParenthesized reports whether s starts and ends with matching
// parens with no premature close in between, i.e. it is already one
// parenthesized group and does not need another wrapped around it.
func isFullyParenthesized(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}
