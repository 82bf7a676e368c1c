package nfa

// Accepts reports whether s is in L(a), simulated directly over the
// NFA's subset-of-states representation (no DFA compilation): the
// current state set starts at {0} and, for each rune, advances along
// every matching or wildcard-labeled edge. Used by delook's
// (*Regex).MatchString and by tests; not part of the
// construction/algebra core itself.
func Accepts(a *NFA[rune], s string) bool {
	cur := map[int]bool{0: true}
	for _, r := range s {
		next := map[int]bool{}
		for i := range cur {
			for j := 0; j < a.Size; j++ {
				if lbl, ok := a.Transition(i, j); ok && (lbl == r || lbl == wildcard) {
					next[j] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		cur = next
	}
	for i := range cur {
		if a.Accept[i] {
			return true
		}
	}
	return false
}
