// Package stringgen produces candidate test strings for an automaton:
// mostly strings in its language, plus mutated near-misses meant to
// probe the match/reject boundary (spec.md §4.7).
package stringgen

import (
	"math/rand"
	"strings"

	"github.com/delook/delook/nfa"
)

// Probabilities from spec.md §4.7's algorithm description.
const (
	pExit     = 0.18
	pComplete = 0.35
	pMutate   = 0.8
)

// genAlphabet is substituted for a wildcard-labeled transition when
// threading a word: '.' on an edge means "any character", not the
// literal dot, so a concrete letter has to be chosen. Three letters
// mirrors the original generator's default alphabet_size
// (fuzz/regex_generator.rs's Config.alphabet_size = 3), which keeps
// collisions (and thus real matches) frequent in the generated corpus.
const genAlphabet = "abc"

// Reachability computes reach[i][j] = true iff a has a path from i to
// j, by repeated multiplication of the adjacency matrix against itself
// up to size-1 times (spec.md §4.7 step 1): size-1 rounds bound the
// longest simple path in a size-state graph.
func Reachability(a *nfa.NFA[rune]) [][]bool {
	n := a.Size
	adj := make([][]bool, n)
	reach := make([][]bool, n)
	for i := 0; i < n; i++ {
		adj[i] = make([]bool, n)
		reach[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if _, ok := a.Transition(i, j); ok {
				adj[i][j] = true
				reach[i][j] = true
			}
		}
	}
	for step := 1; step < n; step++ {
		next := make([][]bool, n)
		for i := range next {
			next[i] = make([]bool, n)
			copy(next[i], reach[i])
		}
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				if !reach[i][k] {
					continue
				}
				for j := 0; j < n; j++ {
					if adj[k][j] {
						next[i][j] = true
					}
				}
			}
		}
		reach = next
	}
	return reach
}

// Generate returns n candidate strings for a: a random walk over
// reachable states threaded into literal words, each run through a
// chain of mutations (spec.md §4.7). The empty automaton contributes
// nothing; the epsilon automaton contributes only the empty string.
func Generate(r *rand.Rand, a *nfa.NFA[rune], n int) []string {
	if a.IsEmpty() {
		return nil
	}
	reach := Reachability(a)
	out := make([]string, 0, n)
	for len(out) < n {
		chain := walkStates(r, a, reach)
		words := threadWords(r, a, reach, chain)
		words = mutate(r, words)
		out = append(out, strings.Join(words, ""))
	}
	return out
}

// walkStates performs the random walk over states described in
// spec.md §4.7 step 2: from the current state, exit with probability
// pExit if it is accepting; otherwise move to a uniformly chosen
// reachable state. A state with no reachable successor ends the walk
// regardless of its accept status.
func walkStates(r *rand.Rand, a *nfa.NFA[rune], reach [][]bool) []int {
	chain := []int{0}
	cur := 0
	for {
		if a.Accept[cur] && r.Float64() < pExit {
			break
		}
		succ := reachableSuccessors(cur, reach)
		if len(succ) == 0 {
			break
		}
		cur = succ[r.Intn(len(succ))]
		chain = append(chain, cur)
	}
	return chain
}

func reachableSuccessors(i int, reach [][]bool) []int {
	var succ []int
	for j, ok := range reach[i] {
		if ok {
			succ = append(succ, j)
		}
	}
	return succ
}

// threadWords generates one literal word per consecutive state pair in
// chain (spec.md §4.7 step 3).
func threadWords(r *rand.Rand, a *nfa.NFA[rune], reach [][]bool, chain []int) []string {
	words := make([]string, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		words = append(words, threadWord(r, a, reach, chain[i], chain[i+1]))
	}
	return words
}

type edge struct {
	to    int
	label rune
}

// threadWord wanders a from state to state, restricted to states that
// can still reach "to", terminating with probability pComplete on
// every arrival at "to". A wildcard-labeled edge substitutes a letter
// from genAlphabet rather than the literal '.'.
func threadWord(r *rand.Rand, a *nfa.NFA[rune], reach [][]bool, from, to int) string {
	var b strings.Builder
	cur := from
	for {
		if cur == to && r.Float64() < pComplete {
			break
		}
		var options []edge
		for j := 0; j < a.Size; j++ {
			if lbl, ok := a.Transition(cur, j); ok && (j == to || reach[j][to]) {
				options = append(options, edge{to: j, label: lbl})
			}
		}
		if len(options) == 0 {
			break
		}
		pick := options[r.Intn(len(options))]
		b.WriteRune(resolveLabel(pick.label, r))
		cur = pick.to
	}
	return b.String()
}

func resolveLabel(label rune, r *rand.Rand) rune {
	if label == '.' {
		return rune(genAlphabet[r.Intn(len(genAlphabet))])
	}
	return label
}

// mutate applies a random sequence of mutations to words, continuing
// with probability pMutate after each one (spec.md §4.7 step 4).
func mutate(r *rand.Rand, words []string) []string {
	for len(words) > 0 && r.Float64() < pMutate {
		switch r.Intn(4) {
		case 0:
			words = swapAdjacentWords(r, words)
		case 1:
			words = swapLetters(r, words)
		case 2:
			words = duplicate(r, words)
		case 3:
			words = deleteOne(r, words)
		}
	}
	return words
}

func swapAdjacentWords(r *rand.Rand, words []string) []string {
	if len(words) < 2 {
		return words
	}
	i := r.Intn(len(words) - 1)
	out := append([]string(nil), words...)
	out[i], out[i+1] = out[i+1], out[i]
	return out
}

// swapLetters swaps two letters within one randomly chosen word that
// is at least two runes long; a no-op if no such word exists.
func swapLetters(r *rand.Rand, words []string) []string {
	idx, ok := pickWordWithLen(r, words, 2)
	if !ok {
		return words
	}
	runes := []rune(words[idx])
	i := r.Intn(len(runes))
	j := r.Intn(len(runes))
	runes[i], runes[j] = runes[j], runes[i]
	out := append([]string(nil), words...)
	out[idx] = string(runes)
	return out
}

// duplicate doubles either a whole word or a single letter within one.
func duplicate(r *rand.Rand, words []string) []string {
	if r.Intn(2) == 0 {
		i := r.Intn(len(words))
		out := make([]string, 0, len(words)+1)
		out = append(out, words[:i+1]...)
		out = append(out, words[i])
		out = append(out, words[i+1:]...)
		return out
	}
	idx, ok := pickWordWithLen(r, words, 1)
	if !ok {
		return words
	}
	runes := []rune(words[idx])
	i := r.Intn(len(runes))
	runes = append(runes[:i+1], append([]rune{runes[i]}, runes[i+1:]...)...)
	out := append([]string(nil), words...)
	out[idx] = string(runes)
	return out
}

// deleteOne removes either a whole word or a single letter within one.
func deleteOne(r *rand.Rand, words []string) []string {
	if len(words) > 1 && r.Intn(2) == 0 {
		i := r.Intn(len(words))
		out := make([]string, 0, len(words)-1)
		out = append(out, words[:i]...)
		out = append(out, words[i+1:]...)
		return out
	}
	idx, ok := pickWordWithLen(r, words, 1)
	if !ok {
		return words
	}
	runes := []rune(words[idx])
	i := r.Intn(len(runes))
	runes = append(runes[:i], runes[i+1:]...)
	out := append([]string(nil), words...)
	out[idx] = string(runes)
	return out
}

func pickWordWithLen(r *rand.Rand, words []string, minLen int) (int, bool) {
	var eligible []int
	for i, w := range words {
		if len([]rune(w)) >= minLen {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return 0, false
	}
	return eligible[r.Intn(len(eligible))], true
}
