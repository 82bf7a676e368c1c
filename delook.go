// Package delook transforms an anchored extended regex — one that may
// carry lookahead assertions — into an equivalent classical regex, by
// running it through the parser, the Glushkov position automaton
// construction, the lookahead-elimination rewrite, and state
// elimination (spec.md §3).
//
// Basic usage:
//
//	re, err := delook.Compile(`^a(?=ab)ab$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	println(re.Classical()) // an equivalent regex with no lookahead
//
// Limitations: no capture groups, no character classes beyond `.`, no
// anchors other than leading `^`/trailing `$`, no lookbehind
// elimination (Compile returns lookahead.ErrLookbehindUnsupported for
// a pattern that reaches one).
package delook

import (
	"github.com/delook/delook/elim"
	"github.com/delook/delook/lookahead"
	"github.com/delook/delook/nfa"
	"github.com/delook/delook/token"
)

// Regex is the result of transforming one extended pattern: the
// lookahead-free automaton it was rewritten into, plus the classical
// surface form that automaton reduces to.
type Regex struct {
	pattern   string
	automaton *nfa.NFA[rune]
	classical string
	nonEmpty  bool
}

// Compile parses pattern, builds its lookahead-free automaton, and
// reduces that automaton to a classical regex.
//
// Example:
//
//	re, err := delook.Compile(`^(?=ab)a.*$`)
func Compile(pattern string) (*Regex, error) {
	tokens, err := token.Parse(pattern)
	if err != nil {
		return nil, err
	}
	automaton, err := lookahead.Rewrite(tokens)
	if err != nil {
		return nil, err
	}
	classical, ok := elim.ToRegex(automaton)
	return &Regex{
		pattern:   pattern,
		automaton: automaton,
		classical: classical,
		nonEmpty:  ok,
	}, nil
}

// MustCompile compiles pattern and panics if it fails.
//
// Example:
//
//	var re = delook.MustCompile(`^a(?=ab)ab$`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("delook: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Classical returns the equivalent classical regex, anchored with `^`
// and `$`. An empty string means the original pattern's language is
// empty — there is no classical surface form for the empty language in
// this grammar (elim.ToRegex's ok=false case).
func (r *Regex) Classical() string {
	return r.classical
}

// NFA returns the lookahead-free position automaton recognizing the
// same language as the original pattern.
func (r *Regex) NFA() *nfa.NFA[rune] {
	return r.automaton
}

// String returns the source pattern used to compile the Regex.
func (r *Regex) String() string {
	return r.pattern
}

// IsEmptyLanguage reports whether the original pattern recognizes no
// strings at all, in which case Classical returns "".
func (r *Regex) IsEmptyLanguage() bool {
	return !r.nonEmpty
}

// MatchString reports whether s is recognized by the transformed
// automaton — equivalently, whether it matches the original extended
// pattern.
func (r *Regex) MatchString(s string) bool {
	return nfa.Accepts(r.automaton, s)
}
