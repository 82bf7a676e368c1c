package elim

import (
	"regexp"
	"testing"

	"github.com/delook/delook/ast"
	"github.com/delook/delook/nfa"
)

func build(t *testing.T, pattern string) *nfa.NFA[rune] {
	t.Helper()
	tree, err := ast.Build(pattern)
	if err != nil {
		t.Fatalf("ast.Build(%q): %v", pattern, err)
	}
	return nfa.Build(tree)
}

func TestToRegex_Empty(t *testing.T) {
	s, ok := ToRegex(nfa.Empty[rune]())
	if ok {
		t.Fatalf("empty automaton should have no regex, got %q", s)
	}
}

func TestToRegex_Epsilon(t *testing.T) {
	s, ok := ToRegex(nfa.Epsilon[rune]())
	if !ok {
		t.Fatal("epsilon automaton should yield a regex")
	}
	if s != "^$" {
		t.Errorf("ToRegex(epsilon) = %q, want \"^$\"", s)
	}
}

func TestToRegex_Literal(t *testing.T) {
	s, ok := ToRegex(build(t, "abc"))
	if !ok {
		t.Fatal("expected a regex")
	}
	if s != "^abc$" {
		t.Errorf("ToRegex(\"abc\") = %q, want \"^abc$\"", s)
	}
}

func TestToRegex_Star(t *testing.T) {
	s, ok := ToRegex(build(t, "a*"))
	if !ok {
		t.Fatal("expected a regex")
	}
	if s != "^a*$" {
		t.Errorf("ToRegex(\"a*\") = %q, want \"^a*$\"", s)
	}
}

// equivalentTo asserts that result, compiled as a regex, matches
// exactly the language of want for every probe string.
func equivalentTo(t *testing.T, result, want string, probes []string) {
	t.Helper()
	re, err := regexp.Compile(result)
	if err != nil {
		t.Fatalf("regexp.Compile(%q): %v", result, err)
	}
	wre, err := regexp.Compile(want)
	if err != nil {
		t.Fatalf("regexp.Compile(%q): %v", want, err)
	}
	for _, p := range probes {
		if re.MatchString(p) != wre.MatchString(p) {
			t.Errorf("%q: ToRegex output %q disagrees with %q on %q", p, result, want, p)
		}
	}
}

func TestToRegex_LanguageEquivalence(t *testing.T) {
	tests := []struct {
		in     string
		probes []string
	}{
		{"(ab|b)*a", []string{"", "a", "ab", "ba", "aba", "abba", "abab"}},
		{"a*b*", []string{"", "a", "b", "ab", "aab", "ba", "aabbb"}},
		{".*", []string{"", "a", "zz", "xyz"}},
		{"(a|b)*c", []string{"c", "ac", "abc", "bac", "abcd", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			result, ok := ToRegex(build(t, tt.in))
			if !ok {
				t.Fatalf("expected a regex for %q", tt.in)
			}
			equivalentTo(t, result, "^"+tt.in+"$", tt.probes)
		})
	}
}

func TestToRegex_Wrap(t *testing.T) {
	if got := wrap("a"); got != "a" {
		t.Errorf("wrap(\"a\") = %q, want \"a\"", got)
	}
	if got := wrap("(ab)"); got != "(ab)" {
		t.Errorf("wrap(\"(ab)\") = %q, want \"(ab)\"", got)
	}
	if got := wrap("ab"); got != "(ab)" {
		t.Errorf("wrap(\"ab\") = %q, want \"(ab)\"", got)
	}
	if got := wrap("(a)(b)"); got != "((a)(b))" {
		t.Errorf("wrap(\"(a)(b)\") = %q, want \"((a)(b))\"", got)
	}
}
