package lookahead

import (
	"errors"
	"testing"

	"github.com/delook/delook/nfa"
	"github.com/delook/delook/token"
)

func rewrite(t *testing.T, pattern string) *nfa.NFA[rune] {
	t.Helper()
	tokens, err := token.Parse(pattern)
	if err != nil {
		t.Fatalf("token.Parse(%q): %v", pattern, err)
	}
	a, err := Rewrite(tokens)
	if err != nil {
		t.Fatalf("Rewrite(%q): %v", pattern, err)
	}
	return a
}

func TestRewrite_NoAssertion(t *testing.T) {
	a := rewrite(t, "^abc$")
	if !nfa.Accepts(a, "abc") {
		t.Error("should accept \"abc\"")
	}
}

func TestRewrite_LookaheadWithStringEnd(t *testing.T) {
	// ^(?=a$)a$ ≡ ^a$ (spec.md §8 boundary behavior).
	a := rewrite(t, "^(?=a$)a$")
	if !nfa.Accepts(a, "a") {
		t.Error("should accept \"a\"")
	}
	for _, s := range []string{"", "aa", "b"} {
		if nfa.Accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestRewrite_LookaheadConsistentSuffix(t *testing.T) {
	// ^a(?=b)b$ ≡ ^ab$.
	a := rewrite(t, "^a(?=b)b$")
	if !nfa.Accepts(a, "ab") {
		t.Error("should accept \"ab\"")
	}
	for _, s := range []string{"", "a", "b", "abb"} {
		if nfa.Accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestRewrite_LookaheadContradictsSuffix(t *testing.T) {
	// ^a(?=b)c$ has empty language.
	a := rewrite(t, "^a(?=b)c$")
	for _, s := range []string{"", "a", "ac", "ab", "abc"} {
		if nfa.Accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestRewrite_Scenario4(t *testing.T) {
	// ^a(?=ab$)ab$ accepts "aab" only.
	a := rewrite(t, "^a(?=ab$)ab$")
	if !nfa.Accepts(a, "aab") {
		t.Error("should accept \"aab\"")
	}
	for _, s := range []string{"ab", "abc", "aabc", ""} {
		if nfa.Accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestRewrite_WildcardLookahead(t *testing.T) {
	// Adapted from spec.md §8 scenario 6 (dropping the bracket-class
	// syntax "[ab]*", which this grammar's alphabet excludes, in favor
	// of the equivalent (a|b)*): ^(a|b)*(?=.*c$)(a|b)*c$ over {a,b,c}
	// should accept exactly strings over {a,b}* followed by a single c.
	a := rewrite(t, "^(a|b)*(?=.*c$)(a|b)*c$")
	for _, s := range []string{"c", "ac", "abc", "bac", "aabbc"} {
		if !nfa.Accepts(a, s) {
			t.Errorf("should accept %q", s)
		}
	}
	for _, s := range []string{"", "abcc", "cab", "ccc"} {
		if nfa.Accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestRewrite_NestedGroupLookahead(t *testing.T) {
	// A lookahead nested one group deep: the group wraps a single
	// alternative containing the assertion.
	a := rewrite(t, "^a((?=b$)b)$")
	if !nfa.Accepts(a, "ab") {
		t.Error("should accept \"ab\"")
	}
	if nfa.Accepts(a, "abb") {
		t.Error("should reject \"abb\"")
	}
}

func TestRewrite_NestedGroupAlternationLookahead(t *testing.T) {
	// The lookahead sits inside one alternative of a nested group; the
	// other alternative carries no assertion at all.
	a := rewrite(t, "^a((?=b$)b|c)$")
	if !nfa.Accepts(a, "ab") {
		t.Error("should accept \"ab\"")
	}
	if !nfa.Accepts(a, "ac") {
		t.Error("should accept \"ac\"")
	}
	if nfa.Accepts(a, "abb") {
		t.Error("should reject \"abb\"")
	}
}

func TestRewrite_LookbehindUnsupported(t *testing.T) {
	tokens, err := token.Parse("^(?<=a)b$")
	if err != nil {
		t.Fatalf("token.Parse: %v", err)
	}
	_, err = Rewrite(tokens)
	if !errors.Is(err, ErrLookbehindUnsupported) {
		t.Fatalf("Rewrite with lookbehind: err = %v, want ErrLookbehindUnsupported", err)
	}
}
