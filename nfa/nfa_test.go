package nfa

import (
	"testing"

	"github.com/delook/delook/ast"
)

func accepts(a *NFA[rune], s string) bool {
	return Accepts(a, s)
}

func build(t *testing.T, pattern string) *NFA[rune] {
	t.Helper()
	tree, err := ast.Build(pattern)
	if err != nil {
		t.Fatalf("ast.Build(%q): %v", pattern, err)
	}
	return Build(tree)
}

func TestEmpty(t *testing.T) {
	a := Empty[rune]()
	if !a.IsEmpty() {
		t.Fatal("Empty() should report IsEmpty")
	}
	if accepts(a, "") {
		t.Error("empty automaton should reject the empty string")
	}
	if accepts(a, "a") {
		t.Error("empty automaton should reject everything")
	}
}

func TestEpsilon(t *testing.T) {
	a := Epsilon[rune]()
	if a.IsEmpty() {
		t.Fatal("Epsilon() should not report IsEmpty")
	}
	if !accepts(a, "") {
		t.Error("epsilon automaton should accept the empty string")
	}
	if accepts(a, "a") {
		t.Error("epsilon automaton should reject non-empty strings")
	}
}

func TestBuild_Literal(t *testing.T) {
	a := build(t, "abc")
	if a.Size != 4 {
		t.Fatalf("Size = %d, want 4", a.Size)
	}
	if !accepts(a, "abc") {
		t.Error("should accept \"abc\"")
	}
	for _, s := range []string{"", "ab", "abcd", "abd"} {
		if accepts(a, s) {
			t.Errorf("should reject %q", s)
		}
	}
}

func TestBuild_Star(t *testing.T) {
	a := build(t, "a*")
	for _, s := range []string{"", "a", "aa", "aaa"} {
		if !accepts(a, s) {
			t.Errorf("a* should accept %q", s)
		}
	}
	if accepts(a, "b") {
		t.Error("a* should reject \"b\"")
	}
}

func TestBuild_AlternationStar(t *testing.T) {
	a := build(t, "(ab|b)*a")
	for _, s := range []string{"a", "aba", "ba", "abba"} {
		if !accepts(a, s) {
			t.Errorf("(ab|b)*a should accept %q", s)
		}
	}
	for _, s := range []string{"", "ab"} {
		if accepts(a, s) {
			t.Errorf("(ab|b)*a should reject %q", s)
		}
	}
}

func TestBuild_Wildcard(t *testing.T) {
	a := build(t, ".*")
	for _, s := range []string{"", "a", "zzzz", "xyz"} {
		if !accepts(a, s) {
			t.Errorf(".* should accept %q", s)
		}
	}
}
