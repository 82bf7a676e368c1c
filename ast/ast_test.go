package ast

import (
	"sort"
	"testing"
)

func sorted(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}

func equalSets(a, b []int) bool {
	a, b = sorted(a), sorted(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuild_Rejects(t *testing.T) {
	if _, err := Build(""); err == nil {
		t.Error("Build(\"\") should error: empty expression is not a valid AST input")
	}
	if _, err := Build("a|"); err == nil {
		t.Error("Build(\"a|\") should error: missing right operand")
	}
	if _, err := Build("(a"); err == nil {
		t.Error("Build(\"(a\") should error: unbalanced parens")
	}
	if _, err := Build("1"); err == nil {
		t.Error("Build(\"1\") should error: digit not in alphabet")
	}
}

func TestPositionCount_DenseAndUnique(t *testing.T) {
	tests := []string{"abc", "a*b|c", "(ab|b)*a", ".*", "a(bc)*d"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			root, err := Build(in)
			if err != nil {
				t.Fatalf("Build(%q) error: %v", in, err)
			}
			n := PositionCount(root)
			seen := make([]bool, n+1)
			var walk func(nd *Node)
			walk = func(nd *Node) {
				if nd.Kind == Symbol {
					if nd.Index < 1 || nd.Index > n {
						t.Fatalf("index %d out of range [1,%d]", nd.Index, n)
					}
					if seen[nd.Index] {
						t.Fatalf("index %d assigned more than once", nd.Index)
					}
					seen[nd.Index] = true
					return
				}
				for _, c := range nd.Children {
					walk(c)
				}
			}
			walk(root)
			for i := 1; i <= n; i++ {
				if !seen[i] {
					t.Errorf("index %d never assigned (not dense)", i)
				}
			}
		})
	}
}

func TestNullable(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a", false},
		{"a*", true},
		{"a|b*", true},
		{"ab", false},
		{"a*b*", true},
		{"(a|b)*", true},
		{"(ab)*c", false},
	}
	for _, tt := range tests {
		root, err := Build(tt.in)
		if err != nil {
			t.Fatalf("Build(%q) error: %v", tt.in, err)
		}
		if got := Nullable(root); got != tt.want {
			t.Errorf("Nullable(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFirstLast_Concat(t *testing.T) {
	// "a*bc" : positions 1=a 2=b 3=c
	root, err := Build("a*bc")
	if err != nil {
		t.Fatal(err)
	}
	// first should include both 1 (a, nullable prefix) and 2 (b)
	if got := First(root); !equalSets(got, []int{1, 2}) {
		t.Errorf("First = %v, want {1,2}", got)
	}
	if got := Last(root); !equalSets(got, []int{3}) {
		t.Errorf("Last = %v, want {3}", got)
	}
}

func TestFollow_Concat(t *testing.T) {
	// "abc": 1=a 2=b 3=c ; follow(1)={2}, follow(2)={3}
	root, err := Build("abc")
	if err != nil {
		t.Fatal(err)
	}
	f := Follow(root)
	if !equalSets(f[1], []int{2}) {
		t.Errorf("follow(1) = %v, want {2}", f[1])
	}
	if !equalSets(f[2], []int{3}) {
		t.Errorf("follow(2) = %v, want {3}", f[2])
	}
	if len(f[3]) != 0 {
		t.Errorf("follow(3) = %v, want empty", f[3])
	}
}

func TestFollow_Iter(t *testing.T) {
	// "a*": 1=a ; follow(1) should include 1 (loop back)
	root, err := Build("a*")
	if err != nil {
		t.Fatal(err)
	}
	f := Follow(root)
	if !equalSets(f[1], []int{1}) {
		t.Errorf("follow(1) = %v, want {1}", f[1])
	}
}

func TestFollow_NullableGap(t *testing.T) {
	// "a b* c" without spaces: "ab*c": 1=a 2=b 3=c
	// follow(1) should include 2 (first of b*) and 3 (since b* is nullable,
	// first of c also follows a).
	root, err := Build("ab*c")
	if err != nil {
		t.Fatal(err)
	}
	f := Follow(root)
	if !equalSets(f[1], []int{2, 3}) {
		t.Errorf("follow(1) = %v, want {2,3}", f[1])
	}
	if !equalSets(f[2], []int{2, 3}) {
		t.Errorf("follow(2) = %v, want {2,3}", f[2])
	}
}
