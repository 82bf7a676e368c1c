// Package oracle wraps two backtracking regex engines behind one
// interface, standing in for the host-provided matcher spec.md §6
// calls the fuzz harness's reference: one invocation compiles the
// original extended pattern (lookahead and all), the other compiles
// the state-elimination output (lookahead-free, classical syntax).
package oracle

import (
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// ErrCompile wraps a failure to compile a pattern under either engine,
// or (for regexp2) a failure while running the match.
// Unlike the in-repo parser/construction errors, an oracle compile
// failure is expected and recoverable: the fuzz driver counts it and
// moves to the next candidate rather than treating it as a bug.
type ErrCompile struct {
	Engine  string
	Pattern string
	Err     error
}

func (e *ErrCompile) Error() string {
	return fmt.Sprintf("oracle: %s: compile %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *ErrCompile) Unwrap() error { return e.Err }

// MatchExtended reports whether s matches pattern under the extended
// grammar (lookahead permitted), via github.com/dlclark/regexp2 — the
// role original_source/src/fuzz/runner.rs gives fancy_regex::Regex
// when it compiles the original pattern r directly.
func MatchExtended(pattern, s string) (bool, error) {
	re, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return false, &ErrCompile{Engine: "regexp2", Pattern: pattern, Err: err}
	}
	ok, err := re.MatchString(s)
	if err != nil {
		return false, &ErrCompile{Engine: "regexp2", Pattern: pattern, Err: err}
	}
	return ok, nil
}

// MatchClassical reports whether s matches pattern under stdlib
// regexp's RE2 syntax — the role runner.rs gives the regex compiled
// from to_regex()'s output, after the lookahead has already been
// eliminated. elim.ToRegex never emits the literal 'ε' marker runner.rs
// substitutes for (it represents an epsilon edge as an empty string
// label, folded into `?`/`*` directly), so no such substitution is
// needed here.
func MatchClassical(pattern, s string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, &ErrCompile{Engine: "regexp", Pattern: pattern, Err: err}
	}
	return re.MatchString(s), nil
}
