// Package fuzzdriver wires the random regex generator, the transform
// pipeline, the fuzz string generator, and the reference oracle into
// one end-to-end check: generate a pattern, transform it, generate
// strings from its automaton, and confirm the original extended
// pattern and its classical reduction agree on every string (spec.md
// §6, pipeline step 8). Grounded on
// original_source/src/fuzz/runner.rs's run_tests/run_tests_for_regex
// shape and the teacher's fuzz_stdlib_test.go seed-corpus-plus-oracle
// harness pattern.
package fuzzdriver

import (
	"fmt"
	"math/rand"

	"github.com/delook/delook"
	"github.com/delook/delook/internal/oracle"
	"github.com/delook/delook/regexgen"
	"github.com/delook/delook/stringgen"
)

// Options configures one fuzz run. A zero Options uses DefaultOptions.
type Options struct {
	RegexCount   int
	StringCount  int
	Regex        string // if non-empty, bypass generation and test only this pattern
	RegexOptions regexgen.Options
}

// DefaultOptions mirrors spec.md §6's CLI defaults.
func DefaultOptions() Options {
	return Options{
		RegexCount:   50,
		StringCount:  10,
		RegexOptions: regexgen.DefaultOptions(),
	}
}

// Mismatch records one test case where the original extended pattern
// and its classical reduction disagreed on a string.
type Mismatch struct {
	Pattern   string
	Classical string
	String    string
	Extended  bool
	Result    bool
}

// Report tallies the outcome of a fuzz run, following
// original_source/src/fuzz/runner.rs's distinct pass/fail/error
// counters rather than a single aggregate.
type Report struct {
	Passed       int
	Mismatched   int
	OracleErrors int
	Mismatches   []Mismatch
}

// Run executes one fuzz session: opts.RegexCount patterns (or just
// opts.Regex, if set), each checked against opts.StringCount generated
// strings. A pattern that fails to parse, rewrite, or reduce is
// skipped and does not contribute to the report — the generator is
// expected to occasionally produce a pattern this dialect rejects
// (lookbehind, most commonly), and that is not a fuzz finding.
func Run(r *rand.Rand, opts Options) Report {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	var report Report

	patterns := []string{opts.Regex}
	if opts.Regex == "" {
		patterns = make([]string, opts.RegexCount)
		for i := range patterns {
			patterns[i] = regexgen.Random(r, opts.RegexOptions)
		}
	}

	for _, pattern := range patterns {
		runOne(r, pattern, opts.StringCount, &report)
	}
	return report
}

func runOne(r *rand.Rand, pattern string, stringCount int, report *Report) {
	re, err := delook.Compile(pattern)
	if err != nil {
		return
	}
	if re.IsEmptyLanguage() {
		return
	}

	strs := stringgen.Generate(r, re.NFA(), stringCount)
	classical := re.Classical()

	for _, s := range strs {
		lhs, err := oracle.MatchExtended(pattern, s)
		if err != nil {
			report.OracleErrors++
			continue
		}
		rhs, err := oracle.MatchClassical(classical, s)
		if err != nil {
			report.OracleErrors++
			continue
		}
		if lhs != rhs {
			report.Mismatched++
			report.Mismatches = append(report.Mismatches, Mismatch{
				Pattern:   pattern,
				Classical: classical,
				String:    s,
				Extended:  lhs,
				Result:    rhs,
			})
			continue
		}
		report.Passed++
	}
}

// String renders a human-readable summary line for a mismatch, for
// the CLI reporter to log.
func (m Mismatch) String() string {
	return fmt.Sprintf("pattern %q (classical %q): string %q — extended=%v classical=%v",
		m.Pattern, m.Classical, m.String, m.Extended, m.Result)
}
