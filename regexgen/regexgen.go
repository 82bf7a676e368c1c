// Package regexgen produces random anchored extended regexes for the
// fuzz driver to feed through the transformer. It is a sketch, not a
// precise model of the grammar's distribution (spec.md §1 calls the
// random-regex generator "only sketched").
package regexgen

import (
	"math/rand"
	"strings"
)

// Options bounds the shape of a generated regex.
type Options struct {
	MaxLetterCount    int
	StarHeight        int
	MaxLookaheadCount int
	AlphabetSize      int
}

// DefaultOptions mirrors the original generator's CLI defaults
// (fuzz/regex_generator.rs's Config via main.rs).
func DefaultOptions() Options {
	return Options{
		MaxLetterCount:    10,
		StarHeight:        2,
		MaxLookaheadCount: 4,
		AlphabetSize:      3,
	}
}

// Random produces one anchored regex bounded by opts, via a recursive
// choice among concat/alternation/star/lookahead/symbol productions
// (grounded on fuzz/regex_generator.rs's generate_rec, with the
// argument-threading cleaned up: the original transposes star_height
// and lookahead_count on some recursive calls, which this version does
// not reproduce, since nothing in spec.md asks for bug-compatibility
// with the generator that produces test input, only with the
// transformer under test).
func Random(r *rand.Rand, opts Options) string {
	return "^" + genBody(r, opts.MaxLetterCount, opts.StarHeight, opts.MaxLookaheadCount, 0, opts) + "$"
}

func genBody(r *rand.Rand, letterCount, starHeight, lookaheadCount, callNumber int, opts Options) string {
	if letterCount <= 0 {
		return ""
	}

	switch r.Intn(5) {
	case 0: // concat
		lhs := genBody(r, letterCount/2, starHeight, lookaheadCount/2, callNumber+1, opts)
		if callNumber == 0 && strings.HasPrefix(lhs, "(?=") {
			// A leading lookahead (empty alpha prefix) is legal; regenerating
			// the left side once when it starts with one just keeps the
			// top-level shape varied.
			lhs = genBody(r, letterCount/2, starHeight, lookaheadCount-lookaheadCount/2, callNumber+1, opts)
		}
		rhs := genBody(r, letterCount-letterCount/2, starHeight, lookaheadCount-lookaheadCount/2, callNumber+1, opts)
		return lhs + rhs

	case 1: // alternation
		if letterCount < 2 {
			return genBody(r, letterCount, starHeight, lookaheadCount, callNumber, opts)
		}
		lhs := genBody(r, letterCount/2, starHeight, lookaheadCount/2, callNumber+1, opts)
		rhs := genBody(r, letterCount-letterCount/2, starHeight, lookaheadCount-lookaheadCount/2, callNumber+1, opts)
		if lhs == "" || rhs == "" {
			return genBody(r, letterCount, starHeight, lookaheadCount, callNumber+1, opts)
		}
		return "(" + lhs + "|" + rhs + ")"

	case 2: // star
		if starHeight == 0 || callNumber == 0 {
			return genBody(r, letterCount, starHeight, lookaheadCount, callNumber, opts)
		}
		body := genBody(r, letterCount, starHeight-1, lookaheadCount, callNumber+1, opts)
		switch {
		case len(body) > 1:
			return "(" + body + ")*"
		case len(body) == 1:
			return body + "*"
		default:
			return genBody(r, letterCount, starHeight, lookaheadCount, callNumber+1, opts)
		}

	case 3: // lookahead
		if lookaheadCount == 0 || callNumber == 0 {
			return genBody(r, letterCount, starHeight, lookaheadCount, callNumber, opts)
		}
		inner := genLookahead(r, letterCount, opts.StarHeight, opts)
		if inner != "" && r.Intn(2) == 0 {
			// Exercise the lookahead-internal '$' case (spec.md §4.1) about
			// as often as the plain-prefix case.
			inner += "$"
		}
		return "(?=" + inner + ")"

	default: // symbol
		return string(randomSymbol(r, opts.AlphabetSize)) +
			genBody(r, letterCount-1, starHeight, lookaheadCount, callNumber+1, opts)
	}
}

// genLookahead generates the body of a lookahead group: concat,
// alternation, star, or symbol, with no nested lookahead (the grammar
// doesn't permit one, spec.md §4.1).
func genLookahead(r *rand.Rand, letterCount, starHeight int, opts Options) string {
	if letterCount <= 0 {
		return ""
	}

	switch r.Intn(4) {
	case 0: // concat
		lhs := genLookahead(r, letterCount/2, starHeight, opts)
		rhs := genLookahead(r, letterCount-letterCount/2, starHeight, opts)
		return lhs + rhs

	case 1: // alternation
		if letterCount < 2 {
			return genLookahead(r, letterCount, starHeight, opts)
		}
		lhs := genLookahead(r, letterCount/2, starHeight, opts)
		rhs := genLookahead(r, letterCount-letterCount/2, starHeight, opts)
		if lhs == "" || rhs == "" {
			return genLookahead(r, letterCount, starHeight, opts)
		}
		return "(" + lhs + "|" + rhs + ")"

	case 2: // star
		if starHeight == 0 {
			return genLookahead(r, letterCount, starHeight, opts)
		}
		body := genLookahead(r, letterCount, starHeight-1, opts)
		switch {
		case len(body) > 1:
			return "(" + body + ")*"
		case len(body) == 1:
			return body + "*"
		default:
			return genLookahead(r, letterCount, starHeight, opts)
		}

	default: // symbol
		return string(randomSymbol(r, opts.AlphabetSize)) +
			genLookahead(r, letterCount-1, starHeight, opts)
	}
}

func randomSymbol(r *rand.Rand, alphabetSize int) byte {
	if alphabetSize <= 0 {
		alphabetSize = 1
	}
	return byte('a' + r.Intn(alphabetSize))
}
