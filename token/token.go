// Package token implements the lexer/parser for the extended regex
// grammar: literal symbol runs, alternation, Kleene star, grouping, and
// lookahead/lookbehind assertions (spec.md §4.1).
//
// A Token is a tagged variant the way the teacher's nfa.State tags a
// StateKind and gates a handful of fields on it (nfa/nfa.go) rather than
// using one struct type per kind: no virtual dispatch, one exhaustive
// switch per operation, per the Design Note in spec.md §9.
package token

import "strings"

// Kind identifies which variant a Token holds.
type Kind uint8

const (
	// SymbolSeq holds a run of literal alphabet characters (letters or '.').
	SymbolSeq Kind = iota
	// Alt is the '|' operator.
	Alt
	// Star is the '*' operator, binding to the immediately preceding atom.
	Star
	// OpenGroup is '('.
	OpenGroup
	// CloseGroup is ')'.
	CloseGroup
	// Lookahead is a parsed (?=...) group; its body is already parsed.
	Lookahead
	// Lookbehind is a parsed (?<=...) group; its body is already parsed.
	Lookbehind
	// StringEnd is the lookahead-internal '$', valid only as the final
	// token of a lookahead/lookbehind body.
	StringEnd
)

// String returns a human-readable name for the Kind, matching the style
// of nfa.StateKind.String() in the teacher.
func (k Kind) String() string {
	switch k {
	case SymbolSeq:
		return "SymbolSeq"
	case Alt:
		return "Alt"
	case Star:
		return "Star"
	case OpenGroup:
		return "OpenGroup"
	case CloseGroup:
		return "CloseGroup"
	case Lookahead:
		return "Lookahead"
	case Lookbehind:
		return "Lookbehind"
	case StringEnd:
		return "StringEnd"
	default:
		return "Unknown"
	}
}

// Token is a single element of the flat token sequence a Parse call
// produces. Only the fields relevant to Kind are meaningful:
//   - SymbolSeq: Symbols
//   - Lookahead, Lookbehind: Body
//   - everything else carries no payload
type Token struct {
	Kind    Kind
	Symbols string
	Body    []Token
}

// Unparse reconstructs a regex body (without the leading '^'/trailing
// '$') from a token sequence. It is the inverse of Parse used to check
// the round-trip invariant INV-1: parse(unparse(tokens)) is equivalent
// to tokens modulo parenthesis simplification.
func Unparse(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case SymbolSeq:
			b.WriteString(t.Symbols)
		case Alt:
			b.WriteByte('|')
		case Star:
			b.WriteByte('*')
		case OpenGroup:
			b.WriteByte('(')
		case CloseGroup:
			b.WriteByte(')')
		case Lookahead:
			b.WriteString("(?=")
			b.WriteString(Unparse(t.Body))
			b.WriteByte(')')
		case Lookbehind:
			b.WriteString("(?<=")
			b.WriteString(Unparse(t.Body))
			b.WriteByte(')')
		case StringEnd:
			b.WriteByte('$')
		}
	}
	return b.String()
}

// ToPattern wraps Unparse's output with the mandatory anchors, producing
// a string that Parse accepts.
func ToPattern(tokens []Token) string {
	return "^" + Unparse(tokens) + "$"
}
