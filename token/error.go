package token

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, one per rejection rule in spec.md §4.1. This
// mirrors nfa.ErrInvalidPattern / nfa.ErrTooComplex in the teacher: a
// small set of sentinel values plus a wrapping struct carrying context.
var (
	// ErrInvalidBegin means the input is missing its leading '^'.
	ErrInvalidBegin = errors.New("token: missing leading '^' anchor")
	// ErrInvalidEnd means the input is missing its trailing '$'.
	ErrInvalidEnd = errors.New("token: missing trailing '$' anchor")
	// ErrInvalidBrackets means parentheses are unbalanced or a close
	// paren appears with no matching open.
	ErrInvalidBrackets = errors.New("token: unbalanced brackets")
	// ErrInvalidLookahead means a '(?...' prefix is neither '(?=' nor
	// '(?<=', or a lookahead-internal '$' appears anywhere but as the
	// final character of its body.
	ErrInvalidLookahead = errors.New("token: malformed lookahead/lookbehind")
	// ErrInvalidOperation means an operator (',|', '*') is missing a
	// required operand, or '*' is applied to an empty group or a
	// lookahead/lookbehind group, or a character outside the alphabet
	// appears in the body.
	ErrInvalidOperation = errors.New("token: operator applied without a valid operand")
	// ErrEmptyBrackets means a group '()' or lookahead/lookbehind body
	// is empty.
	ErrEmptyBrackets = errors.New("token: empty group")
)

// ParseError wraps one of the sentinel errors above with the byte
// offset (within the original, unstripped input) where parsing failed,
// and the original input for diagnostic display.
type ParseError struct {
	Input string
	Pos   int
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("token: %v at position %d in %q", e.Err, e.Pos, e.Input)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// ErrInvalidOperation) etc. works against a returned *ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}
