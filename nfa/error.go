package nfa

import "errors"

// ErrAssertionFailed marks a construction invariant violated on input
// that already passed the parser and AST builder — a bug in this
// package, never a user-facing error (spec.md §7).
var ErrAssertionFailed = errors.New("nfa: construction assertion failed")
