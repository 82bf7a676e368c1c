package lookahead

import "errors"

// ErrLookbehindUnsupported is returned when Rewrite reaches a
// lookbehind assertion: this dialect parses lookbehind (token.Parse
// accepts it) but has no elimination strategy for it, left out of
// scope pending a reversed-language reduction (spec.md §4.6, §9).
var ErrLookbehindUnsupported = errors.New("lookahead: lookbehind elimination is unsupported")
