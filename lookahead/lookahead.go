// Package lookahead eliminates lookahead assertions from a token
// sequence by rewriting α(?=β)γ into α · (β.* ∩ γ) and building the
// result directly as an automaton (spec.md §4.6).
package lookahead

import (
	"github.com/delook/delook/ast"
	"github.com/delook/delook/nfa"
	"github.com/delook/delook/token"
)

// Rewrite returns an automaton equivalent to tokens' matching
// semantics. If tokens contains no lookahead/lookbehind, the result is
// built directly from the AST layer. The first lookahead encountered
// (scanning left to right) is eliminated; if it is nested inside a
// group, the enclosing top-level group is located and handled
// recursively, splitting on a top-level alternation inside it if
// present. A lookbehind anywhere in the sequence is unsupported.
func Rewrite(tokens []token.Token) (*nfa.NFA[rune], error) {
	idx, depth, kind, found := firstAssertion(tokens)
	if !found {
		return buildDirect(tokens)
	}
	if kind == token.Lookbehind {
		return nil, ErrLookbehindUnsupported
	}
	if depth == 0 {
		return rewriteTopLevel(tokens, idx)
	}
	return rewriteNested(tokens, idx)
}

// firstAssertion scans tokens left to right, tracking bracket depth via
// OpenGroup/CloseGroup (Lookahead/Lookbehind tokens are atomic and
// don't affect depth since the parser never flattens their bodies
// inline), and reports the first Lookahead or Lookbehind token found.
func firstAssertion(tokens []token.Token) (idx, depth int, kind token.Kind, found bool) {
	d := 0
	for i, t := range tokens {
		switch t.Kind {
		case token.OpenGroup:
			d++
		case token.CloseGroup:
			d--
		case token.Lookahead, token.Lookbehind:
			return i, d, t.Kind, true
		}
	}
	return 0, 0, 0, false
}

// buildDirect builds an automaton straight from tokens via the AST
// layer, for a token run with no lookahead/lookbehind left in it. An
// empty token run (a prefix, suffix, or lookahead body that turned out
// empty after splitting) denotes the epsilon language directly, since
// ast.Build requires a non-empty string (spec.md §4.2).
func buildDirect(tokens []token.Token) (*nfa.NFA[rune], error) {
	if len(tokens) == 0 {
		return nfa.Epsilon[rune](), nil
	}
	tree, err := ast.Build(token.Unparse(tokens))
	if err != nil {
		return nil, err
	}
	return nfa.Build(tree), nil
}

// rewriteTopLevel handles a lookahead found at bracket depth 0: prefix
// alpha, lookahead body beta, suffix gamma, producing
// concat(A(alpha), intersect(A(beta'), rewrite(gamma))).
func rewriteTopLevel(tokens []token.Token, idx int) (*nfa.NFA[rune], error) {
	alpha := tokens[:idx]
	beta := tokens[idx].Body
	gamma := tokens[idx+1:]

	aAlpha, err := buildDirect(alpha)
	if err != nil {
		return nil, err
	}

	aBeta, err := buildDirect(appendDotStar(beta))
	if err != nil {
		return nil, err
	}

	aGamma, err := Rewrite(gamma)
	if err != nil {
		return nil, err
	}

	return nfa.Concat(aAlpha, nfa.Intersect(aBeta, aGamma)), nil
}

// appendDotStar prepares a lookahead body for direct automaton
// construction. A body with no trailing StringEnd only pins a prefix of
// the remaining input, so ".*" is appended to let it match anything
// beyond. A body ending in StringEnd instead pins the body to the true
// end of the matched suffix — but StringEnd itself is zero-width, the
// position where gamma's own automaton must also end, not a character
// gamma is expected to produce in lockstep. So it is dropped here
// rather than built as a literal '$', which would force intersect to
// require a matching literal character on gamma's side that gamma
// never has (spec.md §4.6).
func appendDotStar(body []token.Token) []token.Token {
	if len(body) > 0 && body[len(body)-1].Kind == token.StringEnd {
		return body[:len(body)-1]
	}
	out := make([]token.Token, len(body), len(body)+2)
	copy(out, body)
	out = append(out,
		token.Token{Kind: token.SymbolSeq, Symbols: "."},
		token.Token{Kind: token.Star},
	)
	return out
}

// rewriteNested handles a lookahead found inside a group: locate the
// enclosing top-level group, split it into prefix alpha / inner /
// suffix gamma, and recurse. If inner itself has a top-level
// alternation, each alternative is rewritten independently and joined
// with union before concatenating alpha and gamma back on (gamma is
// folded in for the alternation case too, rather than dropped, so that
// every lookahead still reachable through the suffix is still
// eliminated — see DESIGN.md's open-question notes).
func rewriteNested(tokens []token.Token, idx int) (*nfa.NFA[rune], error) {
	openPos, closePos, ok := enclosingTopLevelGroup(tokens, idx)
	if !ok {
		return nil, nfa.ErrAssertionFailed
	}
	alpha := tokens[:openPos]
	inner := tokens[openPos+1 : closePos]
	gamma := tokens[closePos+1:]

	aAlpha, err := buildDirect(alpha)
	if err != nil {
		return nil, err
	}

	parts := splitTopLevelAlt(inner)
	aInner, err := Rewrite(parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		next, err := Rewrite(part)
		if err != nil {
			return nil, err
		}
		aInner = nfa.Union(aInner, next)
	}

	aGamma, err := Rewrite(gamma)
	if err != nil {
		return nil, err
	}

	return nfa.Concat(aAlpha, nfa.Concat(aInner, aGamma)), nil
}

// enclosingTopLevelGroup finds the depth-0 OpenGroup/CloseGroup span
// containing idx, returning their positions in tokens.
func enclosingTopLevelGroup(tokens []token.Token, idx int) (open, close int, ok bool) {
	depth := 0
	openPos := -1
	for i, t := range tokens {
		switch t.Kind {
		case token.OpenGroup:
			if depth == 0 {
				openPos = i
			}
			depth++
		case token.CloseGroup:
			depth--
			if depth == 0 {
				if openPos != -1 && openPos < idx && idx < i {
					return openPos, i, true
				}
				openPos = -1
			}
		}
	}
	return 0, 0, false
}

// splitTopLevelAlt splits tokens on every Alt token at bracket depth 0,
// returning at least one part (tokens itself, if it has no top-level
// alternation).
func splitTopLevelAlt(tokens []token.Token) [][]token.Token {
	var parts [][]token.Token
	depth := 0
	start := 0
	for i, t := range tokens {
		switch t.Kind {
		case token.OpenGroup:
			depth++
		case token.CloseGroup:
			depth--
		case token.Alt:
			if depth == 0 {
				parts = append(parts, tokens[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, tokens[start:])
	return parts
}
