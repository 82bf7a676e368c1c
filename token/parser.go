package token

import "strings"

// parser holds the bookkeeping state for one call to Parse: the
// original input, kept only so ParseError can report accurate byte
// offsets from nested recursive calls.
type parser struct {
	raw string
}

// Parse consumes an anchored extended-regex input and returns its flat
// token sequence, or a *ParseError describing the first rejection rule
// violated (spec.md §4.1).
func Parse(raw string) ([]Token, error) {
	p := &parser{raw: raw}

	if len(raw) == 0 || raw[0] != '^' {
		return nil, p.errAt(0, ErrInvalidBegin)
	}
	if raw[len(raw)-1] != '$' {
		return nil, p.errAt(len(raw), ErrInvalidEnd)
	}

	body := raw[1 : len(raw)-1]
	tokens, err := p.parseSequence(body, 1, false)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (p *parser) errAt(absPos int, err error) error {
	return &ParseError{Input: p.raw, Pos: absPos, Err: err}
}

func isAlphabetChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || c == '.'
}

// parseSequence scans s (s starts at absolute offset base within
// p.raw) and returns its token sequence. lookaheadBody is true only
// when s is the direct body of a lookahead/lookbehind group: it
// permits a trailing '$' as the StringEnd token at the very last
// position of s, and nowhere else. The empty string is a valid input
// only when called from Parse itself (an empty pattern body denotes
// the epsilon language); every other caller has already rejected an
// empty group/body via ErrEmptyBrackets before recursing.
func (p *parser) parseSequence(s string, base int, lookaheadBody bool) ([]Token, error) {
	var out []Token
	var buf strings.Builder
	atomSeen := false // an atom has been emitted since start or since the last '|'

	flush := func() {
		if buf.Len() > 0 {
			out = append(out, Token{Kind: SymbolSeq, Symbols: buf.String()})
			buf.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '|':
			flush()
			if !atomSeen {
				return nil, p.errAt(base+i, ErrInvalidOperation)
			}
			out = append(out, Token{Kind: Alt})
			atomSeen = false
			i++

		case '*':
			if err := p.applyStar(&out, &buf, base, i); err != nil {
				return nil, err
			}
			i++

		case '(':
			if i+2 < len(s) && s[i+1] == '?' && s[i+2] == '=' {
				flush()
				tok, next, err := p.parseAssertion(s, i, base, 3, Lookahead)
				if err != nil {
					return nil, err
				}
				out = append(out, tok)
				atomSeen = true
				i = next
			} else if i+3 < len(s) && s[i+1] == '?' && s[i+2] == '<' && s[i+3] == '=' {
				flush()
				tok, next, err := p.parseAssertion(s, i, base, 4, Lookbehind)
				if err != nil {
					return nil, err
				}
				out = append(out, tok)
				atomSeen = true
				i = next
			} else if i+1 < len(s) && s[i+1] == '?' {
				return nil, p.errAt(base+i, ErrInvalidLookahead)
			} else {
				flush()
				closeIdx, err := p.matchParen(s, i, base)
				if err != nil {
					return nil, err
				}
				inner := s[i+1 : closeIdx]
				if len(inner) == 0 {
					return nil, p.errAt(base+i+1, ErrEmptyBrackets)
				}
				innerTokens, err := p.parseSequence(inner, base+i+1, false)
				if err != nil {
					return nil, err
				}
				innerTokens = stripRedundantWrap(innerTokens)
				out = append(out, Token{Kind: OpenGroup})
				out = append(out, innerTokens...)
				out = append(out, Token{Kind: CloseGroup})
				atomSeen = true
				i = closeIdx + 1
			}

		case ')':
			return nil, p.errAt(base+i, ErrInvalidBrackets)

		case '$':
			if lookaheadBody && i == len(s)-1 {
				flush()
				out = append(out, Token{Kind: StringEnd})
				atomSeen = true
				i++
			} else {
				return nil, p.errAt(base+i, ErrInvalidLookahead)
			}

		default:
			if !isAlphabetChar(c) {
				return nil, p.errAt(base+i, ErrInvalidOperation)
			}
			buf.WriteByte(c)
			atomSeen = true
			i++
		}
	}

	flush()
	if !atomSeen && len(out) > 0 {
		// the sequence ended immediately after a '|': missing right operand.
		return nil, p.errAt(base+len(s), ErrInvalidOperation)
	}
	return out, nil
}

// parseAssertion parses the body of a lookahead/lookbehind starting at
// s[openIdx] == '(' and returns the built Token plus the index in s
// just past the assertion's closing ')'.
func (p *parser) parseAssertion(s string, openIdx, base, prefixLen int, kind Kind) (Token, int, error) {
	closeIdx, err := p.matchParen(s, openIdx, base)
	if err != nil {
		return Token{}, 0, err
	}
	inner := s[openIdx+prefixLen : closeIdx]
	if len(inner) == 0 {
		return Token{}, 0, p.errAt(base+openIdx+prefixLen, ErrEmptyBrackets)
	}
	body, err := p.parseSequence(inner, base+openIdx+prefixLen, true)
	if err != nil {
		return Token{}, 0, err
	}
	return Token{Kind: kind, Body: body}, closeIdx + 1, nil
}

// matchParen returns the index in s of the ')' that matches the '('
// at s[openIdx], counting nested parens only (the "?=" / "?<=" marker
// characters never affect depth).
func (p *parser) matchParen(s string, openIdx, base int) (int, error) {
	depth := 0
	for j := openIdx; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j, nil
			}
			if depth < 0 {
				return -1, p.errAt(base+j, ErrInvalidBrackets)
			}
		}
	}
	return -1, p.errAt(base+openIdx, ErrInvalidBrackets)
}

// applyStar handles a '*' encountered at s[pos]. If buf holds a
// pending literal run, '*' applies only to its last character (the
// "immediately preceding atom"), so the run is split. Otherwise '*'
// must apply to the most recently emitted CloseGroup; any other
// preceding token (including Lookahead/Lookbehind, Alt, OpenGroup, or
// another Star) makes '*' illegal here.
func (p *parser) applyStar(out *[]Token, buf *strings.Builder, base, pos int) error {
	if buf.Len() > 0 {
		run := buf.String()
		buf.Reset()
		if len(run) > 1 {
			*out = append(*out, Token{Kind: SymbolSeq, Symbols: run[:len(run)-1]})
		}
		*out = append(*out, Token{Kind: SymbolSeq, Symbols: run[len(run)-1:]})
		*out = append(*out, Token{Kind: Star})
		return nil
	}
	if len(*out) == 0 || (*out)[len(*out)-1].Kind != CloseGroup {
		return p.errAt(base+pos, ErrInvalidOperation)
	}
	*out = append(*out, Token{Kind: Star})
	return nil
}

// stripRedundantWrap removes one or more redundant outer parenthesis
// pairs from a group's already-parsed content, e.g. "((X))" parses its
// inner "(X)" down to just X's tokens (spec.md §4.1's post-pass).
func stripRedundantWrap(tokens []Token) []Token {
	for len(tokens) >= 2 && tokens[0].Kind == OpenGroup {
		depth := 0
		matchIdx := -1
		for idx, t := range tokens {
			switch t.Kind {
			case OpenGroup:
				depth++
			case CloseGroup:
				depth--
				if depth == 0 {
					matchIdx = idx
				}
			}
			if matchIdx != -1 {
				break
			}
		}
		if matchIdx != len(tokens)-1 {
			break
		}
		tokens = tokens[1 : len(tokens)-1]
	}
	return tokens
}
