package lexer

import (
	"github.com/glint-lang/glint/internal/token"
)

// balancedString implements §4.7: walk s, which begins immediately
// after the opening delimiter, tracking a stack of expected closers
// seeded with end. Returns the content up to (but excluding) the final
// closer, the total byte count consumed (including that closer), and
// ok=false with the still-outstanding closer on an unterminated
// construct.
func balancedString(s string, end byte) (content string, consumed int, missing byte, ok bool) {
	stack := []byte{end}
	i := 0
	for i < len(s) {
		c := s[i]

		if c == '\\' {
			i += 2
			continue
		}

		top := stack[len(stack)-1]

		if c == top {
			stack = stack[:len(stack)-1]
			i++
			if len(stack) == 0 {
				return s[:i-1], i, 0, true
			}
			continue
		}

		if top == '}' {
			switch c {
			case '"', '\'':
				stack = append(stack, c)
				i++
				continue
			case '{':
				stack = append(stack, '}')
				i++
				continue
			case '/':
				if n := matchEmbeddedRegexLen(s[i:]); n > 0 {
					i += n
					continue
				}
			}
		}

		if top == '"' && c == '{' && i > 0 && s[i-1] == '#' {
			stack = append(stack, '}')
			i++
			continue
		}

		i++
	}
	return "", 0, stack[len(stack)-1], false
}

type interpolateOpts struct {
	isRegex bool // raw segments are HEREGEX_OMIT-flattened instead of quoted verbatim
	wrap    bool // wrap a multi-piece result in synthetic ( ... ) with StringEnd
}

// interpolatePiece is either a literal STRING token or the (possibly
// multi-token) result of lexing one #{...} fragment.
type interpolatePiece struct {
	tokens []*token.Token
}

// interpolateString implements §4.7: split body into raw segments and
// #{expr} fragments, lex each fragment with a fresh nested lexer
// instance, and append the resulting piece sequence — joined by
// synthetic '+' and optionally wrapped in synthetic '(' ... ')' — to s.
func (s *State) interpolateString(body string, opts interpolateOpts) *SyntaxError {
	pieces, err := s.splitInterpolation(body, opts)
	if err != nil {
		return err
	}

	if len(pieces) == 1 && !opts.wrap {
		s.tokens = append(s.tokens, pieces[0].tokens...)
		return nil
	}
	if len(pieces) == 1 && len(pieces[0].tokens) == 1 && pieces[0].tokens[0].Tag == token.STRING {
		s.tokens = append(s.tokens, pieces[0].tokens...)
		return nil
	}

	if opts.wrap {
		s.emit(token.STRING_PART_OPEN, "(", "")
	}
	for i, p := range pieces {
		if i > 0 {
			s.emit(token.STRING_PART_PLUS, "+", "")
		}
		s.tokens = append(s.tokens, p.tokens...)
	}
	if opts.wrap {
		tok := s.emit(token.STRING_PART_CLOSE, ")", "")
		tok.StringEnd = true
	}
	return nil
}

// splitInterpolation walks body once, collecting alternating raw-text
// and #{expr} pieces.
func (s *State) splitInterpolation(body string, opts interpolateOpts) ([]interpolatePiece, *SyntaxError) {
	var pieces []interpolatePiece
	i := 0
	lineOffset, colOffset := s.chunkLine, s.chunkColumn

	flushRaw := func(raw string, startLine, startCol int) {
		if raw == "" {
			return
		}
		text := raw
		if opts.isRegex {
			text = escapeSlashes(heregexOmitRe.ReplaceAllString(text, ""))
		} else {
			text = escapeLines(text)
		}
		quote := `"`
		if opts.isRegex {
			quote = ""
		}
		sp := token.Span{FirstLine: startLine, FirstColumn: startCol}
		_, _, sp.LastLine, sp.LastColumn = advance(startLine, startCol, raw)
		pieces = append(pieces, interpolatePiece{tokens: []*token.Token{
			token.New(token.STRING, quote+text+quote, sp.FirstLine, sp.FirstColumn, sp.LastLine, sp.LastColumn),
		}})
	}

	rawStart := 0
	curLine, curCol := lineOffset, colOffset
	rawStartLine, rawStartCol := curLine, curCol

	for i < len(body) {
		if body[i] == '#' && i+1 < len(body) && body[i+1] == '{' && (i == 0 || body[i-1] != '\\') {
			flushRaw(body[rawStart:i], rawStartLine, rawStartCol)

			exprStartLine, exprStartCol, _, _ := advance(curLine, curCol, body[rawStart:i]+"#{")
			inner, consumed, missing, ok := balancedString(body[i+2:], '}')
			if !ok {
				return nil, s.errorf("missing %q to terminate interpolation", missing)
			}

			innerToks, ierr := lexFragment(inner, exprStartLine, exprStartCol)
			if ierr != nil {
				return nil, ierr
			}
			innerToks = trimFragmentTerminators(innerToks)
			if len(innerToks) > 1 {
				open := token.New(token.LPAREN, "(", exprStartLine, exprStartCol, exprStartLine, exprStartCol)
				closeSp := innerToks[len(innerToks)-1].Span
				closeTok := token.New(token.RPAREN, ")", closeSp.LastLine, closeSp.LastColumn, closeSp.LastLine, closeSp.LastColumn)
				wrapped := make([]*token.Token, 0, len(innerToks)+2)
				wrapped = append(wrapped, open)
				wrapped = append(wrapped, innerToks...)
				wrapped = append(wrapped, closeTok)
				innerToks = wrapped
			}
			pieces = append(pieces, interpolatePiece{tokens: innerToks})

			advanceText := body[rawStart : i+2+consumed]
			curLine, curCol, _, _ = advance(curLine, curCol, advanceText)
			i += 2 + consumed
			rawStart = i
			rawStartLine, rawStartCol = curLine, curCol
			continue
		}
		i++
	}
	flushRaw(body[rawStart:], rawStartLine, rawStartCol)

	if len(pieces) == 0 {
		pieces = append(pieces, interpolatePiece{tokens: []*token.Token{
			token.New(token.STRING, `""`, lineOffset, colOffset, lineOffset, colOffset),
		}})
	}
	return pieces, nil
}

// lexFragment tokenizes one #{...} expression fragment with a fresh
// nested lexer instance (§4.7, §9: "model as a pure function
// lex(substring, start_line, start_col) -> tokens").
func lexFragment(src string, startLine, startCol int) ([]*token.Token, *SyntaxError) {
	toks, err := scan(src, Options{Line: startLine, Column: startCol, NoRewrite: true})
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// trimFragmentTerminators drops a leading and/or trailing TERMINATOR
// from a lexed fragment (§4.7: "a trailing TERMINATOR, if any, is
// discarded (also the leading one)").
func trimFragmentTerminators(toks []*token.Token) []*token.Token {
	if len(toks) > 0 && toks[0].Tag == token.TERMINATOR {
		toks = toks[1:]
	}
	if len(toks) > 0 && toks[len(toks)-1].Tag == token.TERMINATOR {
		toks = toks[:len(toks)-1]
	}
	return toks
}
