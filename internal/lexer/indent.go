package lexer

import (
	"regexp"

	"github.com/glint-lang/glint/internal/token"
)

var lineRe = regexp.MustCompile(`^(?:\n[^\n\S]*)+`)

// continuerRe recognizes the textual line-continuer forms of §4.8's
// unfinished(): a leading comma, a dot not followed by a digit or
// another dot, '::', or '?.' at the start of the next line's content.
var continuerRe = regexp.MustCompile(`^(?:,|\.(?:[^.\d]|$)|::|\?\.)`)

var unfinishedTailTags = map[token.Tag]bool{
	token.BACKSLASH: true, token.DOT: true, token.QDOT: true, token.QDCOLON: true,
	token.UNARY: true, token.MATH: true, token.UNARY_MATH: true,
	token.PLUS: true, token.MINUS: true, token.POW: true, token.SHIFT: true,
	token.RELATION: true, token.COMPARE: true, token.LOGIC: true,
	token.THROW: true, token.EXTENDS: true,
}

// tryLine is the indentation-engine matcher of §4.8 ("line" in the
// dispatch precedence chain).
func (s *State) tryLine() (bool, *SyntaxError) {
	m := lineRe.FindString(s.chunk)
	if m == "" {
		return false, nil
	}
	last := lastNewlineIndex(m)
	size := len(m) - last - 1

	s.seenFor = false

	rest := s.chunk[len(m):]
	noNewlines := continuerRe.MatchString(rest) || unfinishedTailTags[s.tailTag()]

	if prev := s.tail(); prev != nil {
		prev.NewLine = true
		prev.Spaced = true
	}

	s.consume(m)

	switch {
	case size-s.indebt == s.indent:
		if noNewlines {
			s.suppressNewlines()
		} else {
			s.newlineToken()
		}

	case size > s.indent:
		if noNewlines {
			s.indebt = size - s.indent
			s.suppressNewlines()
			return true, nil
		}
		if len(s.tokens) == 0 {
			s.baseIndent = size
			s.indent = size
			return true, nil
		}
		s.newlineToken()
		delta := size - s.indent + s.outdebt
		tok := s.emit(token.INDENT, "", "")
		tok.Value = itoa(delta)
		s.pushIndent(delta)
		s.pushEnd("OUTDENT")
		s.outdebt = 0
		s.indebt = 0
		s.indent = size

	case size < s.baseIndent:
		return false, s.errorf("missing indentation")

	default: // size < s.indent
		s.indebt = 0
		if err := s.outdentToken(s.indent-size, noNewlines); err != nil {
			return false, err
		}
	}

	return true, nil
}

func lastNewlineIndex(s string) int {
	idx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			idx = i
		}
	}
	return idx
}

// outdentToken implements §4.8's outdentToken(moveOut, noNewlines). The
// "next char is a closer" rounding check always looks at s.chunk[0]: by
// the time this runs, s.chunk has already had the triggering
// indentation/whitespace run consumed, so the first character of
// s.chunk is always the one immediately following that run.
func (s *State) outdentToken(moveOut int, noNewlines bool) *SyntaxError {
	decreased := s.indent - moveOut
	popped := false

	for moveOut > 0 {
		if len(s.indents) == 0 {
			moveOut = 0
			break
		}
		lastIndent := s.topIndent()
		switch {
		case lastIndent == s.outdebt:
			moveOut -= s.outdebt
			s.outdebt = 0
		case lastIndent < s.outdebt:
			s.outdebt -= lastIndent
			moveOut -= lastIndent
		default:
			s.popIndent()
			dent := lastIndent + s.outdebt
			if len(s.chunk) > 0 && isCloser(s.chunk[0]) {
				decreased -= dent - moveOut
				moveOut = dent
			}
			s.outdebt = 0
			if err := s.pair("OUTDENT"); err != nil {
				return err
			}
			s.emit(token.OUTDENT, itoa(moveOut), "")
			popped = true
			moveOut -= dent
		}
	}

	if popped {
		s.outdebt -= moveOut
	}

	for s.tailTag() == token.SEMICOLON {
		s.popTail()
	}
	if len(s.tokens) > 0 && s.tailTag() != token.TERMINATOR && !noNewlines {
		s.emit(token.TERMINATOR, "\n", "")
	}
	s.indent = decreased
	return nil
}

// newlineToken emits a TERMINATOR, first popping any trailing ';'
// tokens, unless the tail is already a TERMINATOR (§4.8 case 1) or
// nothing has been emitted yet.
func (s *State) newlineToken() {
	for s.tailTag() == token.SEMICOLON {
		s.popTail()
	}
	if len(s.tokens) > 0 && s.tailTag() != token.TERMINATOR {
		s.emit(token.TERMINATOR, "\n", "")
	}
}

// suppressNewlines pops a trailing line-continuation '\' token, if
// present (§4.8 case "noNewlines").
func (s *State) suppressNewlines() {
	if s.tailTag() == token.BACKSLASH {
		s.popTail()
	}
}

// closeIndentation emits OUTDENTs at EOF for every open indent, moving
// from the current indent back to baseIndent (§4.1, §4.8).
func (s *State) closeIndentation() *SyntaxError {
	return s.outdentToken(s.indent-s.baseIndent, false)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
