package lexer

import (
	"regexp"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

var singleQuoteRe = regexp.MustCompile(`^'[^\\']*(?:\\.[^\\']*)*'`)

var octalEscapeRe = regexp.MustCompile(`\\0[0-7]|\\[1-7]`)

// tryString is the (non-heredoc) string matcher of §4.4.
func (s *State) tryString() (bool, *SyntaxError) {
	if len(s.chunk) == 0 {
		return false, nil
	}

	switch s.chunk[0] {
	case '\'':
		m := singleQuoteRe.FindString(s.chunk)
		if m == "" {
			return false, s.errorf("missing ' to terminate string")
		}
		inner := m[1 : len(m)-1]
		if loc := octalEscapeRe.FindStringIndex(inner); loc != nil {
			return false, s.errorf("octal escape sequences are not allowed in strings")
		}
		s.emit(token.STRING, "'"+escapeLines(inner)+"'", m)
		s.consume(m)
		return true, nil

	case '"':
		content, consumed, missing, ok := balancedString(s.chunk[1:], '"')
		if !ok {
			return false, s.errorf("missing %q to terminate string", missing)
		}
		whole := s.chunk[:consumed+1]

		if loc := octalEscapeRe.FindStringIndex(content); loc != nil {
			return false, s.errorf("octal escape sequences are not allowed in strings")
		}

		if containsInterpolation(content) {
			if err := s.interpolateString(content, interpolateOpts{wrap: true}); err != nil {
				return false, err
			}
			s.consume(whole)
			return true, nil
		}

		s.emit(token.STRING, `"`+escapeLines(content)+`"`, whole)
		s.consume(whole)
		return true, nil
	}

	return false, nil
}

// escapeLines normalizes embedded newlines in a string body (§4.4):
// JavaScript string literals can't contain a literal newline, so each
// one becomes the two-character escape.
func escapeLines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
