package lexer

import "regexp"

var whitespaceRe = regexp.MustCompile(`^[^\n\S]+`)

// tryWhitespace consumes a run of inline (non-newline) whitespace and
// marks the previous token Spaced, per §3's token side-flags and §4.6's
// reliance on that flag for regex-vs-division disambiguation.
func (s *State) tryWhitespace() (bool, *SyntaxError) {
	m := whitespaceRe.FindString(s.chunk)
	if m == "" {
		return false, nil
	}
	if prev := s.tail(); prev != nil {
		prev.Spaced = true
	}
	s.consume(m)
	return true, nil
}
