package lexer

import (
	"regexp"

	"github.com/glint-lang/glint/internal/token"
)

var embeddedJSRe = regexp.MustCompile("(?s)^```.*?```|^`[^`]*`")

// tryEmbeddedJS matches backtick-delimited raw JavaScript passthrough
// (the "embedded-JS" step of §4.1's dispatch chain, emitting the JS tag
// named in §3's closed tag set).
func (s *State) tryEmbeddedJS() (bool, *SyntaxError) {
	if len(s.chunk) == 0 || s.chunk[0] != '`' {
		return false, nil
	}
	m := embeddedJSRe.FindString(s.chunk)
	if m == "" {
		return false, s.errorf("missing ` to terminate embedded JavaScript")
	}
	body := stripBackticks(m)
	s.emit(token.JS, body, m)
	s.consume(m)
	return true, nil
}

func stripBackticks(m string) string {
	if len(m) >= 6 && m[:3] == "```" {
		return m[3 : len(m)-3]
	}
	return m[1 : len(m)-1]
}
