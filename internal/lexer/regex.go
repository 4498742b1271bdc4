package lexer

import (
	"regexp"

	"github.com/glint-lang/glint/internal/token"
)

var (
	heregexRe     = regexp.MustCompile(`^/{3}[\s\S]*?/{3}[imgy]{0,4}`)
	inlineRegexRe = regexp.MustCompile(`^/(?:\\.|\[(?:\\.|[^\]\n])*\]|[^/\n\\])*/[imgy]{0,4}`)
	heregexOmitRe = regexp.MustCompile(`(?s)\s+|#.*`)
)

// tryRegex is the regex matcher of §4.6.
func (s *State) tryRegex() (bool, *SyntaxError) {
	if len(s.chunk) == 0 || s.chunk[0] != '/' {
		return false, nil
	}

	if m := heregexRe.FindString(s.chunk); m != "" {
		return s.emitHeregex(m)
	}

	if !s.regexAllowedHere() {
		return false, nil
	}

	m := inlineRegexRe.FindString(s.chunk)
	if m == "" {
		return false, nil
	}
	flagsIdx := lastSlash(m)
	body := m[1:flagsIdx]
	flags := m[flagsIdx+1:]

	if body == "" {
		// Empty regex falls through to floor-division (§4.6).
		return false, nil
	}
	if len(body) > 0 && body[0] == '*' {
		return false, s.errorf("regex body cannot start with '*'")
	}

	if containsInterpolation(body) {
		return s.emitInterpolatedRegex(m, body, flags)
	}

	s.emit(token.REGEX, m, m)
	s.consume(m)
	return true, nil
}

// regexAllowedHere implements the regex-vs-division disambiguation of
// §4.6, consulting the previous token's tag and spacing.
func (s *State) regexAllowedHere() bool {
	prev := s.tail()
	if prev == nil {
		return true
	}
	if prev.Spaced {
		return !token.NotRegexSpaced[prev.Tag]
	}
	return !token.NotRegexUnspaced[prev.Tag]
}

func lastSlash(m string) int {
	for i := len(m) - 1; i > 0; i-- {
		if m[i] == '/' {
			return i
		}
	}
	return len(m) - 1
}

func containsInterpolation(body string) bool {
	for i := 0; i+1 < len(body); i++ {
		if body[i] == '#' && body[i+1] == '{' && (i == 0 || body[i-1] != '\\') {
			return true
		}
	}
	return false
}

// emitHeregex handles both interpolated and plain triple-slash regexes
// (§4.6).
func (s *State) emitHeregex(m string) (bool, *SyntaxError) {
	end := len(m)
	for end > 0 && isFlagChar(m[end-1]) {
		end--
	}
	flags := m[end:]
	body := m[3 : end-3]

	if len(body) > 0 && body[0] == '*' {
		return false, s.errorf("heregex body cannot start with '*'")
	}

	if containsInterpolation(body) {
		return s.emitInterpolatedRegex(m, body, flags)
	}

	flattened := heregexOmitRe.ReplaceAllString(body, "")
	flattened = escapeSlashes(flattened)
	s.emit(token.REGEX, "/"+flattened+"/"+flags, m)
	s.consume(m)
	return true, nil
}

func isFlagChar(b byte) bool {
	switch b {
	case 'i', 'm', 'g', 'y':
		return true
	}
	return false
}

func escapeSlashes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '/' && (i == 0 || s[i-1] != '\\') {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// emitInterpolatedRegex rewrites a regex containing #{...} into a
// RegExp(...) call, reusing the string interpolation splitter (§4.6:
// "rewritten as a call").
func (s *State) emitInterpolatedRegex(whole, body, flags string) (bool, *SyntaxError) {
	s.emit(token.IDENTIFIER, "RegExp", "")
	s.emit(token.CALL_START, "(", "")

	if err := s.interpolateString(body, interpolateOpts{isRegex: true}); err != nil {
		return false, err
	}

	if flags != "" {
		s.emit(token.COMMA, ",", "")
		s.emit(token.STRING, `"`+flags+`"`, "")
	}
	s.emit(token.CALL_END, ")", "")
	s.consume(whole)
	return true, nil
}

// matchEmbeddedRegexLen probes for a regex/heregex literal at the start
// of s without emitting anything, for balancedString's "skip an
// embedded regex" rule (§4.7).
func matchEmbeddedRegexLen(s string) int {
	if m := heregexRe.FindString(s); m != "" {
		return len(m)
	}
	if m := inlineRegexRe.FindString(s); m != "" {
		return len(m)
	}
	return 0
}
