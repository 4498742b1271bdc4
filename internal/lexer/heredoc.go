package lexer

import (
	"regexp"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

var (
	tripleDoubleRe = regexp.MustCompile(`(?s)^"""(.*?)"""`)
	tripleSingleRe = regexp.MustCompile(`(?s)^'''(.*?)'''`)
)

// tryHeredoc is the heredoc matcher of §4.5. Runs ahead of the plain
// string matcher in the dispatch chain so `"""` isn't mistaken for an
// empty `""` followed by a stray `"`.
func (s *State) tryHeredoc() (bool, *SyntaxError) {
	if len(s.chunk) < 3 {
		return false, nil
	}

	switch {
	case strings.HasPrefix(s.chunk, `"""`):
		m := tripleDoubleRe.FindStringSubmatch(s.chunk)
		if m == nil {
			return false, s.errorf(`missing """ to terminate heredoc`)
		}
		whole, body := m[0], m[1]
		body = dedentHeredoc(body)
		if containsInterpolation(body) {
			if err := s.interpolateString(body, interpolateOpts{wrap: true}); err != nil {
				return false, err
			}
			s.consume(whole)
			return true, nil
		}
		s.emit(token.STRING, `"`+escapeLines(body)+`"`, whole)
		s.consume(whole)
		return true, nil

	case strings.HasPrefix(s.chunk, `'''`):
		m := tripleSingleRe.FindStringSubmatch(s.chunk)
		if m == nil {
			return false, s.errorf(`missing ''' to terminate heredoc`)
		}
		whole, body := m[0], m[1]
		body = dedentHeredoc(body)
		s.emit(token.STRING, `'`+escapeLines(body)+`'`, whole)
		s.consume(whole)
		return true, nil
	}

	return false, nil
}

// dedentHeredoc implements §4.5: strip a single leading newline, then
// de-indent by the minimum non-empty-line indent.
func dedentHeredoc(body string) string {
	body = strings.TrimPrefix(body, "\n")
	lines := strings.Split(body, "\n")

	// A final blank line is just the closing delimiter's own indentation,
	// not content; drop it so a properly-indented closer doesn't leave a
	// trailing newline in the string.
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	min := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		w := indentWidth(line)
		if min == -1 || w < min {
			min = w
		}
	}
	if min <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		if len(line) >= min {
			lines[i] = line[min:]
		} else {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
