package lexer

import (
	"regexp"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

var (
	herecommentRe = regexp.MustCompile(`(?s)^###.*?###`)
	lineCommentRe = regexp.MustCompile(`^#[^\n]*`)
)

// tryComment is the comment matcher of §4.5: herecomments emit a
// HERECOMMENT token re-indented to the current column; plain line
// comments are discarded entirely (no token).
func (s *State) tryComment() (bool, *SyntaxError) {
	if len(s.chunk) == 0 || s.chunk[0] != '#' {
		return false, nil
	}

	if m := herecommentRe.FindString(s.chunk); m != "" {
		if strings.Contains(m, "*/") {
			return false, s.errorf("herecomment body cannot contain '*/'")
		}
		body := m[3 : len(m)-3]
		reindented := reindent(body, s.indent)
		s.emit(token.HERECOMMENT, reindented, m)
		s.consume(m)
		return true, nil
	}

	m := lineCommentRe.FindString(s.chunk)
	if m == "" {
		return false, nil
	}
	s.consume(m)
	return true, nil
}

// reindent implements the herecomment half of §4.5: the body is
// re-indented by `indent` columns (the mirror of heredoc's de-indent).
func reindent(body string, indent int) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	lines := strings.Split(body, "\n")

	// A herecomment body typically opens and closes on its own blank
	// line (the text right after "###" and right before the closing
	// "###"); drop those so they don't become an empty first/last
	// entry after padding, without touching interior blank lines.
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	pad := strings.Repeat(" ", indent)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + strings.TrimLeft(line, " \t")
	}
	return strings.Join(lines, "\n")
}
