package lexer

import (
	"strings"

	"github.com/glint-lang/glint/internal/config"
	"github.com/glint-lang/glint/internal/token"
)

// Tokenize is the driver of §4.1: it cleans the source, runs the scan
// loop to a token stream, closes any outstanding indentation at EOF,
// and — unless Options.NoRewrite is set — passes the result through the
// external Rewriter hook.
func Tokenize(source string, opts Options) ([]*token.Token, error) {
	opts = opts.resolved()
	toks, err := scan(source, opts)
	if err != nil {
		return nil, err
	}
	if opts.NoRewrite {
		return toks, nil
	}
	rewritten, rerr := opts.Hook(toks)
	if rerr != nil {
		return nil, rerr
	}
	return rewritten, nil
}

// scan runs clean + the dispatch loop + closeIndentation, returning the
// raw (pre-Rewriter) token stream. Shared by the top-level Tokenize and
// by the interpolation sublexer's nested lexer invocations (§4.7, §9).
func scan(source string, opts Options) ([]*token.Token, *SyntaxError) {
	cleaned, lineShift := clean(source, opts.Literate)

	s := newState(cleaned, opts)
	s.chunkLine += lineShift

	for len(s.chunk) > 0 {
		config.TraceFn("dispatch", dispatch)
		consumed, err := dispatch(s)
		if err != nil {
			return nil, err
		}
		if !consumed {
			// Guaranteed fallback never actually leaves nothing consumed;
			// this only triggers on a genuinely empty chunk (handled by
			// the loop condition) or an internal matcher bug.
			return nil, s.errorf("internal error: no matcher consumed input")
		}
	}

	if err := s.closeIndentation(); err != nil {
		return nil, err
	}
	if len(s.ends) != 0 {
		return nil, s.errorf("missing %s", s.topEnd())
	}

	return s.tokens, nil
}

// clean implements §4.1's "clean" pass: strip an optional BOM, delete
// carriage returns, trim trailing spaces on lines, prepend a synthetic
// newline (and report a one-line negative shift) when the source begins
// with whitespace, and strip non-indented Markdown lines when literate.
func clean(source string, literate bool) (string, int) {
	s := source
	s = strings.TrimPrefix(s, "\xEF\xBB\xBF")
	s = strings.ReplaceAll(s, "\r", "")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")

	if literate {
		s = stripLiterate(s)
	}

	lineShift := 0
	if len(s) > 0 && isSpaceOrTab(s[0]) {
		s = "\n" + s
		lineShift = -1
	}
	return s, lineShift
}

// stripLiterate is the trivial Markdown filter named in §1's Non-goals
// boundary: literate source is plain prose except lines indented by at
// least four columns, which are code.
func stripLiterate(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "    ") || strings.TrimSpace(line) == "" {
			out = append(out, strings.TrimPrefix(line, "    "))
		}
	}
	return strings.Join(out, "\n")
}
