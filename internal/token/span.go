package token

import (
	"fmt"
	"strings"
)

// Span is an inclusive-inclusive source range. A single-character token has
// Last == First.
type Span struct {
	FirstLine   int
	FirstColumn int
	LastLine    int
	LastColumn  int
}

// Zero reports whether the span was never assigned real coordinates.
func (s Span) Zero() bool {
	return s == Span{}
}

func (s Span) String() string {
	if s.FirstLine == s.LastLine {
		return fmt.Sprintf("%d:%d-%d", s.FirstLine, s.FirstColumn, s.LastColumn)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.FirstLine, s.FirstColumn, s.LastLine, s.LastColumn)
}

// Token is the lexer's output unit: a tagged, spanned lexeme plus the
// side-flags §3 of the spec calls out.
type Token struct {
	Tag   Tag
	Value string
	Span  Span

	// Spaced is true when the token is followed by whitespace before the
	// next token begins.
	Spaced bool
	// NewLine is true when the token is followed by a newline (possibly
	// after trailing whitespace) before the next token begins.
	NewLine bool
	// Reserved marks an identifier whose surface text is a reserved word
	// but which was accepted because it appears in property position.
	Reserved bool
	// StringEnd marks a synthetic ')' that closes an interpolation group.
	StringEnd bool
	// Origin cross-references the token this one was derived from (e.g. a
	// RELATION produced by consolidating a preceding '!' into "!in"),
	// for error messages that want to point at the original source text.
	Origin *Token
}

func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%q)@%s", Name(t.Tag), t.Value, t.Span)
}

// Dump renders a token stream as one line per token (tag, value, span),
// for test-failure output and debugging — the human-readable counterpart
// to feeding the stream into a downstream parser. It never allocates a
// machine-readable encoding; callers that want that range over the
// stream themselves.
func Dump(tokens []*Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// New constructs a Token with the given tag/value and the span given by
// the four coordinates.
func New(tag Tag, value string, firstLine, firstColumn, lastLine, lastColumn int) *Token {
	return &Token{
		Tag:   tag,
		Value: value,
		Span: Span{
			FirstLine:   firstLine,
			FirstColumn: firstColumn,
			LastLine:    lastLine,
			LastColumn:  lastColumn,
		},
	}
}
