package glint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// tagValue is the public-facade counterpart of internal/lexer's test
// helper: diff token sequences on tag name + value, spans omitted.
type tagValue struct {
	Tag   string
	Value string
}

func tagValues(toks []*Token) []tagValue {
	out := make([]tagValue, len(toks))
	for i, t := range toks {
		out[i] = tagValue{Tag: TagName(t.Tag), Value: t.Value}
	}
	return out
}

func TestTokenizeDefaultOptions(t *testing.T) {
	toks, err := Tokenize("a = 1", DefaultOptions())
	require.NoError(t, err)
	want := []tagValue{
		{"IDENTIFIER", "a"}, {"=", "="}, {"NUMBER", "1"}, {"TERMINATOR", "\n"},
	}
	if diff := cmp.Diff(want, tagValues(toks)); diff != "" {
		t.Fatalf("token sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeZeroValueOptionsMatchesDefaults(t *testing.T) {
	zero, err := Tokenize("x + y", Options{})
	require.NoError(t, err)
	def, err := Tokenize("x + y", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, tagValues(def), tagValues(zero))
}

func TestReservedWordsIncludesStrictProscribed(t *testing.T) {
	reserved := ReservedWords()
	for w := range StrictProscribed() {
		require.True(t, reserved[w], "ReservedWords() missing strict-proscribed word %q", w)
	}
}

func TestSyntaxErrorOnUnterminatedString(t *testing.T) {
	_, err := Tokenize(`x = "unterminated`, DefaultOptions())
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 0, se.FirstLine)
}

func TestDumpRendersOneLinePerToken(t *testing.T) {
	toks, err := Tokenize("a = 1", DefaultOptions())
	require.NoError(t, err)
	out := Dump(toks)
	require.Equal(t, len(toks), len(splitNonEmptyLines(out)))
}

func splitNonEmptyLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	return lines
}
