package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/glint-lang/glint/internal/token"
)

// tagValue is the shape go-cmp diffs token sequences against: tag and
// surface value only, spans omitted (mirrors opal-lang-opal's
// lexer_test.go tokenExpectation/assertTokens convention).
type tagValue struct {
	Tag   string
	Value string
}

func lexOK(t *testing.T, src string) []*token.Token {
	t.Helper()
	toks, err := Tokenize(src, Options{NoRewrite: true})
	require.NoError(t, err)
	return toks
}

func assertTokens(t *testing.T, toks []*token.Token, want []tagValue) {
	t.Helper()
	got := make([]tagValue, len(toks))
	for i, tk := range toks {
		got[i] = tagValue{Tag: token.Name(tk.Tag), Value: tk.Value}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSimpleAssignment(t *testing.T) {
	toks := lexOK(t, "a = 1")
	assertTokens(t, toks, []tagValue{
		{"IDENTIFIER", "a"}, {"=", "="}, {"NUMBER", "1"}, {"TERMINATOR", "\n"},
	})
}

func TestIfThenElseWithAliases(t *testing.T) {
	toks := lexOK(t, "if yes then 1 else 2")
	assertTokens(t, toks, []tagValue{
		{"IF", "if"}, {"BOOL", "true"}, {"THEN", "then"},
		{"NUMBER", "1"}, {"ELSE", "else"}, {"NUMBER", "2"}, {"TERMINATOR", "\n"},
	})
}

func TestStringInterpolation(t *testing.T) {
	toks := lexOK(t, `"hi #{x}!"`)
	assertTokens(t, toks, []tagValue{
		{"(", "("}, {"STRING", `"hi "`}, {"+", "+"}, {"IDENTIFIER", "x"},
		{"+", "+"}, {"STRING", `"!"`}, {")", ")"}, {"TERMINATOR", "\n"},
	})
	last := toks[len(toks)-2]
	require.True(t, last.StringEnd, "closing paren of an interpolation must carry StringEnd")
}

func TestForOwnOfIndentBlock(t *testing.T) {
	toks := lexOK(t, "for own k, v of obj\n  k")
	assertTokens(t, toks, []tagValue{
		{"FOR", "for"}, {"OWN", "own"}, {"IDENTIFIER", "k"}, {",", ","},
		{"IDENTIFIER", "v"}, {"FOROF", "of"}, {"IDENTIFIER", "obj"},
		{"TERMINATOR", "\n"}, {"INDENT", "2"}, {"IDENTIFIER", "k"},
		{"OUTDENT", "2"}, {"TERMINATOR", "\n"},
	})
}

func TestIsNotAliasAndMerge(t *testing.T) {
	toks := lexOK(t, "x is not y")
	assertTokens(t, toks, []tagValue{
		{"IDENTIFIER", "x"}, {"COMPARE", "=="}, {"UNARY", "!"},
		{"IDENTIFIER", "y"}, {"TERMINATOR", "\n"},
	})
}

func TestDivisionNotRegex(t *testing.T) {
	toks := lexOK(t, "a/b/c")
	assertTokens(t, toks, []tagValue{
		{"IDENTIFIER", "a"}, {"/", "/"}, {"IDENTIFIER", "b"},
		{"/", "/"}, {"IDENTIFIER", "c"}, {"TERMINATOR", "\n"},
	})
}

func TestRegexAllowedAfterOperator(t *testing.T) {
	toks := lexOK(t, "x = /ab+c/")
	assertTokens(t, toks, []tagValue{
		{"IDENTIFIER", "x"}, {"=", "="}, {"REGEX", "/ab+c/"}, {"TERMINATOR", "\n"},
	})
}

func TestEmptyRegexFallsThroughToDivision(t *testing.T) {
	toks := lexOK(t, "a = b // c")
	var sawRegex bool
	for _, tk := range toks {
		if tk.Tag == token.REGEX {
			sawRegex = true
		}
	}
	require.False(t, sawRegex, "// must not be treated as a regex literal")
}

func TestFloorDivisionTagsAsMath(t *testing.T) {
	toks := lexOK(t, "a = b // c")
	assertTokens(t, toks, []tagValue{
		{"IDENTIFIER", "a"}, {"=", "="}, {"IDENTIFIER", "b"},
		{"MATH", "//"}, {"IDENTIFIER", "c"}, {"TERMINATOR", "\n"},
	})
}

func TestNumberNormalization(t *testing.T) {
	toks := lexOK(t, "0o17")
	require.Equal(t, "0xf", toks[0].Value)

	toks = lexOK(t, "0b1010")
	require.Equal(t, "0xa", toks[0].Value)

	toks = lexOK(t, "0xFF")
	require.Equal(t, "0xFF", toks[0].Value)
}

func TestLegacyOctalIsAnError(t *testing.T) {
	_, err := Tokenize("05", Options{NoRewrite: true})
	require.Error(t, err)
}

func TestUppercaseRadixIsAnError(t *testing.T) {
	_, err := Tokenize("0X1F", Options{NoRewrite: true})
	require.Error(t, err)
}

func TestEmptyInputEmitsNothing(t *testing.T) {
	toks := lexOK(t, "")
	require.Empty(t, toks)
}

func TestReservedWordMisuseError(t *testing.T) {
	_, err := Tokenize("let = 1", Options{NoRewrite: true})
	require.Error(t, err)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestIndentOutdentBalance(t *testing.T) {
	toks := lexOK(t, "if a\n  b\n  c\nd")
	var indents, outdents int
	for _, tk := range toks {
		switch tk.Tag {
		case token.INDENT:
			indents++
		case token.OUTDENT:
			outdents++
		}
	}
	require.Equal(t, indents, outdents)
}

func TestUnmatchedParenIsAnError(t *testing.T) {
	_, err := Tokenize("foo(1, 2", Options{NoRewrite: true})
	require.Error(t, err)
}

func TestHeredocDedent(t *testing.T) {
	toks := lexOK(t, "x = \"\"\"\n    line one\n    line two\n    \"\"\"")
	require.Equal(t, token.STRING, toks[2].Tag)
	require.Equal(t, `"line one\nline two"`, toks[2].Value)
}

func TestSingleQuoteNoInterpolation(t *testing.T) {
	toks := lexOK(t, `a = 'hi #{x}'`)
	require.Equal(t, token.STRING, toks[2].Tag)
	require.Equal(t, `'hi #{x}'`, toks[2].Value)
}

func TestHerecommentReindent(t *testing.T) {
	toks := lexOK(t, "###\nfoo\nbar\n###")
	require.Equal(t, token.HERECOMMENT, toks[0].Tag)
	require.Equal(t, "foo\nbar", toks[0].Value)
}

// TestOutdentAcrossBlankLine exercises a dedent whose triggering
// whitespace run spans more than one newline (a blank line between the
// last indented statement and the dedented one), the case that used to
// make outdentToken's "next char is a closer" check look at the wrong
// index into s.chunk.
func TestOutdentAcrossBlankLine(t *testing.T) {
	toks := lexOK(t, "if a\n  b\n\nc")
	assertTokens(t, toks, []tagValue{
		{"IF", "if"}, {"IDENTIFIER", "a"}, {"TERMINATOR", "\n"}, {"INDENT", "2"},
		{"IDENTIFIER", "b"}, {"OUTDENT", "2"}, {"TERMINATOR", "\n"},
		{"IDENTIFIER", "c"}, {"TERMINATOR", "\n"},
	})
}
