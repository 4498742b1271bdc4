package lexer

// charclass.go mirrors the teacher's runes.go: small rune-class
// predicates used by matchers that need more than a single anchored
// regexp, kept separate from the regexp-driven matchers for clarity.

func isSpaceOrTab(r byte) bool {
	return r == ' ' || r == '\t'
}

// isCloser reports whether r is one of the three characters that can
// auto-close an outstanding indentation when it appears immediately
// after an outdent (§4.8 outdentToken's "next char is a closer" check).
func isCloser(r byte) bool {
	return r == ')' || r == '}' || r == ']'
}

// indentWidth returns the length of the run of spaces/tabs at the start
// of s.
func indentWidth(s string) int {
	n := 0
	for n < len(s) && isSpaceOrTab(s[n]) {
		n++
	}
	return n
}
