package lexer

// location.go is the "location tracker" component: mapping an offset
// within the chunk currently being scanned to an absolute (line, column)
// pair, accumulated across the whole source (spec component 3). Columns
// are 0-based.

// advance walks text starting at (startLine, startCol) and returns both
// the position immediately following text (endLine, endCol — where the
// next lexeme starts) and the position of the last rune consumed
// (lastLine, lastCol — the inclusive end of a span covering text). For
// empty text, all four equal the start position.
func advance(startLine, startCol int, text string) (endLine, endCol, lastLine, lastCol int) {
	line, col := startLine, startCol
	lastLine, lastCol = startLine, startCol
	for _, r := range text {
		lastLine, lastCol = line, col
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col, lastLine, lastCol
}
