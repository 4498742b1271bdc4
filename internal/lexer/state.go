package lexer

import "github.com/glint-lang/glint/internal/token"

// State is the single-use, per-tokenize-call lexer state (§3). A fresh
// State is also what the interpolation sublexer spins up for each
// `#{...}` fragment (§4.7, §9 "nested lexer").
type State struct {
	source string // the cleaned source, fixed for the life of this State
	chunk  string // remaining-to-scan suffix of source

	tokens []*token.Token

	indent     int
	baseIndent int
	indebt     int
	outdebt    int
	indents    []int
	ends       []string

	chunkLine   int
	chunkColumn int

	seenFor  bool
	literate bool
}

func newState(source string, opts Options) *State {
	return &State{
		source:      source,
		chunk:       source,
		tokens:      make([]*token.Token, 0, len(source)/4+8),
		chunkLine:   opts.Line,
		chunkColumn: opts.Column,
		literate:    opts.Literate,
	}
}

// --- tail view (§9: tail(), tailTag(), tailValue(), popTail()) ---

func (s *State) tail() *token.Token {
	if len(s.tokens) == 0 {
		return nil
	}
	return s.tokens[len(s.tokens)-1]
}

func (s *State) tailTag() token.Tag {
	if t := s.tail(); t != nil {
		return t.Tag
	}
	return 0
}

func (s *State) tailValue() string {
	if t := s.tail(); t != nil {
		return t.Value
	}
	return ""
}

// popTail removes and returns the last emitted token, or nil if empty.
func (s *State) popTail() *token.Token {
	if len(s.tokens) == 0 {
		return nil
	}
	t := s.tokens[len(s.tokens)-1]
	s.tokens = s.tokens[:len(s.tokens)-1]
	return t
}

func (s *State) push(t *token.Token) {
	s.tokens = append(s.tokens, t)
}

// emit constructs a token spanning `text` starting at the state's current
// position and appends it. It does not advance the position; callers
// follow it with consume. Returns the emitted token so callers can set
// side-flags on it.
func (s *State) emit(tag token.Tag, value string, text string) *token.Token {
	sp := s.spanHere(text)
	t := token.New(tag, value, sp.FirstLine, sp.FirstColumn, sp.LastLine, sp.LastColumn)
	s.push(t)
	return t
}

// spanHere builds the span that `text` would occupy starting at the
// state's current chunk position, without advancing that position.
func (s *State) spanHere(text string) token.Span {
	_, _, lastLine, lastCol := advance(s.chunkLine, s.chunkColumn, text)
	return token.Span{
		FirstLine:   s.chunkLine,
		FirstColumn: s.chunkColumn,
		LastLine:    lastLine,
		LastColumn:  lastCol,
	}
}

// consume advances the scan position past text, a prefix of the current
// chunk, and removes its len(text) bytes from the chunk. Matchers call this after
// emitting whatever tokens correspond to text.
func (s *State) consume(text string) {
	endLine, endCol, _, _ := advance(s.chunkLine, s.chunkColumn, text)
	s.chunkLine, s.chunkColumn = endLine, endCol
	s.chunk = s.chunk[len(text):]
}

// --- ends stack (pair matcher bookkeeping, §4.10) ---

func (s *State) pushEnd(closer string) {
	s.ends = append(s.ends, closer)
}

func (s *State) topEnd() string {
	if len(s.ends) == 0 {
		return ""
	}
	return s.ends[len(s.ends)-1]
}

func (s *State) popEnd() string {
	if len(s.ends) == 0 {
		return ""
	}
	e := s.ends[len(s.ends)-1]
	s.ends = s.ends[:len(s.ends)-1]
	return e
}

// --- indents stack ---

func (s *State) pushIndent(n int) {
	s.indents = append(s.indents, n)
}

func (s *State) topIndent() int {
	if len(s.indents) == 0 {
		return 0
	}
	return s.indents[len(s.indents)-1]
}

func (s *State) popIndent() int {
	if len(s.indents) == 0 {
		return 0
	}
	n := s.indents[len(s.indents)-1]
	s.indents = s.indents[:len(s.indents)-1]
	return n
}
