package lexer

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/glint-lang/glint/internal/token"
)

// SyntaxError is the lexer's single structured error shape (§6 "Error
// channel", §7). Lexing aborts on the first one.
type SyntaxError struct {
	Message     string
	FirstLine   int
	FirstColumn int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.FirstLine, e.FirstColumn, e.Message)
}

// errorf builds a *SyntaxError anchored at the lexer's current position.
func (s *State) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message:     fmt.Sprintf(format, args...),
		FirstLine:   s.chunkLine,
		FirstColumn: s.chunkColumn,
	}
}

// reservedWordError builds a "reserved word" SyntaxError, enriched with a
// fuzzy "did you mean" suggestion against the keyword/reserved-word table
// when a close match exists. The suggestion is cosmetic: it never changes
// whether lexing fails, only the message explaining why.
func (s *State) reservedWordError(word string) *SyntaxError {
	msg := fmt.Sprintf("reserved word %q", word)
	if suggestion := suggestKeyword(word); suggestion != "" && suggestion != word {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return s.errorf("%s", msg)
}

// suggestKeyword finds the closest other entry in the combined
// keyword/alias/reserved-word table to word: a candidate qualifies when
// either word's letters appear in order within the other, and candidates
// are ranked by Levenshtein distance. Returns "" if nothing is close
// enough to be useful.
func suggestKeyword(word string) string {
	candidates := candidateWords()
	best := ""
	bestRank := -1
	for _, c := range candidates {
		if c == word {
			continue
		}
		if !fuzzy.MatchFold(word, c) && !fuzzy.MatchFold(c, word) {
			continue
		}
		rank := fuzzy.RankMatchFold(word, c)
		if rank < 0 {
			rank = fuzzy.RankMatchFold(c, word)
		}
		if rank < 0 {
			continue
		}
		if bestRank == -1 || rank < bestRank {
			bestRank = rank
			best = c
		}
	}
	// A rank above this is almost certainly an unrelated word; keep the
	// suggestion from being noise on short, very different identifiers.
	if bestRank > 3 {
		return ""
	}
	return best
}

var cachedCandidates []string

func candidateWords() []string {
	if cachedCandidates != nil {
		return cachedCandidates
	}
	set := token.AllReserved()
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	cachedCandidates = words
	return words
}
