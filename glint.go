// Package glint exposes the lexer core of the glint language: source
// text in, a tagged token stream out. Everything downstream of the
// token stream (the Rewriter, the parser/grammar, code generation) is a
// separate collaborator this package only defines a seam for.
package glint

import (
	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/rewriter"
	"github.com/glint-lang/glint/internal/token"
)

// Tag is the symbolic kind of a token; re-exported so callers never need
// to import internal/token directly.
type Tag = token.Tag

// Token is a single lexed token: a tagged, spanned, possibly-flagged
// lexeme (§3).
type Token = token.Token

// Span is a token's inclusive (first_line, first_column) .. (last_line,
// last_column) location.
type Span = token.Span

// SyntaxError is the lexer's single structured error shape (§6, §7).
type SyntaxError = lexer.SyntaxError

// RewriteHook post-processes a complete token stream before Tokenize
// returns it.
type RewriteHook = rewriter.Hook

// Options configures a single Tokenize call (§6).
type Options = lexer.Options

// DefaultOptions returns an Options value with every field at the
// documented default: origin (0,0), non-literate, rewrite enabled with
// a no-op hook.
func DefaultOptions() Options {
	return lexer.DefaultOptions()
}

// Tokenize lexes source into a token stream per the options given. The
// zero value of Options is a fully valid, all-defaults configuration.
func Tokenize(source string, opts Options) ([]*Token, error) {
	return lexer.Tokenize(source, opts)
}

// ReservedWords returns the exported union of every word the lexer
// treats as non-identifier: language keywords, JS keywords, reserved
// words, and strict-mode-proscribed names (§6).
func ReservedWords() map[string]bool {
	return token.AllReserved()
}

// StrictProscribed returns the subset of ReservedWords forbidden
// specifically under strict-mode JS semantics (§6).
func StrictProscribed() map[string]bool {
	out := make(map[string]bool, len(token.StrictProscribed))
	for w := range token.StrictProscribed {
		out[w] = true
	}
	return out
}

// TagName renders a tag's symbolic name for diagnostics/debugging.
func TagName(t Tag) string {
	return token.Name(t)
}

// Dump renders a token stream as one line per token (tag, value, span) —
// a human-readable trace for test failures and debugging, independent of
// the internal token layout.
func Dump(tokens []*Token) string {
	return token.Dump(tokens)
}
