// Package rewriter defines the seam between the lexer core and the
// external Rewriter collaborator described by spec §1/§4.1. The Rewriter
// itself — disambiguating calls, inserting implicit parens, and so on —
// is out of scope for this module; this package only carries the typed
// contract the driver invokes once, optionally, at the end of a
// Tokenize call.
package rewriter

import "github.com/glint-lang/glint/internal/token"

// Hook post-processes a complete token stream. The driver (§4.1) calls it
// once, after closeIndentation, unless Options.NoRewrite is set.
type Hook func([]*token.Token) ([]*token.Token, error)

// NoOp is a Hook that returns its input unchanged. It is the default when
// no external Rewriter has been wired in, so Tokenize has a concrete,
// always-valid Hook to call regardless of whether the real Rewriter is
// present in the build.
func NoOp(tokens []*token.Token) ([]*token.Token, error) {
	return tokens, nil
}
