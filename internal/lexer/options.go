package lexer

import "github.com/glint-lang/glint/internal/rewriter"

// Options configures a single Tokenize call (§6). The zero value is a
// valid, fully-default configuration: line/column origin 0, literate
// preprocessing off, rewrite on but routed through rewriter.NoOp until
// the caller sets Hook.
//
// Rewrite defaults to enabled (§6: "rewrite: bool=true"); Go zero-values
// a bool to false, so the knob is spelled as its own negation,
// NoRewrite, to keep Options{} meaning "all defaults".
type Options struct {
	Line      int
	Column    int
	Literate  bool
	NoRewrite bool
	Hook      rewriter.Hook
}

// DefaultOptions returns the options the teacher's config.Command{} zero
// value implied: origin (0,0), non-literate, rewrite enabled with a no-op
// hook.
func DefaultOptions() Options {
	return Options{Hook: rewriter.NoOp}
}

// resolved fills in any zero-value fields Options was constructed
// without going through DefaultOptions (e.g. an Options{} literal), the
// way the teacher's Command.applyDefaults filled in an under-specified
// Command.
func (o Options) resolved() Options {
	if o.Hook == nil {
		o.Hook = rewriter.NoOp
	}
	return o
}
