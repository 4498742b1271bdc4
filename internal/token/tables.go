package token

// Keywords maps glint/JS keyword surface text to its own distinct tag.
// Matches §4.2: "if text is a JS keyword or language keyword, tag :=
// upper(text)". Entries here are glint grammar keywords — each gets a
// unique tag a downstream parser can dispatch on. Pure-JS reserved words
// that have no grammar production of their own (function, var, const,
// ...) are NOT given bespoke tags; they are classified via ReservedWords
// below instead (see DESIGN.md's "reserved word tagging" decision).
var Keywords = map[string]Tag{
	"if":         IF,
	"unless":     IF, // rewritten: UNLESS -> IF
	"else":       ELSE,
	"for":        FOR,
	"own":        OWN,
	"while":      WHILE,
	"until":      UNTIL,
	"loop":       LOOP,
	"switch":     SWITCH,
	"when":       WHEN,
	"then":       THEN,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"class":      CLASS,
	"extends":    EXTENDS,
	"super":      SUPER,
	"return":     RETURN,
	"break":      BREAK,
	"continue":   CONTINUE,
	"throw":      THROW,
	"new":        NEW,
	"delete":     DELETE,
	"do":         DO,
	"in":         IN,
	"of":         OF,
	"instanceof": INSTANCEOF,
	"typeof":     TYPEOF,
	"true":       BOOL,
	"false":      BOOL,
	"null":       NULL,
	"undefined":  UNDEFINED,
}

// UnaryKeywords is the subset of Keywords re-tagged UNARY regardless of
// their individual keyword tag (§4.2: "Any UNARY keyword -> UNARY").
var UnaryKeywords = map[string]bool{
	"new":    true,
	"typeof": true,
	"delete": true,
	"do":     true,
}

// RelationKeywords is the subset re-tagged RELATION/FORIN/FOROF (§4.2).
var RelationKeywords = map[string]bool{
	"in":         true,
	"of":         true,
	"instanceof": true,
}

// StatementKeywords are zero-argument control keywords folded into a
// single STATEMENT tag after their initial keyword tag is assigned
// (§4.2 "break/continue -> STATEMENT").
var StatementKeywords = map[string]bool{
	"break":    true,
	"continue": true,
}

// AliasMap implements the CoffeeScript-style word aliases of §4.2: these
// words are not grammar keywords (no entry in Keywords) but also cannot
// be plain identifiers; instead their surface text is rewritten to a JS
// operator/literal before the usual by-value re-tag runs.
var AliasMap = map[string]string{
	"and":  "&&",
	"or":   "||",
	"is":   "==",
	"isnt": "!=",
	"not":  "!",
	"yes":  "true",
	"on":   "true",
	"no":   "false",
	"off":  "false",
}

// ValueRetag re-tags a token by its *value* after alias substitution
// (§4.2: "Re-tag by new value").
var ValueRetag = map[string]Tag{
	"!":     UNARY,
	"==":    COMPARE,
	"!=":    COMPARE,
	"&&":    LOGIC,
	"||":    LOGIC,
	"true":  BOOL,
	"false": BOOL,
}

// ReservedWords are JS reserved words with no glint grammar production;
// the init below also adds every StrictProscribed word. Using one as a plain identifier (outside a forced/property
// position) is a lex-time "reserved word misuse" error per §7.
var ReservedWords = buildSet(
	"case", "default", "function", "var", "void", "with", "const", "enum",
	"export", "import", "native", "debugger", "implements", "interface",
	"let", "package", "private", "protected", "public", "static", "yield",
)

// StrictProscribed is the subset of ReservedWords additionally forbidden
// under strict-mode JS semantics specifically (as opposed to reserved in
// all modes) — exported per §6 for downstream compiler stages.
var StrictProscribed = buildSet(
	"implements", "interface", "let", "package", "private", "protected",
	"public", "static", "yield", "eval", "arguments",
)

func init() {
	for w := range StrictProscribed {
		ReservedWords[w] = true
	}
}

// AllReserved returns the exported union of every word this lexer treats
// as non-identifier (keywords, aliases, reserved words) — §6 "Exported
// constants: the reserved-word list".
func AllReserved() map[string]bool {
	out := make(map[string]bool, len(Keywords)+len(AliasMap)+len(ReservedWords))
	for w := range Keywords {
		out[w] = true
	}
	for w := range AliasMap {
		out[w] = true
	}
	for w := range ReservedWords {
		out[w] = true
	}
	return out
}

func buildSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// LineBreak is the set of synthetic "LINE_BREAK" tags (§ Glossary).
var LineBreak = map[Tag]bool{
	INDENT:     true,
	OUTDENT:    true,
	TERMINATOR: true,
}

// Callable is the set of tags that, immediately followed by an unspaced
// '(', mean CALL_START rather than grouping (§4.9).
var Callable = map[Tag]bool{
	IDENTIFIER: true, STRING: true, STRING_PART_CLOSE: true,
	RPAREN: true, RBRACKET: true, RBRACE: true,
	QUESTION: true, DCOLON: true, AT: true, SUPER: true,
	CALL_END: true, INDEX_END: true,
}

// Indexable is the set of tags that, immediately followed by an unspaced
// '[', mean INDEX_START rather than an array literal (§4.9).
var Indexable = map[Tag]bool{
	NUMBER: true, BOOL: true, NULL: true, UNDEFINED: true, RBRACE: true, STRING_PART_CLOSE: true,
}

func init() {
	for t := range Callable {
		Indexable[t] = true
	}
}

// NotRegexSpaced is NOT_REGEX from §4.6, consulted when the previous
// token had trailing whitespace.
var NotRegexSpaced = map[Tag]bool{
	NUMBER: true, REGEX: true, BOOL: true, NULL: true, UNDEFINED: true,
	PLUSPLUS: true, MINUSMINUS: true,
}

// NotRegexUnspaced extends NotRegexSpaced for the case where the previous
// token was NOT followed by whitespace (§4.6).
var NotRegexUnspaced = map[Tag]bool{
	RPAREN: true, RBRACE: true, IDENTIFIER: true, STRING: true, RBRACKET: true,
}

func init() {
	for t := range NotRegexSpaced {
		NotRegexUnspaced[t] = true
	}
}
