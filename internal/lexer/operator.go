package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/glint-lang/glint/internal/token"
)

// operatorRe matches the multi-char operator forms of §4.9, longest
// first so e.g. `>>>=` is preferred over `>>>` over `>>`.
var operatorRe = regexp.MustCompile(
	`^(?:` +
		`\*\*=|//=|>>>=|<<=|>>=|&&=|\|\|=|\?\?=|` +
		`\.{3}|\.{2}|` +
		`->|=>|` +
		`\+\+|--|::|` +
		`\*\*|//|<<|>>>|>>|` +
		`<=|>=|==|!=|` +
		`&&|\|\||` +
		`\?\.|\?::|` +
		`[+\-*/%&|^]=|` +
		`)`)

var valueTag = map[string]token.Tag{
	"->": token.CODE, "=>": token.CODE,
	"++": token.PLUSPLUS, "--": token.MINUSMINUS,
	"::": token.DCOLON, "?::": token.QDCOLON, "?.": token.QDOT,
	"..": token.RANGE, "...": token.SPLAT,
	"**": token.POW,
	"//": token.MATH,
	"<<": token.SHIFT, ">>": token.SHIFT, ">>>": token.SHIFT,
	"<=": token.COMPARE, ">=": token.COMPARE, "==": token.COMPARE, "!=": token.COMPARE,
	"&&": token.LOGIC, "||": token.LOGIC,

	// Single-character literals (§3 data model: these are their own tags,
	// not folded into a MATH/UNARY_MATH bucket).
	"(": token.LPAREN, ")": token.RPAREN, "{": token.LBRACE, "}": token.RBRACE,
	"[": token.LBRACKET, "]": token.RBRACKET,
	",": token.COMMA, ".": token.DOT, ":": token.COLON, ";": token.SEMICOLON,
	"@": token.AT, "?": token.QUESTION, "!": token.BANG, "~": token.TILDE,
	"+": token.PLUS, "-": token.MINUS,
	"*": token.STAR, "/": token.SLASH, "%": token.PERCENT,
	"=": token.EQUALS, `\`: token.BACKSLASH,
}

var compoundAssignOps = map[string]bool{
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "//=": true, "<<=": true, ">>=": true, ">>>=": true,
	"&=": true, "|=": true, "^=": true, "&&=": true, "||=": true, "??=": true,
}

var openToClose = map[string]string{"(": ")", "{": "}", "[": "]"}

// tryOperator is the literal/operator matcher of §4.9: the guaranteed
// fallback of the dispatch chain.
func (s *State) tryOperator() (bool, *SyntaxError) {
	value := operatorRe.FindString(s.chunk)
	if value == "" {
		r, size := utf8.DecodeRuneInString(s.chunk)
		if r == utf8.RuneError && size <= 1 {
			return false, nil
		}
		value = s.chunk[:size]
	}

	tag, ok := valueTag[value]
	if !ok {
		// Guaranteed fallback (§4.1): any stray character becomes a
		// one-char UNKNOWN token rather than aborting the scan loop.
		tag = token.UNKNOWN
	}
	if compoundAssignOps[value] {
		tag = token.COMPOUND_ASSIGN
	}

	prev := s.tail()
	prevTag := s.tailTag()

	switch value {
	case "=":
		if token.ReservedWords[s.tailValue()] && prev != nil && !prev.Reserved {
			return false, s.errorf("reserved word %q can't be assigned", s.tailValue())
		}
		if prevTag == token.LOGIC {
			switch s.tailValue() {
			case "||":
				prev.Tag = token.COMPOUND_ASSIGN
				prev.Value = "||="
				s.consume(value)
				return true, nil
			case "&&":
				prev.Tag = token.COMPOUND_ASSIGN
				prev.Value = "&&="
				s.consume(value)
				return true, nil
			}
		}
	case ";":
		tag = token.TERMINATOR
		s.seenFor = false
	case "?":
		if prev != nil && prev.Spaced {
			tag = token.LOGIC
		}
	}

	spaced := prev != nil && prev.Spaced
	if prev != nil && !spaced {
		switch value {
		case "(":
			if token.Callable[prevTag] {
				tag = token.CALL_START
				if prevTag == token.QUESTION {
					prev.Tag = token.FUNC_EXIST
				}
			}
		case "[":
			if token.Indexable[prevTag] {
				tag = token.INDEX_START
				if prevTag == token.QUESTION {
					prev.Tag = token.INDEX_SOAK
				}
			}
		}
	}

	s.emit(tag, value, value)
	s.consume(value)

	if value == "->" || value == "=>" {
		if err := s.tagParameters(); err != nil {
			return true, err
		}
	}

	switch value {
	case "(", "{", "[":
		s.pushEnd(openToClose[value])
	case ")", "}", "]":
		if err := s.pair(value); err != nil {
			return true, err
		}
	}

	return true, nil
}

// tagParameters implements §4.9: walking backward from a just-emitted
// CODE token's preceding ')' to find the matching '(' and rewrite the
// pair to PARAM_START/PARAM_END. Nested CALL_START/')' pairs are
// skipped; a ')' whose match is a CALL_START is left untagged.
func (s *State) tagParameters() *SyntaxError {
	if len(s.tokens) < 2 {
		return nil
	}
	i := len(s.tokens) - 2 // token before CODE
	if i < 0 || s.tokens[i].Tag != token.RPAREN {
		return nil
	}
	depth := 0
	for j := i; j >= 0; j-- {
		switch s.tokens[j].Tag {
		case token.RPAREN:
			depth++
		case token.LPAREN, token.CALL_START:
			depth--
			if depth == 0 {
				if s.tokens[j].Tag == token.CALL_START {
					return nil
				}
				s.tokens[j].Tag = token.PARAM_START
				s.tokens[i].Tag = token.PARAM_END
				return nil
			}
		}
	}
	return s.errorf("unmatched ) in parameter list")
}

// pair implements §4.10: value is the closing character just matched
// (")", "}", "]", or the sentinel "OUTDENT"); s.ends holds, per open
// bracket or INDENT, the closer it expects.
func (s *State) pair(value string) *SyntaxError {
	top := s.topEnd()
	if top != value {
		if top != "OUTDENT" {
			return s.errorf("unmatched %q", value)
		}
		if err := s.outdentToken(s.topIndent(), true); err != nil {
			return err
		}
		return s.pair(value)
	}
	s.popEnd()
	return nil
}
