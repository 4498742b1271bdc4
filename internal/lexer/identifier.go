package lexer

import (
	"regexp"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

// identifierRe is §4.2's IDENTIFIER regex: a run of letters/underscore/
// dollar/high code points, with an optional trailing colon
// (object-literal key marker). tryIdentifier drops that colon when a
// second one follows, leaving '::' to the operator matcher.
var identifierRe = regexp.MustCompile(`^([\p{L}_$][\p{L}\p{N}_$]*)([ \t]*:)?`)

var forcedIdentifierPrev = map[token.Tag]bool{
	token.DOT: true, token.QDOT: true, token.DCOLON: true, token.QDCOLON: true,
}

// tryIdentifier is the identifier matcher + contextual classifier of
// §4.2.
func (s *State) tryIdentifier() (bool, *SyntaxError) {
	m := identifierRe.FindStringSubmatch(s.chunk)
	if m == nil {
		return false, nil
	}
	whole, name, colonSuffix := m[0], m[1], m[2]
	if colonSuffix != "" && strings.HasPrefix(s.chunk[len(whole):], ":") {
		whole, colonSuffix = name, ""
	}

	prevTag := s.tailTag()
	prevVal := s.tailValue()
	prevTail := s.tail()

	forced := colonSuffix != "" || forcedIdentifierPrev[prevTag] ||
		(prevTag == token.AT && prevTail != nil && !prevTail.Spaced)

	if !forced && name == "own" && prevTag == token.FOR {
		s.emit(token.OWN, name, name)
		s.consumeColonSuffix(whole, name, colonSuffix)
		return true, nil
	}

	if forced {
		tok := s.emit(token.IDENTIFIER, name, name)
		if token.AllReserved()[name] {
			tok.Reserved = true
		}
		s.consumeColonSuffix(whole, name, colonSuffix)
		return true, nil
	}

	if kw, ok := token.Keywords[name]; ok {
		tag := kw
		switch {
		case tag == token.WHEN && token.LineBreak[prevTag]:
			tag = token.LEADING_WHEN
		case name == "for":
			s.seenFor = true
		case name == "unless":
			tag = token.IF
		}
		if token.UnaryKeywords[name] {
			tag = token.UNARY
		}
		if token.RelationKeywords[name] {
			if s.seenFor && name != "instanceof" {
				if name == "in" {
					tag = token.FORIN
				} else {
					tag = token.FOROF
				}
				s.seenFor = false
			} else {
				tag = token.RELATION
				if prevTag != 0 && prevVal == "!" {
					bang := s.popTail()
					tok := s.emit(tag, "!"+name, name)
					tok.Span.FirstLine = bang.Span.FirstLine
					tok.Span.FirstColumn = bang.Span.FirstColumn
					tok.Origin = bang
					s.consumeColonSuffix(whole, name, colonSuffix)
					return true, nil
				}
			}
		}
		if token.StatementKeywords[name] {
			tag = token.STATEMENT
		}
		s.emit(tag, name, name)
		s.consumeColonSuffix(whole, name, colonSuffix)
		return true, nil
	}

	if token.ReservedWords[name] {
		return false, s.reservedWordError(name)
	}

	value := name
	tag := token.IDENTIFIER
	if alias, ok := token.AliasMap[name]; ok {
		value = alias
		if rt, ok := token.ValueRetag[alias]; ok {
			tag = rt
		}
	}
	s.emit(tag, value, name)
	s.consumeColonSuffix(whole, name, colonSuffix)
	return true, nil
}

// consumeColonSuffix consumes the matched text, emitting a separate ':'
// token for the trailing-colon form (§4.2 "also emit a separate ':'
// token at the colon offset").
func (s *State) consumeColonSuffix(whole, name, colonSuffix string) {
	s.consume(name)
	if colonSuffix == "" {
		return
	}
	rest := whole[len(name):]
	gap := strings.TrimRight(rest, ":")
	s.consume(gap)
	s.emit(token.COLON, ":", ":")
	s.consume(":")
}
