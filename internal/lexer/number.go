package lexer

import (
	"regexp"
	"strings"

	"github.com/glint-lang/glint/internal/token"
)

var (
	numberRe       = regexp.MustCompile(`^(?:0[bB][01]+|0[oO][0-7]+|0[xX][0-9a-fA-F]+|\d*\.?\d+(?:[eE][+-]?\d+)?)`)
	badRadixRe     = regexp.MustCompile(`^0[BOX]`)
	legacyOctalRe  = regexp.MustCompile(`^0[0-9]+`)
	badOctalRe     = regexp.MustCompile(`^0[0-7]*[89]`)
	upperExponentE = regexp.MustCompile(`^\d*\.?\d+E`)
)

// tryNumber is the number matcher of §4.3.
func (s *State) tryNumber() (bool, *SyntaxError) {
	chunk := s.chunk

	if badRadixRe.MatchString(chunk) {
		return false, s.errorf("radix prefix must be lowercase (0b/0o/0x)")
	}
	if m := numberRe.FindString(chunk); m != "" && !strings.ContainsAny(m, "box") && upperExponentE.MatchString(chunk) {
		return false, s.errorf("exponent marker must be lowercase 'e'")
	}
	if badOctalRe.MatchString(chunk) {
		return false, s.errorf("invalid octal literal")
	}
	if legacyOctalRe.MatchString(chunk) {
		return false, s.errorf("decimal literals must not start with 0; octal literals must be prefixed with 0o")
	}

	m := numberRe.FindString(chunk)
	if m == "" {
		return false, nil
	}

	value := normalizeNumber(m)
	s.emit(token.NUMBER, value, m)
	s.consume(m)
	return true, nil
}

// normalizeNumber rewrites octal/binary literals to canonical hex form
// while preserving the original lexed length for the span (§4.3).
func normalizeNumber(lexeme string) string {
	if len(lexeme) < 2 {
		return lexeme
	}
	switch lexeme[1] {
	case 'o', 'O':
		n := parseUintRadix(lexeme[2:], 8)
		return "0x" + n
	case 'b', 'B':
		n := parseUintRadix(lexeme[2:], 2)
		return "0x" + n
	default:
		return lexeme
	}
}

func parseUintRadix(digits string, radix int) string {
	var v uint64
	for _, r := range digits {
		v = v*uint64(radix) + uint64(r-'0')
	}
	return strToHex(v)
}

const hexDigits = "0123456789abcdef"

func strToHex(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf []byte
	for v > 0 {
		buf = append([]byte{hexDigits[v%16]}, buf...)
		v /= 16
	}
	return string(buf)
}
