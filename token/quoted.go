package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a double quoted literal with JSON escapes.
// Control characters without a short escape, U+2028 and U+2029 are
// written as \uXXXX.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) || r == '\u2028' || r == '\u2029' {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// NeedsQuote reports whether the string value v cannot be written bare.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if ContainsAny(v, NeedsQuotes) {
		return true
	}
	left, _ := utf8.DecodeRuneInString(v)
	right, _ := utf8.DecodeLastRuneInString(v)
	if IsWhitespace(left) || IsWhitespace(right) {
		return true
	}
	switch left {
	case '"', '\'', '#':
		return true
	}
	if IsCommentStart(v) {
		return true
	}
	if IsPunctuator(left) {
		return true
	}
	return IsNumber(v) || StartsWithKeyword(v)
}

// CanMultiLine reports whether v can be written as a triple-quoted
// literal. Carriage returns are dropped from such literals, so only
// those ending a CRLF line break are allowed.
func CanMultiLine(v string) bool {
	allWhite := true
	for _, r := range v {
		if NeedsEscapeML(r) {
			return false
		}
		if !IsWhitespace(r) {
			allWhite = false
		}
	}
	if allWhite || strings.Contains(v, "'''") {
		return false
	}
	if strings.Count(v, "\r") != strings.Count(v, "\r\n") {
		return false
	}
	if strings.ContainsRune(v, '\n') {
		return true
	}
	// a single line literal is written '''v''', so a trailing quote
	// would merge with the closing delimiter.
	return v[len(v)-1] != '\''
}
