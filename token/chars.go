package token

import "strings"

// IsWhitespace reports whether r is whitespace as the dialect's reader
// sees it.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// IsPunctuator reports whether r is one of the structural characters.
func IsPunctuator(r rune) bool {
	switch r {
	case '{', '}', '[', ']', ',', ':':
		return true
	default:
		return false
	}
}

// NeedsQuotes reports whether r forces a string value to be quoted.
func NeedsQuotes(r rune) bool {
	switch r {
	case '\t', '\f', '\b', '\n', '\r':
		return true
	default:
		return false
	}
}

// NeedsEscape reports whether r cannot appear verbatim between double
// quotes.
func NeedsEscape(r rune) bool {
	switch r {
	case '"', '\\':
		return true
	default:
		return NeedsQuotes(r)
	}
}

// NeedsEscapeML reports whether r cannot appear verbatim in a
// multi-line literal.
func NeedsEscapeML(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	default:
		return NeedsQuotes(r)
	}
}

func ContainsAny(v string, pred func(rune) bool) bool {
	return strings.IndexFunc(v, pred) != -1
}

// IsCommentStart reports whether v begins with "//" or "/*".
func IsCommentStart(v string) bool {
	return strings.HasPrefix(v, "//") || strings.HasPrefix(v, "/*")
}

// isStop reports whether the text at the start of v ends a bare value:
// a separator, a closing bracket or a comment.
func isStop(v string) bool {
	if v == "" {
		return false
	}
	switch v[0] {
	case ',', '}', ']', '#':
		return true
	}
	return IsCommentStart(v)
}

// NeedsEscapeName reports whether a member name must be quoted.
func NeedsEscapeName(name string) bool {
	if name == "" {
		return true
	}
	if strings.Contains(name, "//") || strings.Contains(name, "/*") {
		return true
	}
	return strings.ContainsFunc(name, func(r rune) bool {
		switch r {
		case ',', '{', '[', '}', ']', ':', '#', '"', '\'',
			' ', '\t', '\n', '\v', '\f', '\r':
			return true
		default:
			return false
		}
	})
}
