package token

import "strings"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ScanNumber returns the length of the JSON number at the start of v,
// or 0 if v does not start with one.
func ScanNumber(v string) int {
	i, n := 0, len(v)
	if i < n && v[i] == '-' {
		i++
	}
	if i >= n || !isDigit(v[i]) {
		return 0
	}
	first := v[i]
	i++
	if first == '0' && i < n && isDigit(v[i]) {
		return 0
	}
	for i < n && isDigit(v[i]) {
		i++
	}
	if i < n && v[i] == '.' {
		i++
		if i >= n || !isDigit(v[i]) {
			return 0
		}
		for i < n && isDigit(v[i]) {
			i++
		}
	}
	if i < n && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < n && (v[i] == '+' || v[i] == '-') {
			i++
		}
		if i >= n || !isDigit(v[i]) {
			return 0
		}
		for i < n && isDigit(v[i]) {
			i++
		}
	}
	return i
}

// IsNumber reports whether a reader would take v as a number: a JSON
// number, optionally followed by whitespace and then the end of the
// text, a separator, a closing bracket or a comment.
func IsNumber(v string) bool {
	n := ScanNumber(v)
	if n == 0 {
		return false
	}
	rest := strings.TrimLeftFunc(v[n:], IsWhitespace)
	return rest == "" || isStop(rest)
}
