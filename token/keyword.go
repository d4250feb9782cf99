package token

import "strings"

var keywords = []string{"true", "false", "null"}

// StartsWithKeyword reports whether v would be read back as a keyword:
// true, false or null followed by optional whitespace and then the end
// of the text, a separator, a closing bracket or a comment.
func StartsWithKeyword(v string) bool {
	for _, kw := range keywords {
		if !strings.HasPrefix(v, kw) {
			continue
		}
		rest := strings.TrimLeftFunc(v[len(kw):], IsWhitespace)
		return rest == "" || isStop(rest)
	}
	return false
}
