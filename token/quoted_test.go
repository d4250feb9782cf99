package token

import "testing"

func TestQuote(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{``, `""`},
		{`abc`, `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"\t\n\r\b\f", `"\t\n\r\b\f"`},
		{"\x01", `"\u0001"`},
		{"\u2028", `"\u2028"`},
		{"∞'", `"∞'"`},
	} {
		if got := Quote(tc.in); got != tc.want {
			t.Errorf("Quote(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"hello world", false},
		{"a:b", false},
		{"x, y", false},
		{" lead", true},
		{"trail ", true},
		{"tab\tin", true},
		{"line\nbreak", true},
		{`"q`, true},
		{"'q", true},
		{"#c", true},
		{"//c", true},
		{"/*c", true},
		{"/c", false},
		{"{", true},
		{"]x", true},
		{":x", true},
		{"12", true},
		{"-1.5e3", true},
		{"12 ,", true},
		{"12abc", false},
		{"012", false},
		{"1.", false},
		{"true", true},
		{"null ", true},
		{"false # c", true},
		{"true,", true},
		{"trueish", false},
		{"null value", false},
	} {
		if got := NeedsQuote(tc.in); got != tc.want {
			t.Errorf("NeedsQuote(%q) = %t, want %t", tc.in, got, tc.want)
		}
	}
}

func TestCanMultiLine(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a\nb", true},
		{"a\r\nb\"c\\", true},
		{"a\tb", true},
		{"a\fb\n", false},
		{"\n\n  ", false},
		{"a\n'''b", false},
		{"'a\tb", true},
		{"a\tb'", false},
		{"'a\nb'", true},
		{"a\rb\"", false},
	} {
		if got := CanMultiLine(tc.in); got != tc.want {
			t.Errorf("CanMultiLine(%q) = %t, want %t", tc.in, got, tc.want)
		}
	}
}
