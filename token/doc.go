// Package token provides the character-level rules of the relaxed JSON
// dialect: which strings and member names may be written bare, which
// need quotes, which may use a multi-line triple-quoted literal, and the
// standard backslash escaping used when none of the lighter forms apply.
//
// [Quote] escapes a string into a double quoted literal.
//
// [NeedsQuote] and [NeedsEscapeName] decide whether a string value or a
// member name can be emitted without quotes.
package token
