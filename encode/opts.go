package encode

import (
	"slices"

	"github.com/signadot/hjson-format/dsf"
	"github.com/signadot/hjson-format/ir"
)

// Options are the resolved settings of a Writer.
type Options struct {
	// Providers are tried in order before default formatting.
	Providers []dsf.Provider
	// Comments enables output of comments attached to the tree.
	Comments bool
	// EmptyLines enables output of blank lines recorded in the tree.
	EmptyLines bool
	// BracesSameLine puts opening braces and brackets on the line of
	// their member name.
	BracesSameLine bool
	// AllowCondense lets condensed containers share lines.
	AllowCondense bool
	// AllowMultiVal lets containers put several values on a line.
	AllowMultiVal bool
	// RootBraces emits braces around a root object.
	RootBraces bool
	// Indent is written once per nesting level.
	Indent string
	// CommentSpace prefixes each comment line.
	CommentSpace string
	// EOL ends each line.
	EOL string

	Color func(ir.Type, ColorAttr, string) string
}

// DefaultOptions returns the options used by New when none are given.
func DefaultOptions() Options {
	return Options{
		BracesSameLine: true,
		AllowCondense:  true,
		AllowMultiVal:  true,
		RootBraces:     true,
		Indent:         "  ",
		EOL:            "\n",
	}
}

type EncodeOption func(*Options)

// EncodeOptions replaces all options with o.
func EncodeOptions(o Options) EncodeOption {
	return func(opts *Options) {
		*opts = o
		opts.Providers = slices.Clone(o.Providers)
	}
}

// EncodeProviders appends DSF providers.
func EncodeProviders(ps ...dsf.Provider) EncodeOption {
	return func(o *Options) { o.Providers = append(o.Providers, ps...) }
}
func EncodeComments(v bool) EncodeOption {
	return func(o *Options) { o.Comments = v }
}
func EncodeEmptyLines(v bool) EncodeOption {
	return func(o *Options) { o.EmptyLines = v }
}
func EncodeBracesSameLine(v bool) EncodeOption {
	return func(o *Options) { o.BracesSameLine = v }
}
func EncodeCondense(v bool) EncodeOption {
	return func(o *Options) { o.AllowCondense = v }
}
func EncodeMultiVal(v bool) EncodeOption {
	return func(o *Options) { o.AllowMultiVal = v }
}
func EncodeRootBraces(v bool) EncodeOption {
	return func(o *Options) { o.RootBraces = v }
}
func EncodeIndent(s string) EncodeOption {
	return func(o *Options) { o.Indent = s }
}
func EncodeCommentSpace(s string) EncodeOption {
	return func(o *Options) { o.CommentSpace = s }
}
func EncodeEOL(s string) EncodeOption {
	return func(o *Options) { o.EOL = s }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(o *Options) {
		if c == nil {
			o.Color = nil
			return
		}
		o.Color = c.Color
	}
}
