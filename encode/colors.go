package encode

import (
	"github.com/fatih/color"

	"github.com/signadot/hjson-format/ir"
)

// ColorAttr is the role a piece of output plays in the document.
type ColorAttr int

const (
	CommentColor ColorAttr = iota
	// NameColor is a bare member name, QuotedNameColor one that needed
	// double quotes.
	NameColor
	QuotedNameColor
	// SepColor covers braces, brackets, commas and the name colon.
	SepColor
	// ValueColor is a number, boolean or null.
	ValueColor
	BareStringColor
	QuotedStringColor
	// MultiLineColor is a triple-quoted literal, delimiters included.
	MultiLineColor
	// FormatColor is text produced by a dsf provider.
	FormatColor
)

// Colors maps output roles to terminal colors. A role may be colored
// differently for one value type, so numbers and booleans need not share
// a color.
type Colors struct {
	attrs map[ColorAttr]*color.Color
	types map[ColorAttr]map[ir.Type]*color.Color
}

func NewColors() *Colors {
	c := &Colors{
		attrs: map[ColorAttr]*color.Color{},
		types: map[ColorAttr]map[ir.Type]*color.Color{},
	}
	c.Set(CommentColor, color.New(color.FgHiBlack, color.Italic))
	c.Set(NameColor, color.New(color.FgBlue))
	c.Set(QuotedNameColor, color.New(color.FgHiBlue))
	c.Set(SepColor, color.New(color.FgWhite))
	c.Set(ValueColor, color.New(color.FgCyan))
	c.SetType(ValueColor, ir.NullType, color.New(color.FgMagenta))
	c.Set(BareStringColor, color.New(color.FgGreen))
	c.Set(QuotedStringColor, color.New(color.FgHiGreen))
	c.Set(MultiLineColor, color.New(color.FgYellow))
	c.Set(FormatColor, color.New(color.FgHiCyan, color.Underline))
	return c
}

// Set colors every occurrence of role a. A nil color leaves it plain.
func (c *Colors) Set(a ColorAttr, col *color.Color) {
	c.attrs[a] = col
}

// SetType colors role a when it renders a value of type t, overriding
// Set.
func (c *Colors) SetType(a ColorAttr, t ir.Type, col *color.Color) {
	if c.types[a] == nil {
		c.types[a] = map[ir.Type]*color.Color{}
	}
	c.types[a][t] = col
}

func (c *Colors) lookup(t ir.Type, a ColorAttr) *color.Color {
	if col, ok := c.types[a][t]; ok {
		return col
	}
	return c.attrs[a]
}

// Color wraps s in the color for role a of a value of type t.
func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	col := c.lookup(t, a)
	if col == nil {
		return s
	}
	return col.Sprint(s)
}
