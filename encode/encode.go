package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/hjson-format/debug"
	"github.com/signadot/hjson-format/dsf"
	"github.com/signadot/hjson-format/ir"
	"github.com/signadot/hjson-format/token"
)

// Frame is the position at which a value is rendered.
type Frame struct {
	// Level is the nesting depth, 0 for the root.
	Level int
	// Separator is written before the value.
	Separator string
	// NoIndent keeps an opening brace or bracket on the current line.
	NoIndent bool
	// ForceQuotes wraps bare strings and numbers in double quotes.
	ForceQuotes bool
}

// Writer renders value trees. It is safe for concurrent use.
type Writer struct {
	opts Options
}

func New(opts ...EncodeOption) *Writer {
	wr := &Writer{opts: DefaultOptions()}
	for _, o := range opts {
		o(&wr.opts)
	}
	if wr.opts.EOL == "" {
		wr.opts.EOL = "\n"
	}
	return wr
}

// Options returns a copy of the writer's options.
func (wr *Writer) Options() Options {
	o := wr.opts
	o.Providers = append([]dsf.Provider(nil), o.Providers...)
	return o
}

// Encode writes node to w as a root value. No trailing line break is
// written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return New(opts...).Encode(node, w)
}

func (wr *Writer) Encode(node *ir.Node, w io.Writer) error {
	return wr.Render(node, w, Frame{NoIndent: true})
}

// Save renders node at the given level with quoting left to the value.
func (wr *Writer) Save(node *ir.Node, w io.Writer, level int, sep string, noIndent bool) error {
	return wr.Render(node, w, Frame{Level: level, Separator: sep, NoIndent: noIndent})
}

// Render writes node to w at position f. Errors from w are wrapped
// with ErrWrite.
func (wr *Writer) Render(node *ir.Node, w io.Writer, f Frame) error {
	if debug.Encode() {
		debug.Logf("encode level=%d sep=%q noIndent=%t forceQuotes=%t %v\n",
			f.Level, f.Separator, f.NoIndent, f.ForceQuotes, node)
	}
	if _, err := wr.encode(node, w, f); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// encode renders node at f and reports whether the output ends in an
// inline comment.
func (wr *Writer) encode(node *ir.Node, w io.Writer, f Frame) (bool, error) {
	if node == nil {
		return false, writeString(w, f.Separator+wr.color(ir.NullType, ValueColor, "null"))
	}
	if v := dsf.Stringify(wr.opts.Providers, node); v != "" {
		return false, writeString(w, f.Separator+wr.color(node.Type, FormatColor, v))
	}
	if f.Level == 0 {
		if err := wr.writeBlankLines(w, node); err != nil {
			return false, err
		}
		if wr.opts.Comments && node.HasBefore() {
			if err := wr.writeComment(w, node.Type, node.Before, 0); err != nil {
				return false, err
			}
			if err := wr.writeNL(w, 0); err != nil {
				return false, err
			}
		}
	}
	var err error
	switch node.Type {
	case ir.ObjectType:
		err = wr.encodeObject(node, w, f)
	case ir.ArrayType:
		err = wr.encodeArray(node, w, f)
	case ir.StringType:
		if err = writeString(w, f.Separator); err == nil {
			err = wr.encodeString(node.String, w, f.Level, f.ForceQuotes)
		}
	case ir.NumberType:
		err = writeString(w, f.Separator+wr.quoteIf(f.ForceQuotes, ir.NumberType, node.Number))
	case ir.BoolType:
		err = writeString(w, f.Separator+wr.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		err = writeString(w, f.Separator+wr.color(ir.NullType, ValueColor, "null"))
	default:
		panic("type")
	}
	if err != nil {
		return false, err
	}
	if !wr.opts.Comments || !node.HasAfter() {
		return false, nil
	}
	if f.Level == 0 {
		if err := wr.writeNL(w, 0); err != nil {
			return false, err
		}
		return false, wr.writeComment(w, node.Type, node.After, 0)
	}
	return true, writeString(w, " "+wr.color(node.Type, CommentColor, node.After))
}

func (wr *Writer) encodeObject(node *ir.Node, w io.Writer, f Frame) error {
	braces := wr.emitBraces(node, f.Level)
	if braces {
		if err := wr.writeOpen(w, node, f, "{"); err != nil {
			return err
		}
	}
	inlineComment := false
	for i, field := range node.Fields {
		val := node.Values[i]
		if err := wr.writeElementPrefix(w, node, val, i, f.Level, inlineComment); err != nil {
			return err
		}
		if err := wr.writeField(w, field); err != nil {
			return err
		}
		var err error
		inlineComment, err = wr.encode(val, w, Frame{
			Level:       f.Level + 1,
			Separator:   " ",
			ForceQuotes: wr.forceQuote(val, node),
		})
		if err != nil {
			return err
		}
	}
	return wr.writeClose(w, node, f.Level, "}", braces, inlineComment)
}

func (wr *Writer) encodeArray(node *ir.Node, w io.Writer, f Frame) error {
	if err := wr.writeOpen(w, node, f, "["); err != nil {
		return err
	}
	inlineComment := false
	for i, val := range node.Values {
		if err := wr.writeElementPrefix(w, node, val, i, f.Level, inlineComment); err != nil {
			return err
		}
		var err error
		inlineComment, err = wr.encode(val, w, Frame{
			Level:       f.Level + 1,
			NoIndent:    true,
			ForceQuotes: wr.forceQuote(val, node),
		})
		if err != nil {
			return err
		}
	}
	return wr.writeClose(w, node, f.Level, "]", true, inlineComment)
}

// emitBraces reports whether an object gets its braces. Only a root
// object may go without them.
func (wr *Writer) emitBraces(node *ir.Node, level int) bool {
	return level != 0 || wr.opts.RootBraces || (wr.opts.Comments && node.HasBefore())
}

func (wr *Writer) writeOpen(w io.Writer, node *ir.Node, f Frame, open string) error {
	if !f.NoIndent {
		if wr.opts.BracesSameLine || node.Condensed {
			if err := writeString(w, f.Separator); err != nil {
				return err
			}
		} else if err := wr.writeNL(w, f.Level); err != nil {
			return err
		}
	}
	return writeString(w, wr.color(node.Type, SepColor, open))
}

func (wr *Writer) writeClose(w io.Writer, node *ir.Node, level int, close string, braces, forceNL bool) error {
	if wr.opts.Comments && node.HasInside() {
		if err := wr.writeNL(w, level+1); err != nil {
			return err
		}
		if err := wr.writeComment(w, node.Type, node.Inside, level+1); err != nil {
			return err
		}
		forceNL = true
	}
	if !braces {
		return nil
	}
	switch {
	case forceNL:
		if err := wr.writeNL(w, level); err != nil {
			return err
		}
	case node.Len() == 0:
	case wr.condensed(node) && wr.opts.AllowMultiVal:
		if err := writeString(w, " "); err != nil {
			return err
		}
	default:
		if err := wr.writeNL(w, level); err != nil {
			return err
		}
	}
	return writeString(w, wr.color(node.Type, SepColor, close))
}

// writeElementPrefix writes what precedes the i'th value of a
// container: blank lines, the value's leading comment and the
// separator from the previous value.
func (wr *Writer) writeElementPrefix(w io.Writer, node, val *ir.Node, i, level int, forceNL bool) error {
	if err := wr.writeBlankLines(w, val); err != nil {
		return err
	}
	if wr.opts.Comments && val.HasBefore() {
		if err := wr.writeNL(w, level+1); err != nil {
			return err
		}
		if err := wr.writeComment(w, node.Type, val.Before, level+1); err != nil {
			return err
		}
		forceNL = true
	}
	if forceNL || !wr.opts.AllowMultiVal {
		return wr.writeNL(w, level+1)
	}
	if node.LineLength > 0 && i%node.LineLength != 0 {
		return writeString(w, wr.color(node.Type, SepColor, ",")+" ")
	}
	if !wr.condensed(node) {
		return wr.writeNL(w, level+1)
	}
	if i == 0 {
		return writeString(w, " ")
	}
	return writeString(w, wr.color(node.Type, SepColor, ",")+" ")
}

func (wr *Writer) condensed(node *ir.Node) bool {
	return node.Condensed && wr.opts.AllowCondense
}

// forceQuote reports whether a string child of parent must be quoted
// to keep it from running into its neighbours on the same line.
func (wr *Writer) forceQuote(val, parent *ir.Node) bool {
	if !val.IsString() {
		return false
	}
	return parent.Condensed || parent.LineLength > 1 || (wr.opts.Comments && val.HasAfter())
}

func (wr *Writer) writeBlankLines(w io.Writer, node *ir.Node) error {
	if !wr.opts.EmptyLines {
		return nil
	}
	for range node.BlankLines() {
		if err := writeString(w, wr.opts.EOL); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeField(w io.Writer, name string) error {
	v := wr.color(ir.ObjectType, NameColor, name)
	if token.NeedsEscapeName(name) {
		v = wr.color(ir.ObjectType, QuotedNameColor, token.Quote(name))
	}
	if err := writeString(w, v); err != nil {
		return err
	}
	return writeString(w, wr.color(ir.ObjectType, SepColor, ":"))
}

func (wr *Writer) encodeString(v string, w io.Writer, level int, forceQuotes bool) error {
	if v == "" {
		return writeString(w, wr.color(ir.StringType, QuotedStringColor, `""`))
	}
	if token.NeedsQuote(v) {
		if !token.ContainsAny(v, token.NeedsEscape) {
			return writeString(w, wr.color(ir.StringType, QuotedStringColor, `"`+v+`"`))
		}
		if token.CanMultiLine(v) {
			return wr.encodeMString(v, w, level)
		}
		return writeString(w, wr.color(ir.StringType, QuotedStringColor, token.Quote(v)))
	}
	if !forceQuotes {
		return writeString(w, wr.color(ir.StringType, BareStringColor, v))
	}
	return writeString(w, wr.quoteIf(true, ir.StringType, v))
}

func (wr *Writer) encodeMString(v string, w io.Writer, level int) error {
	lines := strings.Split(strings.ReplaceAll(v, "\r", ""), "\n")
	if len(lines) == 1 {
		return writeString(w, wr.color(ir.StringType, MultiLineColor, "'''"+lines[0]+"'''"))
	}
	level++
	delim := wr.color(ir.StringType, MultiLineColor, "'''")
	if err := wr.writeNL(w, level); err != nil {
		return err
	}
	if err := writeString(w, delim); err != nil {
		return err
	}
	for _, ln := range lines {
		indent := level
		if ln == "" {
			indent = 0
		}
		if err := wr.writeNL(w, indent); err != nil {
			return err
		}
		if err := writeString(w, wr.color(ir.StringType, MultiLineColor, ln)); err != nil {
			return err
		}
	}
	if err := wr.writeNL(w, level); err != nil {
		return err
	}
	return writeString(w, delim)
}

// quoteIf renders bare text v, in double quotes when force is set.
func (wr *Writer) quoteIf(force bool, t ir.Type, v string) string {
	if !force {
		return wr.color(t, ValueColor, v)
	}
	if token.ContainsAny(v, token.NeedsEscape) {
		return wr.color(t, QuotedStringColor, token.Quote(v))
	}
	return wr.color(t, QuotedStringColor, `"`+v+`"`)
}

// writeComment writes the lines of comment c, all but the first
// preceded by a line break at level.
func (wr *Writer) writeComment(w io.Writer, t ir.Type, c string, level int) error {
	for i, ln := range commentLines(c) {
		if i > 0 {
			if err := wr.writeNL(w, level); err != nil {
				return err
			}
		}
		if err := writeString(w, wr.opts.CommentSpace+wr.color(t, CommentColor, ln)); err != nil {
			return err
		}
	}
	return nil
}

// commentLines splits c into lines, dropping trailing empty lines.
func commentLines(c string) []string {
	lines := strings.Split(c, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	n := len(lines)
	for n > 1 && lines[n-1] == "" {
		n--
	}
	return lines[:n]
}

func (wr *Writer) writeNL(w io.Writer, level int) error {
	return writeString(w, wr.opts.EOL+strings.Repeat(wr.opts.Indent, level))
}

func (wr *Writer) color(t ir.Type, a ColorAttr, v string) string {
	if wr.opts.Color == nil || v == "" {
		return v
	}
	return wr.opts.Color(t, a, v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
