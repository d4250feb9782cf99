package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Comments holds the comment text attached to a node. Text is kept
// verbatim, including its comment markers ("#", "//", "/* */").
type Comments struct {
	// Before is rendered on the line(s) preceding the value.
	Before string
	// After is rendered after the value, inline for nested values
	// and on its own line for the root.
	After string
	// Inside is rendered after the last child of a container.
	Inside string
}

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	Comments
	// Lines is the number of blank lines preceding the value.
	Lines int
	// Condensed asks for containers to be laid out on as few lines
	// as the writer options permit.
	Condensed bool
	// LineLength is the number of container elements per line,
	// 0 meaning one per line.
	LineLength int

	String string
	Bool   bool
	Number string
}

func (y *Node) HasBefore() bool { return y != nil && y.Before != "" }
func (y *Node) HasAfter() bool  { return y != nil && y.After != "" }
func (y *Node) HasInside() bool { return y != nil && y.Inside != "" }

// BlankLines is like y.Lines but safe to call on a nil node.
func (y *Node) BlankLines() int {
	if y == nil || y.Lines < 0 {
		return 0
	}
	return y.Lines
}

func (y *Node) IsString() bool {
	return y != nil && y.Type == StringType
}

func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) WithComment(c Comments) *Node {
	y.Comments = c
	return y
}

func (y *Node) WithBefore(c string) *Node {
	y.Before = c
	return y
}

func (y *Node) WithAfter(c string) *Node {
	y.After = c
	return y
}

func (y *Node) WithInside(c string) *Node {
	y.Inside = c
	return y
}

func (y *Node) WithLines(n int) *Node {
	y.Lines = n
	return y
}

func (y *Node) WithCondensed(v bool) *Node {
	y.Condensed = v
	return y
}

func (y *Node) WithLineLength(n int) *Node {
	y.LineLength = n
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Comments = y.Comments
	dst.Lines = y.Lines
	dst.Condensed = y.Condensed
	dst.LineLength = y.LineLength
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	for i, yv := range y.Values {
		if yv == nil {
			continue
		}
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	return dst
}

// Int64 returns the integer value of a number node whose text is
// an integer.
func (y *Node) Int64() (int64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	i, err := strconv.ParseInt(y.Number, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float64 returns the value of a number node.
func (y *Node) Float64() (float64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

// FromNumber creates a number node from its textual representation.
// The text is emitted verbatim by the writer.
func FromNumber(text string) *Node {
	return &Node{
		Type:   NumberType,
		Number: text,
	}
}

func FromInt(v int64) *Node {
	return FromNumber(strconv.FormatInt(v, 10))
}

func FromFloat(f float64) *Node {
	switch {
	case math.IsNaN(f):
		return FromNumber("NaN")
	case math.IsInf(f, 1):
		return FromNumber("+Inf")
	case math.IsInf(f, -1):
		return FromNumber("-Inf")
	}
	return FromNumber(strconv.FormatFloat(f, 'g', -1, 64))
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap creates an object node with the map's keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object node whose members are kvs in order.
// Duplicate keys are kept.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Val == nil {
			kv.Val = Null()
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Append adds a member to an object node.
func (y *Node) Append(key string, val *Node) *Node {
	if val == nil {
		val = Null()
	}
	val.Parent = y
	val.ParentIndex = len(y.Values)
	val.ParentField = key
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return y
}

// Get returns the value of the first member named field.
func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if yy == nil {
				continue
			}
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Path returns a "$.a[0].b" style path from the root to y.
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
