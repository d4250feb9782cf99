package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/hjson-format/token"
)

// FromJSON builds a tree from a plain JSON document, keeping member
// order, duplicate member names and number text.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("trailing data at offset %d", dec.InputOffset())
		}
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kTok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Append(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			vals := []*Node{}
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromSlice(vals), nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", x)
		}
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case bool:
		return FromBool(x), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ToJSON renders the tree as indented plain JSON. Comments and layout
// hints are dropped.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, node, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON is ToJSON(y).
func (y *Node) JSON() ([]byte, error) {
	return ToJSON(y)
}

func writeJSON(buf *bytes.Buffer, node *Node, depth int) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}
	nl := func(d int) {
		buf.WriteByte('\n')
		for range d {
			buf.WriteString("  ")
		}
	}
	switch node.Type {
	case ObjectType:
		if len(node.Values) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			nl(depth + 1)
			buf.WriteString(token.Quote(f))
			buf.WriteString(": ")
			if err := writeJSON(buf, node.Values[i], depth+1); err != nil {
				return err
			}
		}
		nl(depth)
		buf.WriteByte('}')
	case ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			nl(depth + 1)
			if err := writeJSON(buf, v, depth+1); err != nil {
				return err
			}
		}
		nl(depth)
		buf.WriteByte(']')
	case StringType:
		buf.WriteString(token.Quote(node.String))
	case NumberType:
		if n := token.ScanNumber(node.Number); n == 0 || n != len(node.Number) {
			return fmt.Errorf("number %q at %s is not representable in JSON", node.Number, node.Path())
		}
		buf.WriteString(node.Number)
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NullType:
		buf.WriteString("null")
	default:
		panic("type")
	}
	return nil
}
