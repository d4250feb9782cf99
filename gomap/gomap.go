package gomap

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/signadot/hjson-format/encode"
	"github.com/signadot/hjson-format/ir"
)

var ErrMap = errors.New("gomap")

// ToIR maps v to a value tree.
func ToIR(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	node, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}
	attachComments(node, reflect.ValueOf(v))
	return node, nil
}

// FromIR stores the value of node in the value pointed to by p.
func FromIR(node *ir.Node, p any) error {
	d, err := ir.ToJSON(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: %w", ErrMap, err)
	}
	return nil
}

// Marshal renders v with comments from its struct tags.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	return encode.Marshal(node, append([]encode.EncodeOption{encode.EncodeComments(true)}, opts...)...)
}

func attachComments(node *ir.Node, val reflect.Value) {
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}
	switch val.Kind() {
	case reflect.Struct:
		if node.Type == ir.ObjectType {
			attachStruct(node, val)
		}
	case reflect.Slice, reflect.Array:
		if node.Type != ir.ArrayType {
			return
		}
		for i := 0; i < val.Len() && i < len(node.Values); i++ {
			attachComments(node.Values[i], val.Index(i))
		}
	case reflect.Map:
		if node.Type != ir.ObjectType || val.Type().Key().Kind() != reflect.String {
			return
		}
		iter := val.MapRange()
		for iter.Next() {
			if child := ir.Get(node, iter.Key().String()); child != nil {
				attachComments(child, iter.Value())
			}
		}
	}
}

func attachStruct(node *ir.Node, val reflect.Value) {
	ty := val.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		name, ok := jsonName(f)
		if !ok {
			continue
		}
		fVal := val.Field(i)
		if name == "" {
			// embedded struct, its fields are promoted
			attachComments(node, fVal)
			continue
		}
		child := ir.Get(node, name)
		if child == nil {
			continue
		}
		if c := f.Tag.Get("comment"); c != "" {
			child.Before = hashComment(c)
		}
		attachComments(child, fVal)
	}
}

// jsonName returns the member name encoding/json uses for f, "" for
// an untagged embedded struct.
func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name != "" {
		return name, true
	}
	if f.Anonymous {
		t := f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			return "", true
		}
	}
	if !f.IsExported() {
		return "", false
	}
	return f.Name, true
}

func hashComment(c string) string {
	lines := strings.Split(c, "\n")
	for i, ln := range lines {
		lines[i] = "# " + ln
	}
	return strings.Join(lines, "\n")
}
