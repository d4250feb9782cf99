package ir

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/hjson-format/format"
)

// FromYAML builds a tree from the first document in d. Mapping order is
// kept, and YAML comments are attached to the nodes they annotate as
// "#" comments: head comments before the value, line comments after
// it, foot comments inside containers.
func FromYAML(d []byte) (*Node, error) {
	var v any
	cm := yaml.CommentMap{}
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap(), yaml.CommentToMap(cm)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImport, err)
	}
	node := fromYAMLValue(v)
	if len(cm) == 0 {
		logImport(format.YAMLFormat, d, node)
		return node, nil
	}
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		for _, c := range cm[yamlPath(y)] {
			attachYAMLComment(y, c)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	logImport(format.YAMLFormat, d, node)
	return node, nil
}

func fromYAMLValue(v any) *Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return FromBool(x)
	case string:
		return FromString(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case uint64:
		return FromNumber(strconv.FormatUint(x, 10))
	case float64:
		return FromFloat(x)
	case time.Time:
		return FromString(x.Format(time.RFC3339Nano))
	case yaml.MapSlice:
		res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
		for _, item := range x {
			res.Append(fmt.Sprint(item.Key), fromYAMLValue(item.Value))
		}
		return res
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, vv := range x {
			m[k] = fromYAMLValue(vv)
		}
		return FromMap(m)
	case []any:
		vals := make([]*Node, len(x))
		for i, vv := range x {
			vals[i] = fromYAMLValue(vv)
		}
		return FromSlice(vals)
	default:
		return FromString(fmt.Sprint(x))
	}
}

// yamlPath returns the path under which the YAML decoder records
// comments for y.
func yamlPath(y *Node) string {
	var chain []*Node
	for x := y; x.Parent != nil; x = x.Parent {
		chain = append(chain, x)
	}
	b := (&yaml.PathBuilder{}).Root()
	for i := len(chain) - 1; i >= 0; i-- {
		x := chain[i]
		switch x.Parent.Type {
		case ObjectType:
			b = b.Child(x.ParentField)
		case ArrayType:
			b = b.Index(uint(x.ParentIndex))
		}
	}
	return b.Build().String()
}

func attachYAMLComment(y *Node, c *yaml.Comment) {
	lines := make([]string, 0, len(c.Texts))
	for _, t := range c.Texts {
		lines = append(lines, "#"+strings.TrimPrefix(t, "#"))
	}
	text := strings.Join(lines, "\n")
	if text == "" {
		return
	}
	switch c.Position {
	case yaml.CommentHeadPosition:
		y.Before = joinComment(y.Before, text)
	case yaml.CommentLinePosition:
		y.After = joinComment(y.After, text)
	default:
		if y.Type.IsLeaf() {
			y.After = joinComment(y.After, text)
		} else {
			y.Inside = joinComment(y.Inside, text)
		}
	}
}

func joinComment(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}
