package ir

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/hjson-format/debug"
	"github.com/signadot/hjson-format/format"
)

var debugImport = debug.Import

// Import builds a tree from a document in the given format.
func Import(d []byte, f format.Format) (*Node, error) {
	var (
		node *Node
		err  error
	)
	switch f {
	case format.JSONFormat:
		node, err = FromJSON(d)
	case format.YAMLFormat:
		return FromYAML(d)
	case format.IRFormat:
		node = &Node{}
		if err = json.Unmarshal(d, node); err != nil {
			err = fmt.Errorf("%w: %w", ErrImport, err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot import %s", ErrBadFormat, f)
	}
	if err != nil {
		return nil, err
	}
	logImport(f, d, node)
	return node, nil
}

func logImport(f format.Format, d []byte, node *Node) {
	if !debugImport() {
		return
	}
	debug.Logf("import %s: %d bytes, %d comments\n", f, len(d), countComments(node))
}

func countComments(node *Node) int {
	n := 0
	_ = node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		for _, c := range []bool{y.HasBefore(), y.HasAfter(), y.HasInside()} {
			if c {
				n++
			}
		}
		return true, nil
	})
	return n
}
