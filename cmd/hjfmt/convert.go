package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/hjson-format/encode"
	"github.com/signadot/hjson-format/format"
	"github.com/signadot/hjson-format/ir"
)

const docSep = "---\n"

type converter struct {
	opts     []encode.EncodeOption
	patch    []byte
	condense bool
	log      *log.Logger
}

// convert renders each "---" separated document of in, each followed
// by a line break.
func (c *converter) convert(w io.Writer, in []byte, f format.Format) error {
	wr := encode.New(c.opts...)
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		node, err := ir.Import(doc, f)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		c.log.Debug("decoded", "document", i, "format", f)
		node, err = c.apply(node)
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
		if err := wr.Encode(node, w); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		sep := "\n"
		if i < n-1 {
			sep += docSep
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
	}
	return nil
}

func (c *converter) apply(node *ir.Node) (*ir.Node, error) {
	if c.patch != nil {
		d, err := ir.ToJSON(node)
		if err != nil {
			return nil, err
		}
		out, err := jsonpatch.MergePatch(d, c.patch)
		if err != nil {
			return nil, err
		}
		if node, err = ir.FromJSON(out); err != nil {
			return nil, err
		}
		c.log.Debug("patched", "bytes", len(out))
	}
	if c.condense {
		condense(node)
	}
	return node, nil
}

// condense marks arrays whose elements are all scalars as condensed.
func condense(node *ir.Node) {
	node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.ArrayType {
			return true, nil
		}
		for _, v := range y.Values {
			if v != nil && !v.Type.IsLeaf() {
				return true, nil
			}
		}
		y.Condensed = true
		return true, nil
	})
}
