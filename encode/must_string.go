package encode

import (
	"bytes"

	"github.com/signadot/hjson-format/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := Marshal(node, opts...)
	if err != nil {
		panic(err)
	}
	return string(d)
}

func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
