package dsf

import (
	"math"
	"strconv"

	"github.com/signadot/hjson-format/ir"
)

// Hex renders non-negative integral numbers as 0x-prefixed hexadecimal
// when stringify is set; otherwise it never overrides the writer.
func Hex(stringify bool) Provider {
	return &hexProvider{name: "hex", stringify: stringify}
}

type hexProvider struct {
	name
	stringify bool
}

func (hexProvider) Description() string {
	return "parse hexadecimal numbers prefixed with 0x"
}

func (p *hexProvider) Stringify(node *ir.Node) string {
	if !p.stringify {
		return ""
	}
	if i, ok := node.Int64(); ok {
		if i < 0 {
			return ""
		}
		return "0x" + strconv.FormatInt(i, 16)
	}
	f, ok := node.Float64()
	if !ok || f < 0 || f >= math.MaxInt64 || f != math.Trunc(f) {
		return ""
	}
	return "0x" + strconv.FormatInt(int64(f), 16)
}
