package dsf

import (
	"math"

	"github.com/signadot/hjson-format/ir"
)

var mathP = &mathProvider{name: "math"}

// Math renders NaN, infinities and negative zero, which have no JSON
// number form, as NaN, +Inf, -Inf and -0.
func Math() Provider {
	return mathP
}

type mathProvider struct {
	name
}

func (mathProvider) Description() string {
	return "support for Inf/inf, -Inf/-inf, Nan/naN and -0"
}

func (mathProvider) Stringify(node *ir.Node) string {
	f, ok := node.Float64()
	if !ok {
		return ""
	}
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f == 0 && math.Signbit(f):
		return "-0"
	default:
		return ""
	}
}
