package dsf

import (
	"github.com/signadot/hjson-format/debug"
	"github.com/signadot/hjson-format/ir"
)

type Provider interface {
	Name() string
	Description() string
	// Stringify returns the text for node, or "" when the provider
	// does not handle it.
	Stringify(node *ir.Node) string
}

// Stringify offers node to each provider in turn and returns the first
// non-empty result.
func Stringify(providers []Provider, node *ir.Node) string {
	for _, p := range providers {
		v := p.Stringify(node)
		if v == "" {
			continue
		}
		if debug.DSF() {
			debug.Logf("dsf %s: %s -> %s\n", p.Name(), node.Path(), v)
		}
		return v
	}
	return ""
}

type name string

func (n name) Name() string {
	return string(n)
}

func (n name) String() string {
	return string(n)
}
