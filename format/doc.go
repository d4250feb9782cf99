// Package format names the document formats a tree can be imported from.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	node, err := ir.Import(data, f)
//
// # Related Packages
//
//   - github.com/signadot/hjson-format/ir - value tree and importers
//   - github.com/signadot/hjson-format/encode - render a tree as relaxed JSON
package format
