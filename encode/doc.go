// Package encode renders ir value trees as relaxed JSON (Hjson): member
// names and strings are left unquoted where a reader cannot mistake
// them, strings with line breaks become triple-quoted literals, comments and
// blank lines attached to the tree are kept, and the braces around a
// root object can be left out.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromString("hello")},
//	    {Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// with options
//	w := encode.New(encode.EncodeComments(true), encode.EncodeIndent("    "))
//	err = w.Encode(node, os.Stdout)
//
// A [Writer] holds only its resolved options, so one Writer may be used
// from many goroutines, each rendering its own tree to its own sink.
//
// # Related Packages
//
//   - github.com/signadot/hjson-format/ir - value tree
//   - github.com/signadot/hjson-format/dsf - value encoders tried before default formatting
package encode
