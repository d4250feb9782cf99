// Package ir provides the value tree rendered by the encode package.
//
// # Node Structure
//
// A Node is a tagged union: its Type says which of the value fields is
// meaningful.
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Number, the number's text, kept verbatim
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values, parallel slices; member names may repeat
//
// Each node also carries layout metadata used by the writer: comments
// (Before, After, Inside), the number of blank Lines preceding it, and
// for containers the Condensed flag and the LineLength (elements per line)
// hint.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}).WithCondensed(true)},
//	}).WithBefore("# user record")
//
// # Importing
//
// [FromJSON], [FromYAML] and [Import] build trees from documents. The
// YAML importer keeps comments. The IR is itself representable in JSON
// (see [Node.MarshalJSON]) so annotated trees can be stored as files.
package ir
