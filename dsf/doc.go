// Package dsf provides domain specific format (DSF) providers: value
// encoders the writer tries before its default formatting.
//
// A provider returns the text to splice into the output verbatim, or ""
// to leave the value to the writer. Providers are tried in order and the
// first non-empty result wins.
//
//	w := encode.New(encode.WithProviders(dsf.Math(), dsf.Hex(true)))
//
// Named providers can be registered with [Register] and found with
// [Lookup], which is how configuration files and the command line refer
// to them.
package dsf
