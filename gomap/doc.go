// Package gomap maps Go values to and from ir value trees.
//
// Values are mapped with encoding/json rules, so struct fields keep
// their declaration order and json tags apply. A `comment` struct tag
// attaches a leading comment to the member:
//
//	type Server struct {
//	    Addr string `json:"addr" comment:"listen address"`
//	    TLS  bool   `json:"tls,omitempty"`
//	}
//
// renders, with comments enabled, as
//
//	{
//	  # listen address
//	  addr: :8080
//	}
package gomap
