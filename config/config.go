// Package config reads writer settings from TOML files.
//
//	indent = "    "
//	comments = true
//	root_braces = false
//	dsf = ["math", "hex"]
//
//	[[dsf_expr]]
//	name = "bighex"
//	expr = 'isInt && integer > 255 ? hex(integer) : ""'
//
// Keys left out of a file keep the writer defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/signadot/hjson-format/dsf"
	"github.com/signadot/hjson-format/encode"
)

var ErrConfig = errors.New("config error")

type Config struct {
	Indent         *string `toml:"indent"`
	CommentSpace   *string `toml:"comment_space"`
	EOL            *string `toml:"eol"`
	Comments       *bool   `toml:"comments"`
	EmptyLines     *bool   `toml:"empty_lines"`
	BracesSameLine *bool   `toml:"braces_same_line"`
	AllowCondense  *bool   `toml:"allow_condense"`
	AllowMultiVal  *bool   `toml:"allow_multi_val"`
	RootBraces     *bool   `toml:"root_braces"`

	// DSF names registered providers, tried in order.
	DSF     []string  `toml:"dsf"`
	DSFExpr []ExprDSF `toml:"dsf_expr"`
}

// ExprDSF is a provider defined by an expression, see dsf.Expr.
type ExprDSF struct {
	Name string `toml:"name"`
	Expr string `toml:"expr"`
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration from r. Unknown keys are an error.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrConfig, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Options returns the writer options set by c. Providers named in DSF
// come before those defined in DSFExpr.
func (c *Config) Options() ([]encode.EncodeOption, error) {
	var res []encode.EncodeOption
	if c.Indent != nil {
		res = append(res, encode.EncodeIndent(*c.Indent))
	}
	if c.CommentSpace != nil {
		res = append(res, encode.EncodeCommentSpace(*c.CommentSpace))
	}
	if c.EOL != nil {
		res = append(res, encode.EncodeEOL(*c.EOL))
	}
	for _, b := range []struct {
		v *bool
		f func(bool) encode.EncodeOption
	}{
		{c.Comments, encode.EncodeComments},
		{c.EmptyLines, encode.EncodeEmptyLines},
		{c.BracesSameLine, encode.EncodeBracesSameLine},
		{c.AllowCondense, encode.EncodeCondense},
		{c.AllowMultiVal, encode.EncodeMultiVal},
		{c.RootBraces, encode.EncodeRootBraces},
	} {
		if b.v != nil {
			res = append(res, b.f(*b.v))
		}
	}
	ps, err := c.Providers()
	if err != nil {
		return nil, err
	}
	if len(ps) != 0 {
		res = append(res, encode.EncodeProviders(ps...))
	}
	return res, nil
}

func (c *Config) Providers() ([]dsf.Provider, error) {
	var res []dsf.Provider
	for _, name := range c.DSF {
		p := dsf.Lookup(name)
		if p == nil {
			return nil, fmt.Errorf("%w: unknown dsf %q", ErrConfig, name)
		}
		res = append(res, p)
	}
	for _, x := range c.DSFExpr {
		if x.Name == "" {
			return nil, fmt.Errorf("%w: dsf_expr without name", ErrConfig)
		}
		p, err := dsf.Expr(x.Name, x.Expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		res = append(res, p)
	}
	return res, nil
}
