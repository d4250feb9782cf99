package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/hjson-format/config"
	"github.com/signadot/hjson-format/encode"
	"github.com/signadot/hjson-format/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	C        bool   `cli:"name=c desc='include comments'"`
	B        bool   `cli:"name=b desc='encode root objects with braces'"`
	Condense bool   `cli:"name=condense desc='put arrays of scalars on one line'"`
	Color    bool   `cli:"name=color desc='encode with color'"`
	Diff     bool   `cli:"name=d desc='show differences from existing .hjson files'"`
	Write    bool   `cli:"name=w desc='write results to .hjson files beside the inputs'"`
	Indent   int    `cli:"name=indent desc='indent width in spaces'"`
	DSF      string `cli:"name=dsf desc='comma separated dsf providers, see -dsf list'"`
	Patch    string `cli:"name=patch desc='json merge patch applied to each document'"`
	Config   string `cli:"name=config desc='toml configuration file'"`
	Verbose  bool   `cli:"name=v desc='verbose logging'"`

	InFormat *format.Format
	Exprs    []config.ExprDSF

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) exprOpt(_ *cli.Context, a string) (any, error) {
	name, src, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: expected name=expr, got %q", cli.ErrUsage, a)
	}
	cfg.Exprs = append(cfg.Exprs, config.ExprDSF{Name: name, Expr: src})
	return nil, nil
}

// optSet reports whether the boolean option name was given and its
// value.
func (cfg *MainConfig) optSet(name string) (bool, bool) {
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		if opt.Value == nil {
			return false, false
		}
		v, _ := (*opt.Value).(bool)
		return v, true
	}
	return false, false
}

// fileConfig returns the configuration file settings extended with the
// dsf options given on the command line.
func (cfg *MainConfig) fileConfig() (*config.Config, error) {
	res := &config.Config{}
	if cfg.Config != "" {
		c, err := config.Load(cfg.Config)
		if err != nil {
			return nil, err
		}
		res = c
	}
	for _, name := range strings.Split(cfg.DSF, ",") {
		if name = strings.TrimSpace(name); name != "" {
			res.DSF = append(res.DSF, name)
		}
	}
	res.DSFExpr = append(res.DSFExpr, cfg.Exprs...)
	return res, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	fc, err := cfg.fileConfig()
	if err != nil {
		return nil, err
	}
	res, err := fc.Options()
	if err != nil {
		return nil, err
	}
	if cfg.C {
		res = append(res, encode.EncodeComments(true))
	}
	if v, ok := cfg.optSet("b"); ok {
		res = append(res, encode.EncodeRootBraces(v))
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(strings.Repeat(" ", cfg.Indent)))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res, nil
	}
	if _, colorsSet := cfg.optSet("color"); colorsSet || cfg.Diff || cfg.Write {
		return res, nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return res, nil
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}
