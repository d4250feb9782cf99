package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/hjson-format/dsf"
	"github.com/signadot/hjson-format/format"

	"github.com/scott-cotton/cli"
)

func hjfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.DSF == "list" {
		return listDSF(cc.Out)
	}
	if cfg.Diff && cfg.Write {
		return fmt.Errorf("%w: -d and -w are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	if (cfg.Diff || cfg.Write) && slices.Contains(args, "-") {
		return fmt.Errorf("%w: -d and -w need file arguments", cli.ErrUsage)
	}
	logger := newLogger(os.Stderr, cfg.Verbose)
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	conv := &converter{opts: opts, condense: cfg.Condense, log: logger}
	if cfg.Patch != "" {
		conv.patch, err = os.ReadFile(cfg.Patch)
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
	}
	for i, file := range args {
		f := format.FromPath(file)
		if cfg.InFormat != nil {
			f = *cfg.InFormat
		}
		switch {
		case cfg.Write:
			err = writeFile(conv, file, f)
		case cfg.Diff:
			err = diffFile(conv, cc.Out, file, f)
		default:
			err = convertFile(conv, cc.Out, file, f)
			if err == nil && i < len(args)-1 {
				_, err = io.WriteString(cc.Out, docSep)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func listDSF(w io.Writer) error {
	for _, p := range dsf.Providers() {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", p.Name(), p.Description()); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func convertFile(conv *converter, w io.Writer, file string, f format.Format) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	if err := conv.convert(w, in, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// hjsonPath returns the name of the .hjson file written for input file.
func hjsonPath(file string, f format.Format) string {
	base := file
	for _, suf := range []string{f.Suffix(), filepath.Ext(file)} {
		if suf != "" && strings.HasSuffix(base, suf) {
			base = strings.TrimSuffix(base, suf)
			break
		}
	}
	return base + ".hjson"
}

func writeFile(conv *converter, file string, f format.Format) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	out := &strings.Builder{}
	if err := conv.convert(out, in, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	dst := hjsonPath(file, f)
	conv.log.Debug("writing", "file", dst)
	return os.WriteFile(dst, []byte(out.String()), 0644)
}

func diffFile(conv *converter, w io.Writer, file string, f format.Format) error {
	in, err := readInput(file)
	if err != nil {
		return err
	}
	out := &strings.Builder{}
	if err := conv.convert(out, in, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	dst := hjsonPath(file, f)
	old, err := os.ReadFile(dst)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	changed, err := lineDiff(w, dst, string(old), out.String())
	if err != nil {
		return err
	}
	if !changed {
		conv.log.Debug("unchanged", "file", dst)
	}
	return nil
}
