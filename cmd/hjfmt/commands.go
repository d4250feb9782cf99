package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, ir (default from file name)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "add an expression dsf provider",
			Type:        cli.NamedFuncOpt(cfg.exprOpt, "(name=expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hjfmt").
		WithSynopsis("hjfmt [opts] [files]").
		WithDescription("hjfmt renders json and yaml documents as hjson.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hjfmtMain(cfg, cc, args)
		})
}
