package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sx-format/go-sx/convert"
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sexp/s, yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "root",
			Description: "document root token name (repeatable, replaces defaults)",
			Type:        cli.NamedFuncOpt(cfg.rootOpt, "(name)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sxfmt").
		WithSynopsis("sxfmt [opts] [files]").
		WithDescription("sxfmt formats S-expression files. Without flags it prints\n" +
			"the formatted source to stdout; '-' reads stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sxfmtMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) fmtFunc(fp **convert.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := convert.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) rootOpt(_ *cli.Context, a string) (any, error) {
	cfg.Roots = append(cfg.Roots, a)
	return a, nil
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
