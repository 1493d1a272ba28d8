package main

import (
	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/parse"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: parse.DefaultIndent}
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
			Name:        "i",
			Aliases:     []string{"indent"},
			Description: "indent width (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(width)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "otml").
		WithSynopsis("otml [opts] command [opts]").
		WithDescription("otml is a tool for working with OTML interface markup.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return otmlMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			RefsCommand(cfg),
			BaseCommand(cfg),
			ResolveCommand(cfg),
			ExportCommand(cfg),
			WatchCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("rewrite OTML in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return otmlFmt(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view OTML files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func RefsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Refs, "refs").
		WithAliases("r").
		WithSynopsis("refs [-base dir] <file>").
		WithDescription("list image references and where they resolve").
		WithOpts(baseOpt(&cfg.Base)).
		WithRun(func(cc *cli.Context, args []string) error {
			return refs(cfg, cc, args)
		})
}

func BaseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BaseConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Base, "base").
		WithSynopsis("base <file>").
		WithDescription("print the discovered images base directory").
		WithRun(func(cc *cli.Context, args []string) error {
			return base(cfg, cc, args)
		})
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithSynopsis("resolve [-base dir] <file> <value>").
		WithDescription("resolve one image reference to a file path").
		WithOpts(baseOpt(&cfg.Base)).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-j|-y] [files]").
		WithDescription("export the document tree as JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch [-base dir] <file>").
		WithDescription("re-check a document on every change").
		WithOpts(baseOpt(&cfg.Base)).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
