package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/encode"
	"github.com/otml-format/go-otml/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colorized output'"`

	Indent   int
	Out      string
	CloseOut func() error

	Main *cli.Command
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

func (cfg *MainConfig) indentOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: invalid indent width %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) parseOpts(diags *[]parse.Diagnostic) []parse.ParseOption {
	res := []parse.ParseOption{parse.Indent(cfg.Indent)}
	if diags != nil {
		res = append(res, parse.Diagnostics(diags))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Indent(cfg.Indent)}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readArg reads one input argument, "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

// reportDiags prints indentation diagnostics to stderr, never
// failing the command.
func reportDiags(arg string, diags []parse.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s:%d: %s\n", arg, d.Line, d.Msg)
	}
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d aliases=diff desc='print a diff against the canonical form'"`
	Write bool `cli:"name=w aliases=write desc='rewrite files in place, keeping a .bak backup'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type RefsConfig struct {
	*MainConfig
	Base string

	Refs *cli.Command
}

type BaseConfig struct {
	*MainConfig

	Base *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Base string

	Resolve *cli.Command
}

type ExportConfig struct {
	*MainConfig
	YAML bool `cli:"name=y aliases=yaml desc='export the tree as YAML'"`
	JSON bool `cli:"name=j aliases=json desc='export the tree as JSON (default)'"`

	Export *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Base string

	Watch *cli.Command
}

func baseOpt(dst *string) *cli.Opt {
	return &cli.Opt{
		Name:        "base",
		Description: "images base directory (skip discovery)",
		Type: cli.NamedFuncOpt(func(cc *cli.Context, a string) (any, error) {
			*dst = a
			return a, nil
		}, "(dir)"),
	}
}
