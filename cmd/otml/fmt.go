package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/encode"
	"github.com/otml-format/go-otml/parse"
	"github.com/otml-format/go-otml/textdiff"
)

func otmlFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := fmtArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, w io.Writer, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	var diags []parse.Diagnostic
	root := parse.Parse(d, cfg.parseOpts(&diags)...)
	reportDiags(arg, diags)
	canon, err := encode.String(root, encode.Indent(cfg.Indent))
	if err != nil {
		return err
	}

	switch {
	case cfg.Diff:
		_, err := io.WriteString(w, textdiff.Lines(string(d), canon))
		return err
	case cfg.Write && arg != "-":
		if !textdiff.Changed(string(d), canon) {
			return nil
		}
		return writeInPlace(arg, d, []byte(canon))
	default:
		_, err := io.WriteString(w, canon)
		return err
	}
}

// writeInPlace rewrites path with the canonical text, keeping the
// previous content next to it as path.bak.
func writeInPlace(path string, old, canon []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".bak", old, info.Mode().Perm()); err != nil {
		return fmt.Errorf("error writing backup for %s: %w", path, err)
	}
	if err := os.WriteFile(path, canon, info.Mode().Perm()); err != nil {
		return fmt.Errorf("error rewriting %s: %w", path, err)
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readArg(arg)
		if err != nil {
			return err
		}
		var diags []parse.Diagnostic
		root := parse.Parse(d, cfg.parseOpts(&diags)...)
		reportDiags(arg, diags)
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
