package main

import (
	"fmt"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/assets"
	"github.com/otml-format/go-otml/ir"
	"github.com/otml-format/go-otml/parse"
)

// loadDoc parses one document argument and returns its tree and the
// absolute directory it lives in.
func loadDoc(cfg *MainConfig, arg string) (*ir.Node, string, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, "", err
	}
	var diags []parse.Diagnostic
	root := parse.Parse(d, cfg.parseOpts(&diags)...)
	reportDiags(arg, diags)
	abs, err := filepath.Abs(arg)
	if err != nil {
		return nil, "", err
	}
	return root, filepath.Dir(abs), nil
}

// docBase picks the images base: an explicit override wins, otherwise
// discovery runs over the document directory.
func docBase(override, docDir string, root *ir.Node) (string, bool) {
	if override != "" {
		return override, true
	}
	return assets.DiscoverBase(assets.OS(), docDir, root)
}

func refs(cfg *RefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Refs.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: refs requires one file argument", cli.ErrUsage)
	}
	root, docDir, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	imagesBase, _ := docBase(cfg.Base, docDir, root)
	missing := 0
	for _, v := range assets.ImageSources(root) {
		p, ok := assets.Resolve(assets.OS(), imagesBase, docDir, v)
		if !ok {
			missing++
			fmt.Fprintf(cc.Out, "%s -> (not found)\n", v)
			continue
		}
		fmt.Fprintf(cc.Out, "%s -> %s\n", v, p)
	}
	if missing > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func base(cfg *BaseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Base.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: base requires one file argument", cli.ErrUsage)
	}
	root, docDir, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	p, ok := assets.DiscoverBase(assets.OS(), docDir, root)
	if !ok {
		fmt.Fprintln(cc.Out, "no images base found")
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, p)
	return nil
}

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: resolve requires <file> <value>", cli.ErrUsage)
	}
	root, docDir, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	imagesBase, _ := docBase(cfg.Base, docDir, root)
	p, ok := assets.Resolve(assets.OS(), imagesBase, docDir, args[1])
	if !ok {
		fmt.Fprintf(cc.Out, "%s: not found\n", args[1])
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, p)
	return nil
}
