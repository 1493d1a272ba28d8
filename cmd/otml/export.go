package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/ir"
	"github.com/otml-format/go-otml/parse"
)

// exportNode is the tree shape handed to other tooling. Unlike
// ir.Node it has no parent links, so any marshaller can walk it.
type exportNode struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Tag      string        `json:"tag,omitempty" yaml:"tag,omitempty"`
	Value    string        `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*exportNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toExport(n *ir.Node) *exportNode {
	res := &exportNode{
		Kind:  n.Kind.String(),
		Tag:   n.Tag,
		Value: n.Value,
	}
	for _, c := range n.Children {
		res.Children = append(res.Children, toExport(c))
	}
	return res
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.YAML && cfg.JSON {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
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

		var out []byte
		if cfg.YAML {
			// goccy/go-yaml cannot follow ir.Node's parent cycle, so
			// YAML goes through the flattened export shape
			out, err = yaml.Marshal(toExport(root))
		} else {
			out, err = json.MarshalIndent(root, "", "  ")
			out = append(out, '\n')
		}
		if err != nil {
			return fmt.Errorf("error exporting %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
