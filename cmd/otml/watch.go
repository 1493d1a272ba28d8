package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/otml-format/go-otml/assets"
	"github.com/otml-format/go-otml/debug"
	"github.com/otml-format/go-otml/ir"
	"github.com/otml-format/go-otml/parse"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires one file argument", cli.ErrUsage)
	}
	file, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	docDir := filepath.Dir(file)

	// Start gops agent for debugging
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}
	defer agent.Close()

	session := assets.NewSession(assets.OS(), docDir)
	defer session.Close()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(docDir); err != nil {
		return err
	}

	if err := check(cfg, cc, session, file, docDir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != file || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch: %s\n", ev)
			}
			if err := check(cfg, cc, session, file, docDir); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cc.Out, "watch error: %v\n", err)
		}
	}
}

// check re-parses the document and reports diagnostics and unresolved
// image references.
func check(cfg *WatchConfig, cc *cli.Context, session *assets.Session, file, docDir string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		// the file may be mid-rewrite; report and keep watching
		fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
		return nil
	}
	var diags []parse.Diagnostic
	root := parse.Parse(d, cfg.parseOpts(&diags)...)
	if debug.Watch() {
		debug.Logf("checked tree:\n%v", root)
	}
	for _, diag := range diags {
		fmt.Fprintf(cc.Out, "%s:%d: %s\n", file, diag.Line, diag.Msg)
	}

	imagesBase := cfg.Base
	if imagesBase == "" {
		imagesBase, _ = session.Base(root)
	}
	srcs := assets.ImageSources(root)
	missing := 0
	for _, v := range srcs {
		if _, ok := assets.Resolve(assets.OS(), imagesBase, docDir, v); !ok {
			missing++
			fmt.Fprintf(cc.Out, "unresolved: %s\n", v)
		}
	}
	fmt.Fprintf(cc.Out, "%s: %d nodes, %d refs, %d unresolved, %d warnings\n",
		filepath.Base(file), countNodes(root), len(srcs), missing, len(diags))
	return nil
}

func countNodes(root *ir.Node) int {
	n := -1 // don't count the synthetic root
	root.Walk(func(*ir.Node) { n++ })
	return n
}
