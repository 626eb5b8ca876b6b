package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdview/internal/assets"
	"github.com/mithrel/mdview/internal/cleanup"
	"github.com/mithrel/mdview/internal/page"
	"github.com/mithrel/mdview/internal/preview"
	"github.com/mithrel/mdview/internal/render"
)

type viewOptions struct {
	gui    bool
	keep   bool
	readme bool
	tty    bool
	style  string
}

// runView is the main flow: load documents, build a page, write the
// artifact, open a display surface, and schedule cleanup for transient
// artifacts.
func runView(cmd *cobra.Command, args []string, opts viewOptions) error {
	app := getApp(cmd)

	if opts.tty && (opts.gui || opts.keep) {
		return errors.New("--tty cannot be combined with --gui or --keep")
	}
	if opts.readme && len(args) > 0 {
		return errors.New("--readme takes no file arguments")
	}

	var docs []render.Document
	if opts.readme {
		d, err := app.Render.FromString("README.md", assets.Readme)
		if err != nil {
			return err
		}
		d.Title = assets.ReadmeTitle
		docs = []render.Document{d}
	} else {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("no markdown files given")
		}
		var err error
		docs, err = app.Render.LoadFiles(args)
		if err != nil {
			return err
		}
	}

	if opts.tty {
		style := opts.style
		if style == "" {
			style = app.Cfg.Style
		}
		return preview.Render(cmd.OutOrStdout(), docs, style)
	}

	mode := page.ModeSingle
	if len(docs) > 1 {
		if opts.gui {
			mode = page.ModeTabbed
		} else {
			mode = page.ModeIndex
		}
	}
	p, err := page.Build(docs, mode)
	if err != nil {
		return err
	}

	art, err := app.Store.Write(p, opts.keep)
	if err != nil {
		return err
	}
	if opts.keep {
		for _, path := range art.Paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		}
	}

	app.Display.Window.Title = windowTitle(docs)
	res, err := app.Display.Open(art, opts.gui)
	if err != nil {
		if art.Transient {
			cleanup.Remove(art.Dir, art.Paths)
		}
		return err
	}

	if art.Transient {
		if err := app.Cleanup.Schedule(art.Paths, art.Dir); err != nil {
			app.Log.Printf("cleanup not scheduled, temporary files may remain: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s in %s (temporary files are removed after %s)\n",
			subject(docs), res.Surface, app.Cfg.CleanupDelay)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s in %s\n", subject(docs), res.Surface)
	}
	return nil
}

func subject(docs []render.Document) string {
	if len(docs) == 1 {
		return docs[0].Title
	}
	return fmt.Sprintf("%d files", len(docs))
}

func windowTitle(docs []render.Document) string {
	return "Markdown Viewer - " + subject(docs)
}
