// Package preview renders Markdown straight to the terminal, skipping
// the HTML artifact pipeline entirely.
package preview

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mithrel/mdview/internal/render"
)

const defaultWidth = 80

// Render writes the documents to w with terminal styling. style follows
// glamour's standard style names; "auto" picks from the terminal's
// background, degrading to "notty" when w is not a terminal.
func Render(w io.Writer, docs []render.Document, style string) error {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(wrapWidth(w)),
	}
	if style == "" || style == "auto" {
		if isTerminal(w) {
			opts = append(opts, glamour.WithAutoStyle())
		} else {
			opts = append(opts, glamour.WithStandardStyle("notty"))
		}
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("preview: create renderer: %w", err)
	}
	for _, d := range docs {
		out, err := r.Render(string(d.Source))
		if err != nil {
			return fmt.Errorf("preview: render %s: %w", d.SourcePath, err)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func wrapWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		if width > 120 {
			width = 120
		}
		return width
	}
	return defaultWidth
}
