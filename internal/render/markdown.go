// Package render converts Markdown sources to HTML fragments using goldmark.
package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/mithrel/mdview/internal/apperr"
)

// Document is one input Markdown file, immutable after construction.
type Document struct {
	SourcePath string
	Title      string // display title, derived from the file name
	Source     []byte
	Fragment   []byte // rendered HTML body fragment
}

// Renderer wraps a configured goldmark instance. It is safe for reuse
// across documents within a run.
type Renderer struct {
	md goldmark.Markdown
}

// New builds the renderer with the extension set the viewer relies on:
// GFM tables/strikethrough/autolinks/task lists, smart punctuation,
// fenced-code highlighting, and auto heading IDs for anchor links.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			html.WithUnsafe(), // raw HTML in markdown passes through
		),
	)
	return &Renderer{md: md}
}

// Fragment converts Markdown text to an HTML body fragment.
func (r *Renderer) Fragment(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadFile reads and renders one Markdown file. The display title is the
// base file name, matching tab labels and index links downstream.
func (r *Renderer) LoadFile(path string) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &apperr.InputError{Path: path, Err: err}
	}
	if !utf8.Valid(src) {
		return Document{}, &apperr.InputError{Path: path, Err: errors.New("not valid UTF-8 text")}
	}
	frag, err := r.Fragment(src)
	if err != nil {
		return Document{}, &apperr.RenderError{Path: path, Err: err}
	}
	return Document{
		SourcePath: path,
		Title:      filepath.Base(path),
		Source:     src,
		Fragment:   frag,
	}, nil
}

// FromString renders in-memory Markdown (the embedded README) as a Document.
func (r *Renderer) FromString(name string, text string) (Document, error) {
	frag, err := r.Fragment([]byte(text))
	if err != nil {
		return Document{}, &apperr.RenderError{Path: name, Err: err}
	}
	return Document{
		SourcePath: name,
		Title:      name,
		Source:     []byte(text),
		Fragment:   frag,
	}, nil
}

// LoadFiles renders inputs in argument order. The first failure aborts the
// whole batch; no partial sets are returned.
func (r *Renderer) LoadFiles(paths []string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, p := range paths {
		d, err := r.LoadFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}
