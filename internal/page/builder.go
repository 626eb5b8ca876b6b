// Package page composes rendered Markdown fragments into complete HTML
// documents. Templates and styling live in theme/ and are embedded into
// the binary.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/mithrel/mdview/internal/render"
)

//go:embed theme/*
var themeFS embed.FS

// Mode selects the page variant.
type Mode int

const (
	// ModeSingle renders one document into a standalone page.
	ModeSingle Mode = iota
	// ModeIndex renders one page per document plus a navigation page
	// linking to them. Browser multi-file mode.
	ModeIndex
	// ModeTabbed renders all documents into one page with client-side
	// tab switching. Window multi-file mode.
	ModeTabbed
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeIndex:
		return "index"
	case ModeTabbed:
		return "tabbed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// File is one HTML file of a built page, named but not yet written.
type File struct {
	Name string
	Data []byte
}

// Page is the build result. Files are in write order; Entry indexes the
// file the display surface should open.
type Page struct {
	Mode  Mode
	Files []File
	Entry int
}

// EntryName returns the name of the file to open.
func (p Page) EntryName() string { return p.Files[p.Entry].Name }

var (
	singleTmpl = mustTemplate("single.html")
	indexTmpl  = mustTemplate("index.html")
	tabbedTmpl = mustTemplate("tabbed.html")

	baseCSS  = mustAsset("base.css")
	indexCSS = mustAsset("index.css")
	tabsCSS  = mustAsset("tabs.css")
	tabsJS   = mustAsset("tabs.js")
)

func mustTemplate(name string) *template.Template {
	data, err := themeFS.ReadFile("theme/" + name)
	if err != nil {
		panic(err)
	}
	return template.Must(template.New(name).Parse(string(data)))
}

func mustAsset(name string) string {
	data, err := themeFS.ReadFile("theme/" + name)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// HTMLName derives the output file name from a document's source path:
// the base name with its extension swapped for .html.
func HTMLName(d render.Document) string {
	base := filepath.Base(d.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// Build composes the given documents into a Page. Document order is
// preserved: it determines tab order and index listing order. Any
// failure aborts the whole build.
func Build(docs []render.Document, mode Mode) (Page, error) {
	if len(docs) == 0 {
		return Page{}, fmt.Errorf("page: build %s: no documents", mode)
	}
	switch mode {
	case ModeSingle:
		if len(docs) != 1 {
			return Page{}, fmt.Errorf("page: build single: want exactly 1 document, have %d", len(docs))
		}
		f, err := buildSingle(docs[0])
		if err != nil {
			return Page{}, err
		}
		return Page{Mode: mode, Files: []File{f}}, nil
	case ModeIndex:
		return buildIndex(docs)
	case ModeTabbed:
		return buildTabbed(docs)
	default:
		return Page{}, fmt.Errorf("page: unknown mode %d", int(mode))
	}
}

type singleData struct {
	Title   string
	CSS     template.CSS
	Content template.HTML
}

func buildSingle(d render.Document) (File, error) {
	var buf bytes.Buffer
	err := singleTmpl.Execute(&buf, singleData{
		Title:   d.Title,
		CSS:     template.CSS(baseCSS),
		Content: template.HTML(d.Fragment),
	})
	if err != nil {
		return File{}, fmt.Errorf("page: single %s: %w", d.Title, err)
	}
	return File{Name: HTMLName(d), Data: buf.Bytes()}, nil
}

type indexLink struct {
	Href  string
	Label string
}

type indexData struct {
	CSS   template.CSS
	Links []indexLink
}

func buildIndex(docs []render.Document) (Page, error) {
	files := make([]File, 0, len(docs)+1)
	links := make([]indexLink, 0, len(docs))
	for _, d := range docs {
		f, err := buildSingle(d)
		if err != nil {
			return Page{}, err
		}
		files = append(files, f)
		links = append(links, indexLink{Href: f.Name, Label: d.Title})
	}

	var buf bytes.Buffer
	err := indexTmpl.Execute(&buf, indexData{
		CSS:   template.CSS(baseCSS + indexCSS),
		Links: links,
	})
	if err != nil {
		return Page{}, fmt.Errorf("page: index: %w", err)
	}
	files = append(files, File{Name: "index.html", Data: buf.Bytes()})
	return Page{Mode: ModeIndex, Files: files, Entry: len(files) - 1}, nil
}

type tab struct {
	ID      string
	Label   string
	Active  bool
	Content template.HTML
}

type tabbedData struct {
	Title string
	CSS   template.CSS
	JS    template.JS
	Tabs  []tab
}

func buildTabbed(docs []render.Document) (Page, error) {
	tabs := make([]tab, 0, len(docs))
	for i, d := range docs {
		tabs = append(tabs, tab{
			ID:      fmt.Sprintf("file%d", i),
			Label:   d.Title,
			Active:  i == 0,
			Content: template.HTML(d.Fragment),
		})
	}

	var buf bytes.Buffer
	err := tabbedTmpl.Execute(&buf, tabbedData{
		Title: fmt.Sprintf("Markdown Viewer - %d files", len(docs)),
		CSS:   template.CSS(baseCSS + tabsCSS),
		JS:    template.JS(tabsJS),
		Tabs:  tabs,
	})
	if err != nil {
		return Page{}, fmt.Errorf("page: tabbed: %w", err)
	}
	// Named after the first document, like a single page would be.
	return Page{Mode: ModeTabbed, Files: []File{{Name: HTMLName(docs[0]), Data: buf.Bytes()}}}, nil
}
