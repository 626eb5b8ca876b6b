// Package display hands a written artifact to a display surface: the
// default browser or a native window, with a fallback rule from window
// to browser when the windowing capability is unavailable.
package display

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/mithrel/mdview/internal/store"
)

// Surface identifies the mechanism that actually presented the artifact.
type Surface string

const (
	SurfaceBrowser Surface = "browser"
	SurfaceGUI     Surface = "gui"
)

// Result reports the delivered surface. Because of the fallback rule the
// requested mode may not be the delivered mode.
type Result struct {
	Surface Surface
}

// ErrWindowUnavailable is returned by the window opener when the binary
// was built without the gui tag or the toolkit failed to initialize.
var ErrWindowUnavailable = errors.New("native window support unavailable")

// WindowConfig sizes and titles the native window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// Dispatcher selects and drives a display surface.
type Dispatcher struct {
	Log *log.Logger

	// BrowserCommand overrides the platform open mechanism when set.
	BrowserCommand string
	Window         WindowConfig

	// Hooks for tests; nil means the real implementations.
	OpenBrowserFunc func(url string) error
	OpenWindowFunc  func(url string, cfg WindowConfig) error
}

// New returns a Dispatcher logging through logger.
func New(logger *log.Logger, browserCommand string, win WindowConfig) *Dispatcher {
	return &Dispatcher{Log: logger, BrowserCommand: browserCommand, Window: win}
}

// Open presents the artifact's primary file. Browser mode starts the
// opener and returns immediately. Window mode blocks until the user
// closes the window; if the window cannot be opened, a one-line notice
// is logged and the browser path runs instead. That degradation is not
// an error.
func (d *Dispatcher) Open(a store.Artifact, wantGUI bool) (Result, error) {
	url := fileURL(a.Primary)
	if wantGUI {
		err := d.openWindow(url)
		if err == nil {
			return Result{Surface: SurfaceGUI}, nil
		}
		d.Log.Printf("native window unavailable (%v); falling back to browser", err)
	}
	if err := d.openBrowser(url); err != nil {
		return Result{}, fmt.Errorf("display: open browser: %w", err)
	}
	return Result{Surface: SurfaceBrowser}, nil
}

func (d *Dispatcher) openBrowser(url string) error {
	if d.OpenBrowserFunc != nil {
		return d.OpenBrowserFunc(url)
	}
	return openURL(url, d.BrowserCommand)
}

func (d *Dispatcher) openWindow(url string) error {
	if d.OpenWindowFunc != nil {
		return d.OpenWindowFunc(url, d.Window)
	}
	return openNativeWindow(url, d.Window)
}

func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
