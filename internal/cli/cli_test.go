package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/mdview/internal/cleanup"
	"github.com/mithrel/mdview/internal/config"
	"github.com/mithrel/mdview/internal/display"
	"github.com/mithrel/mdview/internal/render"
	"github.com/mithrel/mdview/internal/store"
	"github.com/mithrel/mdview/internal/wire"
)

func writeMD(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// browserStub installs a fake browser command that records the URL it
// was handed. Returns the file the URL lands in.
func browserStub(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	urlFile := filepath.Join(dir, "url.txt")
	script := filepath.Join(dir, "browser.sh")
	content := "#!/bin/sh\nprintf '%s' \"$1\" > \"" + urlFile + "\"\n"
	if err := os.WriteFile(script, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MDVIEW_BROWSER_COMMAND", script)
	return urlFile
}

// readURL reads the file the browser stub writes, polling briefly
// because the browser process is started without being waited on.
func readURL(t *testing.T, urlFile string) ([]byte, error) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		data, err := os.ReadFile(urlFile)
		if err == nil || time.Now().After(deadline) {
			return data, err
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // keep user config out
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeepSingleFile(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	urlFile := browserStub(t)
	md := writeMD(t, work, "report.md", "# Quarterly Report\n")

	out, err := run(t, "--keep", md)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	data, err := os.ReadFile(filepath.Join(work, "report.html"))
	if err != nil {
		t.Fatalf("report.html not written: %v", err)
	}
	html := string(data)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Fatalf("not a standalone document: %q", html[:40])
	}
	if !strings.Contains(html, "Quarterly Report") {
		t.Fatalf("missing content: %q", html)
	}
	if !strings.Contains(out, "Saved") {
		t.Fatalf("missing save notice: %q", out)
	}
	if strings.Contains(out, "temporary files") {
		t.Fatalf("kept artifact must not mention cleanup: %q", out)
	}

	url, err := readURL(t, urlFile)
	if err != nil {
		t.Fatalf("browser not invoked: %v", err)
	}
	if !strings.HasSuffix(string(url), "/report.html") {
		t.Fatalf("browser got %q", url)
	}
}

func TestKeepMultiFileWritesIndex(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	urlFile := browserStub(t)
	a := writeMD(t, work, "a.md", "# First\n")
	b := writeMD(t, work, "b.md", "# Second\n")

	out, err := run(t, "--keep", a, b)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	for _, name := range []string{"a.html", "b.html", "index.html"} {
		if _, err := os.Stat(filepath.Join(work, name)); err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
	index, err := os.ReadFile(filepath.Join(work, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="a.html"`) || !strings.Contains(string(index), `href="b.html"`) {
		t.Fatalf("index links missing: %q", index)
	}

	url, err := readURL(t, urlFile)
	if err != nil {
		t.Fatalf("browser not invoked: %v", err)
	}
	if !strings.HasSuffix(string(url), "/index.html") {
		t.Fatalf("browser should open the index, got %q", url)
	}
}

func TestMissingInputAbortsBeforeWriting(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	browserStub(t)
	good := writeMD(t, work, "good.md", "# fine\n")

	out, err := run(t, "--keep", good, "absent.md")
	if err == nil {
		t.Fatalf("expected error, output=%q", out)
	}
	if !strings.Contains(err.Error(), "absent.md") {
		t.Fatalf("error should name the path: %v", err)
	}
	// Nothing may be written when any input fails.
	if _, statErr := os.Stat(filepath.Join(work, "good.html")); !os.IsNotExist(statErr) {
		t.Fatalf("artifact written despite input error")
	}
}

func TestNoInputShowsHelp(t *testing.T) {
	out, err := run(t)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("help not shown: %q", out)
	}
}

func TestInvalidCombination(t *testing.T) {
	if _, err := run(t, "--tty", "--keep", "x.md"); err == nil {
		t.Fatalf("expected error for --tty --keep")
	}
	if _, err := run(t, "--readme", "extra.md"); err == nil {
		t.Fatalf("expected error for --readme with files")
	}
}

func TestTTYRender(t *testing.T) {
	work := t.TempDir()
	md := writeMD(t, work, "note.md", "# Terminal Heading\n\nbody line\n")

	out, err := run(t, "--tty", "--style", "notty", md)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Terminal Heading") || !strings.Contains(out, "body line") {
		t.Fatalf("rendered output missing: %q", out)
	}
}

func TestReadmeTTY(t *testing.T) {
	out, err := run(t, "--readme", "--tty", "--style", "notty")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "mdview") {
		t.Fatalf("builtin docs missing: %q", out)
	}
}

func TestConfigGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	out, err := run(t, "config", "generate", "-o", path)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cleanup_delay = 30") {
		t.Fatalf("config content: %q", data)
	}
}

// testApp builds an App with a recording browser, an optional window
// opener, and a harmless sweeper executable, so the transient flow can
// run end to end without touching a real display or re-exec'ing the
// test binary.
func testApp(t *testing.T, opened *[]string, window func(string, display.WindowConfig) error) *wire.App {
	t.Helper()
	truePath, err := exec.LookPath("true")
	if err != nil {
		t.Skip("no 'true' binary available")
	}
	logger := log.New(io.Discard, "", 0)
	return &wire.App{
		Cfg:    config.Config{CleanupDelay: 30 * time.Second, Style: "notty"},
		Log:    logger,
		Render: render.New(),
		Store:  store.New("", t.TempDir()),
		Display: &display.Dispatcher{
			Log: logger,
			OpenBrowserFunc: func(url string) error {
				*opened = append(*opened, url)
				return nil
			},
			OpenWindowFunc: window,
		},
		Cleanup: &cleanup.Scheduler{Delay: 30 * time.Second, Exe: truePath},
	}
}

func viewCmd(t *testing.T, app *wire.App) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(context.WithValue(context.Background(), appKey, app))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func TestTransientMultiFileScenario(t *testing.T) {
	work := t.TempDir()
	a := writeMD(t, work, "a.md", "# A\n")
	b := writeMD(t, work, "b.md", "# B\n")

	var opened []string
	app := testApp(t, &opened, nil)
	cmd, out := viewCmd(t, app)

	if err := runView(cmd, []string{a, b}, viewOptions{}); err != nil {
		t.Fatalf("runView: %v", err)
	}

	if len(opened) != 1 || !strings.HasSuffix(opened[0], "/index.html") {
		t.Fatalf("browser should open the index, got %v", opened)
	}
	dir := filepath.Dir(strings.TrimPrefix(opened[0], "file://"))
	for _, name := range []string{"a.html", "b.html", "index.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not staged: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "temporary files are removed after 30s") {
		t.Fatalf("missing cleanup notice: %q", out.String())
	}
}

func TestGUIFallsBackToBrowser(t *testing.T) {
	work := t.TempDir()
	a := writeMD(t, work, "a.md", "# A\n")
	b := writeMD(t, work, "b.md", "# B\n")

	var opened []string
	app := testApp(t, &opened, func(url string, cfg display.WindowConfig) error {
		return display.ErrWindowUnavailable
	})
	cmd, out := viewCmd(t, app)

	if err := runView(cmd, []string{a, b}, viewOptions{gui: true}); err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	// GUI mode builds one tabbed page; the fallback just opens it in
	// the browser instead.
	if len(opened) != 1 || !strings.HasSuffix(opened[0], "/a.html") {
		t.Fatalf("opened=%v", opened)
	}
	data, err := os.ReadFile(strings.TrimPrefix(opened[0], "file://"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `class="tab-bar"`) {
		t.Fatalf("expected tabbed page: %q", data)
	}
	if !strings.Contains(out.String(), "in browser") {
		t.Fatalf("notice should report the delivered surface: %q", out.String())
	}
}

func TestGUIWindowDelivered(t *testing.T) {
	work := t.TempDir()
	a := writeMD(t, work, "a.md", "# A\n")

	var opened []string
	windowURLs := []string{}
	app := testApp(t, &opened, func(url string, cfg display.WindowConfig) error {
		windowURLs = append(windowURLs, url)
		return nil
	})
	cmd, out := viewCmd(t, app)

	if err := runView(cmd, []string{a}, viewOptions{gui: true}); err != nil {
		t.Fatalf("runView: %v", err)
	}
	if len(windowURLs) != 1 || len(opened) != 0 {
		t.Fatalf("window=%v browser=%v", windowURLs, opened)
	}
	if !strings.Contains(out.String(), "in gui") {
		t.Fatalf("notice=%q", out.String())
	}
	if app.Display.Window.Title != "Markdown Viewer - a.md" {
		t.Fatalf("window title=%q", app.Display.Window.Title)
	}
}
