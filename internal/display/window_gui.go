//go:build gui

package display

import webview "github.com/webview/webview_go"

// openNativeWindow shows url in a webview window and blocks until the
// user closes it. Only compiled in with the gui build tag, since the
// toolkit needs system webview libraries.
func openNativeWindow(url string, cfg WindowConfig) error {
	w := webview.New(false)
	if w == nil {
		return ErrWindowUnavailable
	}
	defer w.Destroy()
	w.SetTitle(cfg.Title)
	w.SetSize(cfg.Width, cfg.Height, webview.HintNone)
	w.Navigate(url)
	w.Run()
	return nil
}
