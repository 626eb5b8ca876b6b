//go:build !gui

package display

// Without the gui build tag there is no windowing capability; callers
// take the browser fallback.
func openNativeWindow(url string, cfg WindowConfig) error {
	return ErrWindowUnavailable
}
