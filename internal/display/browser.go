package display

import (
	"os/exec"
	"runtime"
)

// openURL hands the URL to the platform's default-open mechanism, or to
// the configured override command. The child is started and left alone;
// the call does not wait for the browser.
func openURL(u string, override string) error {
	var cmd *exec.Cmd
	if override != "" {
		cmd = exec.Command(override, u)
	} else {
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", u)
		case "windows":
			cmd = exec.Command("cmd", "/c", "start", u)
		default:
			cmd = exec.Command("xdg-open", u)
		}
	}
	cmd.Stdout, cmd.Stderr, cmd.Stdin = nil, nil, nil
	return cmd.Start()
}
