// Package cleanup deletes transient artifacts after a delay. The delete
// runs in a detached child process (its own session, stdio closed), so
// it still fires when the main program has long exited, including after
// non-graceful termination.
package cleanup

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"
)

// DefaultDelay is used when no override is configured.
const DefaultDelay = 30 * time.Second

// Scheduler spawns sweep children. Once scheduled, a task cannot be
// revoked; a run that needs the files longer must be started with a
// larger delay.
type Scheduler struct {
	Delay time.Duration
	Log   *log.Logger

	// Exe overrides the re-exec target; empty means os.Executable().
	Exe string
}

// New returns a Scheduler with the given delay.
func New(delay time.Duration, logger *log.Logger) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{Delay: delay, Log: logger}
}

// Schedule arranges deletion of paths, and of dir once they are gone,
// after the configured delay. The work is handed to a detached child
// re-exec of this binary running the hidden sweep command.
func (s *Scheduler) Schedule(paths []string, dir string) error {
	exe := s.Exe
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return fmt.Errorf("cleanup: resolve executable: %w", err)
		}
	}
	cmd := exec.Command(exe, SweepArgs(s.Delay, dir, paths)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	cmd.SysProcAttr = detachAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cleanup: spawn sweeper: %w", err)
	}
	// The child belongs to its own session now; drop our handle.
	_ = cmd.Process.Release()
	if s.Log != nil {
		s.Log.Printf("scheduled cleanup of %d file(s) in %s", len(paths), s.Delay)
	}
	return nil
}

// SweepArgs builds the argument vector for the sweep child.
func SweepArgs(delay time.Duration, dir string, paths []string) []string {
	args := []string{"sweep", "--delay", delay.String()}
	if dir != "" {
		args = append(args, "--rmdir", dir)
	}
	return append(args, paths...)
}

// Sweep is the child's entry point: wait out the delay, then remove.
func Sweep(delay time.Duration, dir string, paths []string) {
	if delay > 0 {
		time.Sleep(delay)
	}
	Remove(dir, paths)
}

// Remove deletes each path and finally the containing directory.
// Idempotent: already-missing files are not an error, and there is
// nowhere left to report failures to, so errors are dropped.
func Remove(dir string, paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
	if dir != "" {
		_ = os.Remove(dir)
	}
}
