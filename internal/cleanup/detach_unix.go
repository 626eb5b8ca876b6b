//go:build !windows

package cleanup

import "syscall"

// detachAttr puts the sweeper in its own session so it is not part of
// our process group and survives our exit (and our terminal's).
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
