//go:build windows

package cleanup

import "syscall"

const detachedProcess = 0x00000008

// detachAttr detaches the sweeper from our console and process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}
