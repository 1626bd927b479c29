//go:build !windows
// +build !windows

package ui

import "syscall"

// setNonblock puts a pty master into non-blocking mode so reads in the
// integration tests can poll instead of hanging.
func setNonblock(fd uintptr) error {
	return syscall.SetNonblock(int(fd), true)
}
