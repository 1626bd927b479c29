//go:build windows
// +build windows

package ui

import "syscall"

// setNonblock is the Windows counterpart of the Unix helper; the pty tests
// skip there.
func setNonblock(fd uintptr) error {
	return syscall.SetNonblock(syscall.Handle(fd), true)
}
