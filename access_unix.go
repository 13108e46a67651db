//go:build linux || darwin || freebsd || netbsd || openbsd

package main

import "golang.org/x/sys/unix"

// accessReadable asks the kernel whether the current user may read path.
func accessReadable(path string) error {
	return unix.Access(path, unix.R_OK)
}
