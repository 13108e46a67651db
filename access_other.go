//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package main

import "os"

func accessReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
