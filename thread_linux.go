//go:build linux

package raylib

import "golang.org/x/sys/unix"

// currentThreadID returns the kernel id of the calling OS thread.
func currentThreadID() (uint64, bool) {
	return uint64(unix.Gettid()), true
}
