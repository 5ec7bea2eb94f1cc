//go:build windows

package raylib

import "golang.org/x/sys/windows"

// currentThreadID returns the Win32 id of the calling OS thread.
func currentThreadID() (uint64, bool) {
	return uint64(windows.GetCurrentThreadId()), true
}
