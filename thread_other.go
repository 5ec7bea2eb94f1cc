//go:build !linux && !windows

package raylib

// currentThreadID reports false where no portable thread id is available;
// Thread checks then rely on the token alone.
func currentThreadID() (uint64, bool) {
	return 0, false
}
