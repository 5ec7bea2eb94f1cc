package raylib

/*
#include "raylib.h"
*/
import "C"

// Key is a raylib keyboard key code.
type Key int32

const (
	KeyNull   Key = 0
	KeySpace  Key = 32
	KeyQ      Key = 81
	KeyS      Key = 83
	KeyEscape Key = 256
	KeyEnter  Key = 257
	KeyF12    Key = 301
)

// The queries below need no Thread token. On a closed Handle they return
// zero values and the setters do nothing.

// WindowShouldClose reports whether the user asked to close the window. It
// is always true for a closed Handle.
func (h *Handle) WindowShouldClose() bool {
	if h == nil || h.closed {
		return true
	}
	return bool(C.WindowShouldClose())
}

func (h *Handle) SetTargetFPS(fps int) {
	if h != nil && !h.closed {
		C.SetTargetFPS(C.int(fps))
	}
}

func (h *Handle) SetExitKey(key Key) {
	if h != nil && !h.closed {
		C.SetExitKey(C.int(key))
	}
}

func (h *Handle) GetFPS() int {
	if h == nil || h.closed {
		return 0
	}
	return int(C.GetFPS())
}

// GetFrameTime returns the duration of the last frame in seconds.
func (h *Handle) GetFrameTime() float32 {
	if h == nil || h.closed {
		return 0
	}
	return float32(C.GetFrameTime())
}

// GetTime returns the seconds elapsed since the window was opened.
func (h *Handle) GetTime() float64 {
	if h == nil || h.closed {
		return 0
	}
	return float64(C.GetTime())
}

func (h *Handle) GetScreenWidth() int {
	if h == nil || h.closed {
		return 0
	}
	return int(C.GetScreenWidth())
}

func (h *Handle) GetScreenHeight() int {
	if h == nil || h.closed {
		return 0
	}
	return int(C.GetScreenHeight())
}

func (h *Handle) GetMousePosition() Vector2 {
	if h == nil || h.closed {
		return Vector2{}
	}
	return goVector2(C.GetMousePosition())
}

func (h *Handle) IsKeyPressed(key Key) bool {
	if h == nil || h.closed {
		return false
	}
	return bool(C.IsKeyPressed(C.int(key)))
}

func (h *Handle) IsKeyDown(key Key) bool {
	if h == nil || h.closed {
		return false
	}
	return bool(C.IsKeyDown(C.int(key)))
}
