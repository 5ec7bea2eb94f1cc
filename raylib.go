package raylib

/*
#cgo LDFLAGS: -lraylib -lm
#cgo linux LDFLAGS: -lpthread -ldl -lrt -lX11
#cgo darwin LDFLAGS: -framework OpenGL -framework Cocoa -framework IOKit -framework CoreVideo
#cgo windows LDFLAGS: -lopengl32 -lgdi32 -lwinmm
#include <stdlib.h>
#include "raylib.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/Dacode45/raylib-go/internal/cstr"
)

var (
	ErrAlreadyInitialized = errors.New("raylib: window already initialized")
	ErrInitFailed         = errors.New("raylib: window initialization failed")
	ErrClosed             = errors.New("raylib: handle is closed")
	ErrWrongThread        = errors.New("raylib: call from a thread other than the one that initialized raylib")
)

// live is set while a Handle exists. raylib keeps a single global window
// and GL context, so at most one Handle may be live per process.
var live atomic.Bool

func init() {
	runtime.LockOSThread()
}

// Handle proves that raylib has been initialized and a window is open. It is
// obtained from Builder.Build and must be closed exactly once, from the
// thread that built it.
type Handle struct {
	thread *Thread
	closed bool
	width  int
	height int
	title  string
}

// Thread marks the OS thread that initialized raylib. Operations that touch
// the GL context or window state require it.
type Thread struct {
	id uint64
}

func (th *Thread) check() error {
	if th == nil {
		return ErrWrongThread
	}
	if id, ok := currentThreadID(); ok && id != th.id {
		return ErrWrongThread
	}
	return nil
}

func (h *Handle) check(th *Thread) error {
	if h == nil || h.closed {
		return ErrClosed
	}
	if th != h.thread {
		return ErrWrongThread
	}
	return th.check()
}

// ConfigFlags mirrors the raylib window configuration flags.
type ConfigFlags uint32

const (
	FlagFullscreenMode    ConfigFlags = C.FLAG_FULLSCREEN_MODE
	FlagWindowResizable   ConfigFlags = C.FLAG_WINDOW_RESIZABLE
	FlagWindowUndecorated ConfigFlags = C.FLAG_WINDOW_UNDECORATED
	FlagMSAA4xHint        ConfigFlags = C.FLAG_MSAA_4X_HINT
	FlagVSyncHint         ConfigFlags = C.FLAG_VSYNC_HINT
	FlagWindowHidden      ConfigFlags = C.FLAG_WINDOW_HIDDEN
)

// Builder collects window settings before initialization.
type Builder struct {
	width      int
	height     int
	title      string
	flags      ConfigFlags
	targetFPS  int
	traceLevel TraceLogLevel
}

// Init starts building a window. Call Build to open it.
func Init() *Builder {
	return &Builder{
		width:      640,
		height:     480,
		title:      "raylib-go",
		traceLevel: LogInfo,
	}
}

func (b *Builder) Size(width, height int) *Builder {
	b.width = width
	b.height = height
	return b
}

func (b *Builder) Width(width int) *Builder {
	b.width = width
	return b
}

func (b *Builder) Height(height int) *Builder {
	b.height = height
	return b
}

func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

func (b *Builder) VSync() *Builder {
	b.flags |= FlagVSyncHint
	return b
}

func (b *Builder) MSAA4x() *Builder {
	b.flags |= FlagMSAA4xHint
	return b
}

func (b *Builder) Fullscreen() *Builder {
	b.flags |= FlagFullscreenMode
	return b
}

func (b *Builder) Resizable() *Builder {
	b.flags |= FlagWindowResizable
	return b
}

func (b *Builder) Undecorated() *Builder {
	b.flags |= FlagWindowUndecorated
	return b
}

func (b *Builder) Hidden() *Builder {
	b.flags |= FlagWindowHidden
	return b
}

// TargetFPS caps the frame rate once the window is open. Zero means uncapped.
func (b *Builder) TargetFPS(fps int) *Builder {
	b.targetFPS = fps
	return b
}

// TraceLogLevel sets the minimum level of raylib's own log messages.
func (b *Builder) TraceLogLevel(level TraceLogLevel) *Builder {
	b.traceLevel = level
	return b
}

// Build opens the window and returns the live Handle together with the
// Thread token of the calling OS thread. The calling goroutine stays locked
// to its thread until the Handle is closed.
func (b *Builder) Build() (*Handle, *Thread, error) {
	if b.width < 0 || b.height < 0 || b.width > math.MaxInt32 || b.height > math.MaxInt32 {
		return nil, nil, fmt.Errorf("raylib: invalid window size %dx%d", b.width, b.height)
	}
	title, err := cstr.Alloc(b.title)
	if err != nil {
		return nil, nil, fmt.Errorf("raylib: window title: %w", err)
	}
	defer cstr.Free(title)
	if !live.CompareAndSwap(false, true) {
		return nil, nil, ErrAlreadyInitialized
	}
	runtime.LockOSThread()
	SetTraceLogLevel(b.traceLevel)
	if b.flags != 0 {
		C.SetConfigFlags(C.uint(b.flags))
	}
	C.InitWindow(C.int(b.width), C.int(b.height), (*C.char)(title))
	if !bool(C.IsWindowReady()) {
		live.Store(false)
		runtime.UnlockOSThread()
		return nil, nil, ErrInitFailed
	}
	if b.targetFPS > 0 {
		C.SetTargetFPS(C.int(b.targetFPS))
	}
	id, _ := currentThreadID()
	th := &Thread{id: id}
	h := &Handle{
		thread: th,
		width:  b.width,
		height: b.height,
		title:  b.title,
	}
	Logger().Info("window initialized", "width", b.width, "height", b.height, "title", b.title, "flags", uint32(b.flags))
	return h, th, nil
}

// SetTraceLogLevel sets the minimum level of raylib's own log messages.
// Messages below it are dropped by raylib before they reach Logger().
func SetTraceLogLevel(level TraceLogLevel) {
	C.SetTraceLogLevel(C.int(level))
}

// InitWindow is shorthand for Init().Size(width, height).Title(title).Build().
func InitWindow(width, height int, title string) (*Handle, *Thread, error) {
	return Init().Size(width, height).Title(title).Build()
}

// Close closes the window and shuts raylib down. Closing an already closed
// Handle is a no-op.
func (h *Handle) Close() error {
	if h == nil || h.closed {
		return nil
	}
	if err := h.thread.check(); err != nil {
		return err
	}
	h.closed = true
	C.CloseWindow()
	live.Store(false)
	runtime.UnlockOSThread()
	Logger().Info("window closed", "title", h.title)
	return nil
}

func (h *Handle) String() string {
	state := "open"
	if h.closed {
		state = "closed"
	}
	return fmt.Sprintf("raylib.Handle{%q %dx%d %s}", h.title, h.width, h.height, state)
}
