package raylib

/*
#include <stdlib.h>
#include "raylib.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/Dacode45/raylib-go/internal/cstr"
)

var (
	ErrLoadText      = errors.New("raylib: failed to load text file")
	ErrCaptureFailed = errors.New("raylib: screen capture returned no data")
	ErrScreenshot    = errors.New("raylib: screenshot failed")
)

// GetRandomValue returns a random value between min and max, both included.
// The bounds may be given in either order and may span the whole int32 range.
func GetRandomValue(min, max int32) int32 {
	if min > max {
		min, max = max, min
	}
	span := int64(max) - int64(min) + 1
	if span < math.MaxInt32 {
		return int32(C.GetRandomValue(C.int(min), C.int(max)))
	}
	// raylib computes max-min+1 in a C int, so wide ranges are drawn as two
	// 16-bit halves and rejected when they land past the span.
	for {
		hi := int64(C.GetRandomValue(0, 0xffff))
		lo := int64(C.GetRandomValue(0, 0xffff))
		if n := hi<<16 | lo; n < span {
			return int32(int64(min) + n)
		}
	}
}

// OpenURL opens url with the default system browser, if one is available.
// Failures to launch a browser are not reported.
func OpenURL(url string) error {
	err := cstr.With(url, func(p unsafe.Pointer) {
		C.OpenURL((*C.char)(p))
	})
	if err != nil {
		return fmt.Errorf("raylib: open url: %w", err)
	}
	return nil
}

// LoadText loads a text file and returns its contents.
func LoadText(filename string) (string, error) {
	var text *C.char
	err := cstr.With(filename, func(p unsafe.Pointer) {
		text = C.LoadFileText((*C.char)(p))
	})
	if err != nil {
		return "", fmt.Errorf("raylib: load text %q: %w", filename, err)
	}
	s, err := cstr.Take(unsafe.Pointer(text), unloadFileText)
	if errors.Is(err, cstr.ErrNilBuffer) {
		// raylib reports an empty file the same way as a missing one.
		if fi, statErr := os.Stat(filename); statErr == nil && fi.Mode().IsRegular() && fi.Size() == 0 {
			return "", nil
		}
		return "", fmt.Errorf("%w: %s", ErrLoadText, filename)
	}
	if err != nil {
		return "", fmt.Errorf("raylib: load text %q: %w", filename, err)
	}
	return s, nil
}

func unloadFileText(p unsafe.Pointer) {
	C.UnloadFileText((*C.char)(p))
}

// GetScreenData captures the current contents of the screen. The caller
// owns the returned Image and must Close it.
func (h *Handle) GetScreenData(th *Thread) (*Image, error) {
	if err := h.check(th); err != nil {
		return nil, err
	}
	img := C.LoadImageFromScreen()
	if img.data == nil {
		return nil, ErrCaptureFailed
	}
	return newImage(img), nil
}

// TakeScreenshot writes the current screen contents to filename as PNG.
// The file must have a .png extension.
func (h *Handle) TakeScreenshot(th *Thread, filename string) error {
	if err := h.check(th); err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		return fmt.Errorf("%w: %s: not a .png file", ErrScreenshot, filename)
	}
	img, err := h.GetScreenData(th)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScreenshot, err)
	}
	defer img.Close()
	if err := img.Export(filename); err != nil {
		return fmt.Errorf("%w: %w", ErrScreenshot, err)
	}
	fi, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScreenshot, err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrScreenshot, filename)
	}
	Logger().Debug("screenshot written", "file", filename, "size", fi.Size())
	return nil
}
