package raylib

/*
#include <stdlib.h>
#include "raylib.h"
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/Dacode45/raylib-go/internal/cstr"
)

// DrawHandle is valid only inside the function passed to Handle.Draw.
type DrawHandle struct {
	active bool
}

// Draw brackets fn between BeginDrawing and EndDrawing.
func (h *Handle) Draw(th *Thread, fn func(d *DrawHandle)) error {
	if err := h.check(th); err != nil {
		return err
	}
	d := &DrawHandle{active: true}
	C.BeginDrawing()
	defer func() {
		d.active = false
		C.EndDrawing()
	}()
	fn(d)
	return nil
}

func (d *DrawHandle) ok(op string) bool {
	if !d.active {
		Logger().Warn("draw call outside of Draw", "op", op)
	}
	return d.active
}

func (d *DrawHandle) ClearBackground(c Color) {
	if d.ok("ClearBackground") {
		C.ClearBackground(cColor(c))
	}
}

func (d *DrawHandle) DrawText(text string, x, y, fontSize int32, c Color) error {
	if !d.ok("DrawText") {
		return nil
	}
	err := cstr.With(text, func(p unsafe.Pointer) {
		C.DrawText((*C.char)(p), C.int(x), C.int(y), C.int(fontSize), cColor(c))
	})
	if err != nil {
		return fmt.Errorf("raylib: draw text: %w", err)
	}
	return nil
}

func (d *DrawHandle) DrawRectangle(x, y, width, height int32, c Color) {
	if d.ok("DrawRectangle") {
		C.DrawRectangle(C.int(x), C.int(y), C.int(width), C.int(height), cColor(c))
	}
}

func (d *DrawHandle) DrawCircle(center Vector2, radius float32, c Color) {
	if d.ok("DrawCircle") {
		C.DrawCircleV(cVector2(center), C.float(radius), cColor(c))
	}
}

func (d *DrawHandle) DrawFPS(x, y int32) {
	if d.ok("DrawFPS") {
		C.DrawFPS(C.int(x), C.int(y))
	}
}

// MeasureText returns the width in pixels of text drawn with the default
// font at fontSize.
func (h *Handle) MeasureText(text string, fontSize int32) (int32, error) {
	if h == nil || h.closed {
		return 0, ErrClosed
	}
	var width C.int
	err := cstr.With(text, func(p unsafe.Pointer) {
		width = C.MeasureText((*C.char)(p), C.int(fontSize))
	})
	if err != nil {
		return 0, fmt.Errorf("raylib: measure text: %w", err)
	}
	return int32(width), nil
}
