package raylib

/*
#include "raylib.h"
*/
import "C"

import (
	"image/color"

	mgl "github.com/go-gl/mathgl/mgl32"
)

type Color = color.RGBA
type Vector2 = mgl.Vec2

var (
	LightGray = Color{200, 200, 200, 255}
	Gray      = Color{130, 130, 130, 255}
	DarkGray  = Color{80, 80, 80, 255}
	Yellow    = Color{253, 249, 0, 255}
	Gold      = Color{255, 203, 0, 255}
	Orange    = Color{255, 161, 0, 255}
	Red       = Color{230, 41, 55, 255}
	Maroon    = Color{190, 33, 55, 255}
	Green     = Color{0, 228, 48, 255}
	Lime      = Color{0, 158, 47, 255}
	SkyBlue   = Color{102, 191, 255, 255}
	Blue      = Color{0, 121, 241, 255}
	DarkBlue  = Color{0, 82, 172, 255}
	Purple    = Color{200, 122, 255, 255}
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
	Blank     = Color{0, 0, 0, 0}
	RayWhite  = Color{245, 245, 245, 255}
)

func cColor(c Color) C.Color {
	return C.Color{r: C.uchar(c.R), g: C.uchar(c.G), b: C.uchar(c.B), a: C.uchar(c.A)}
}

func cVector2(v Vector2) C.Vector2 {
	return C.Vector2{x: C.float(v.X()), y: C.float(v.Y())}
}

func goVector2(v C.Vector2) Vector2 {
	return Vector2{float32(v.x), float32(v.y)}
}
