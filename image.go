package raylib

/*
#include <stdlib.h>
#include "raylib.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	"github.com/Dacode45/raylib-go/internal/cstr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	ErrImageReleased = errors.New("raylib: image already released")
	ErrExport        = errors.New("raylib: image export failed")
)

// PixelFormat mirrors raylib's PixelFormat enum for uncompressed formats.
type PixelFormat int32

const (
	PixelFormatGrayscale PixelFormat = iota + 1
	PixelFormatGrayAlpha
	PixelFormatR5G6B5
	PixelFormatR8G8B8
	PixelFormatR5G5B5A1
	PixelFormatR4G4B4A4
	PixelFormatR8G8B8A8
)

// Image owns pixel data allocated by raylib. It must be released with
// Close; a finalizer releases images that are dropped without one.
type Image struct {
	img C.Image
}

func newImage(img C.Image) *Image {
	i := &Image{img: img}
	runtime.SetFinalizer(i, func(i *Image) {
		i.Close()
	})
	return i
}

// GenImageColor creates a width x height image filled with c.
func GenImageColor(width, height int, c Color) (*Image, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32 {
		return nil, fmt.Errorf("raylib: invalid image size %dx%d", width, height)
	}
	img := C.GenImageColor(C.int(width), C.int(height), cColor(c))
	if img.data == nil {
		return nil, fmt.Errorf("raylib: GenImageColor %dx%d returned no data", width, height)
	}
	return newImage(img), nil
}

func (i *Image) Width() int {
	return int(i.img.width)
}

func (i *Image) Height() int {
	return int(i.img.height)
}

func (i *Image) Mipmaps() int {
	return int(i.img.mipmaps)
}

func (i *Image) Format() PixelFormat {
	return PixelFormat(i.img.format)
}

func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.Width(), i.Height())
}

// Released reports whether Close has been called.
func (i *Image) Released() bool {
	return i.img.data == nil
}

// Close hands the pixel buffer back to raylib. Calling Close more than once
// is a no-op.
func (i *Image) Close() error {
	if i.img.data == nil {
		return nil
	}
	C.UnloadImage(i.img)
	i.img.data = nil
	runtime.SetFinalizer(i, nil)
	return nil
}

// ToNRGBA copies the pixels into Go memory. raylib colors are not
// premultiplied, hence NRGBA.
func (i *Image) ToNRGBA() (*image.NRGBA, error) {
	if i.img.data == nil {
		return nil, ErrImageReleased
	}
	w, h := i.Width(), i.Height()
	colors := C.LoadImageColors(i.img)
	if colors == nil {
		return nil, fmt.Errorf("raylib: LoadImageColors %dx%d returned no data", w, h)
	}
	defer C.UnloadImageColors(colors)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(dst.Pix, unsafe.Slice((*byte)(unsafe.Pointer(colors)), w*h*4))
	runtime.KeepAlive(i)
	return dst, nil
}

// Export writes the image with raylib's exporter; the format follows the
// file extension.
func (i *Image) Export(filename string) error {
	if i.img.data == nil {
		return ErrImageReleased
	}
	var ok C.bool
	err := cstr.With(filename, func(p unsafe.Pointer) {
		ok = C.ExportImage(i.img, (*C.char)(p))
	})
	runtime.KeepAlive(i)
	if err != nil {
		return fmt.Errorf("raylib: export image %q: %w", filename, err)
	}
	if !bool(ok) {
		return fmt.Errorf("%w: %s", ErrExport, filename)
	}
	return nil
}

// Encode writes the image to w in the given format: "png", "bmp" or "tiff".
func (i *Image) Encode(w io.Writer, format string) error {
	m, err := i.ToNRGBA()
	if err != nil {
		return err
	}
	switch format {
	case "png":
		return png.Encode(w, m)
	case "bmp":
		return bmp.Encode(w, m)
	case "tiff":
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("raylib: unsupported image format %q", format)
	}
}

// FormatFromPath returns the Encode format matching filename's extension.
func FormatFromPath(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "png", "bmp", "tiff":
		return ext, nil
	case "tif":
		return "tiff", nil
	default:
		return "", fmt.Errorf("raylib: no image format for extension %q", filepath.Ext(filename))
	}
}
