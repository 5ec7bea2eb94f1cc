// Package cstr moves strings across the cgo boundary.
//
// Go strings become NUL-terminated C copies that live for exactly one call,
// and NUL-terminated buffers handed out by C code are copied into Go memory
// and given back to whichever allocator produced them.
package cstr

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

var (
	ErrNUL         = errors.New("string contains NUL byte")
	ErrInvalidText = errors.New("foreign buffer is not valid UTF-8")
	ErrNilBuffer   = errors.New("foreign buffer is NULL")
)

// Alloc returns a malloc'd NUL-terminated copy of s. The caller must Free it.
func Alloc(s string) (unsafe.Pointer, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, fmt.Errorf("%w at offset %d", ErrNUL, i)
	}
	return unsafe.Pointer(C.CString(s)), nil
}

// Free releases memory obtained from Alloc.
func Free(p unsafe.Pointer) {
	C.free(p)
}

var free = Free

// With calls fn with a C copy of s that is valid until fn returns. The copy
// is freed even if fn panics.
func With(s string, fn func(p unsafe.Pointer)) error {
	p, err := Alloc(s)
	if err != nil {
		return err
	}
	defer free(p)
	fn(p)
	return nil
}

// Take copies the NUL-terminated buffer at p into a Go string and hands p
// to release. release must be the deallocator that matches the allocator
// which produced p; it is called exactly once unless p is nil.
func Take(p unsafe.Pointer, release func(unsafe.Pointer)) (string, error) {
	if p == nil {
		return "", ErrNilBuffer
	}
	defer release(p)
	s := C.GoString((*C.char)(p))
	if !utf8.ValidString(s) {
		return "", ErrInvalidText
	}
	return s, nil
}
