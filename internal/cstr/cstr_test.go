package cstr

import (
	"errors"
	"strconv"
	"testing"
	"unsafe"
)

func TestWithRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"hello\n",
		"test_out/screenshot.png",
		"ünïcödé ✓",
		"https://www.raylib.com/?q=a&b=c",
	}
	for _, in := range tests {
		var got string
		var takeErr error
		err := With(in, func(p unsafe.Pointer) {
			// With owns the copy, so Take must not free it.
			got, takeErr = Take(p, func(unsafe.Pointer) {})
		})
		if err != nil || takeErr != nil {
			t.Errorf("With(%q) error = %v, %v", in, err, takeErr)
			continue
		}
		if got != in {
			t.Errorf("With(%q) passed %q to the callback", in, got)
		}
	}
}

func TestWithRejectsNUL(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"\x00", 0},
		{"abc\x00def", 3},
		{"trailing\x00", 8},
	}
	for _, tt := range tests {
		called := false
		err := With(tt.in, func(unsafe.Pointer) { called = true })
		if !errors.Is(err, ErrNUL) {
			t.Errorf("With(%q) error = %v, want ErrNUL", tt.in, err)
		}
		if called {
			t.Errorf("With(%q) invoked the callback despite the NUL byte", tt.in)
		}
		want := "string contains NUL byte at offset " + strconv.Itoa(tt.offset)
		if err != nil && err.Error() != want {
			t.Errorf("With(%q) error = %q, want %q", tt.in, err.Error(), want)
		}
	}
}

func TestTakeCopiesAndReleases(t *testing.T) {
	p, err := Alloc("hello\n")
	if err != nil {
		t.Fatal(err)
	}
	released := 0
	got, err := Take(p, func(q unsafe.Pointer) {
		if q != p {
			t.Errorf("release got %p, want %p", q, p)
		}
		released++
		Free(q)
	})
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if got != "hello\n" {
		t.Errorf("Take() = %q, want %q", got, "hello\n")
	}
	if released != 1 {
		t.Errorf("release called %d times, want 1", released)
	}
}

func TestTakeInvalidTextStillReleases(t *testing.T) {
	p, err := Alloc("bad \xff\xfe bytes")
	if err != nil {
		t.Fatal(err)
	}
	released := 0
	_, err = Take(p, func(q unsafe.Pointer) {
		released++
		Free(q)
	})
	if !errors.Is(err, ErrInvalidText) {
		t.Errorf("Take() error = %v, want ErrInvalidText", err)
	}
	if released != 1 {
		t.Errorf("release called %d times, want 1", released)
	}
}

func TestTakeNil(t *testing.T) {
	_, err := Take(nil, func(unsafe.Pointer) {
		t.Error("release called for a NULL buffer")
	})
	if !errors.Is(err, ErrNilBuffer) {
		t.Errorf("Take(nil) error = %v, want ErrNilBuffer", err)
	}
}

func TestWithFreesOnPanic(t *testing.T) {
	var freed []unsafe.Pointer
	free = func(p unsafe.Pointer) {
		freed = append(freed, p)
		Free(p)
	}
	t.Cleanup(func() { free = Free })

	var passed unsafe.Pointer
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recover() = %v, want boom", r)
			}
		}()
		With("hello", func(p unsafe.Pointer) {
			passed = p
			panic("boom")
		})
	}()
	if len(freed) != 1 || freed[0] != passed {
		t.Fatalf("freed %v after a panic, want exactly [%v]", freed, passed)
	}

	if err := With("again", func(unsafe.Pointer) {}); err != nil {
		t.Errorf("With() after a panic error = %v", err)
	}
	if len(freed) != 2 {
		t.Errorf("freed %d copies, want 2", len(freed))
	}
}
