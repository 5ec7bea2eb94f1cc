package raylib

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dacode45/raylib-go/internal/cstr"
)

func TestGetRandomValueRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := GetRandomValue(0, 10); n < 0 || n > 10 {
			t.Fatalf("GetRandomValue(0, 10) = %d, out of range", n)
		}
	}
}

func TestGetRandomValueEqualBounds(t *testing.T) {
	for _, v := range []int32{-7, 0, 1, 42} {
		for i := 0; i < 100; i++ {
			if n := GetRandomValue(v, v); n != v {
				t.Fatalf("GetRandomValue(%d, %d) = %d", v, v, n)
			}
		}
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if got != "hello\n" {
		t.Errorf("LoadText() = %q, want %q", got, "hello\n")
	}
}

func TestLoadTextEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadText(path)
	if err != nil || got != "" {
		t.Errorf("LoadText(empty) = %q, %v; want \"\", nil", got, err)
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	_, err := LoadText(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if !errors.Is(err, ErrLoadText) {
		t.Errorf("LoadText(missing) error = %v, want ErrLoadText", err)
	}
}

func TestLoadTextInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	if err := os.WriteFile(path, []byte("caf\xe9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadText(path); !errors.Is(err, cstr.ErrInvalidText) {
		t.Errorf("LoadText(latin1) error = %v, want ErrInvalidText", err)
	}
}

func TestLoadTextRejectsNUL(t *testing.T) {
	if _, err := LoadText("bad\x00name.txt"); !errors.Is(err, cstr.ErrNUL) {
		t.Errorf("LoadText() error = %v, want ErrNUL", err)
	}
}

func TestOpenURLRejectsNUL(t *testing.T) {
	if err := OpenURL("https://www.raylib.com/\x00"); !errors.Is(err, cstr.ErrNUL) {
		t.Errorf("OpenURL() error = %v, want ErrNUL", err)
	}
}

func TestGetRandomValueSwappedBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		if n := GetRandomValue(10, -10); n < -10 || n > 10 {
			t.Fatalf("GetRandomValue(10, -10) = %d, out of range", n)
		}
	}
}

func TestGetRandomValueWideRange(t *testing.T) {
	tests := []struct{ lo, hi int32 }{
		{math.MinInt32, math.MaxInt32},
		{math.MinInt32, 0},
		{-1, math.MaxInt32},
		{math.MaxInt32, math.MinInt32},
	}
	for _, tt := range tests {
		lo, hi := min(tt.lo, tt.hi), max(tt.lo, tt.hi)
		for i := 0; i < 200; i++ {
			if n := GetRandomValue(tt.lo, tt.hi); n < lo || n > hi {
				t.Fatalf("GetRandomValue(%d, %d) = %d, out of range", tt.lo, tt.hi, n)
			}
		}
	}
	seenNegative, seenPositive := false, false
	for i := 0; i < 200 && !(seenNegative && seenPositive); i++ {
		n := GetRandomValue(math.MinInt32, math.MaxInt32)
		seenNegative = seenNegative || n < 0
		seenPositive = seenPositive || n > 0
	}
	if !seenNegative || !seenPositive {
		t.Error("GetRandomValue(MinInt32, MaxInt32) never left one half of the range")
	}
}
