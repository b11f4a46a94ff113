package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "scatterviz")

	// 2x2 frame, bottom row red, top row green (GL order: bottom row first).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 255, 0, 255, 0, 255, 0, 255,
	}

	name, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(name), "scatterviz_") || filepath.Ext(name) != ".png" {
		t.Errorf("unexpected filename %q", name)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}

	if r, g, _, _ := img.At(0, 0).RGBA(); r != 0 || g != 0xffff {
		t.Errorf("top-left pixel = (%d, %d), want green", r, g)
	}
	if r, g, _, _ := img.At(1, 1).RGBA(); r != 0xffff || g != 0 {
		t.Errorf("bottom-right pixel = (%d, %d), want red", r, g)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")

	if _, err := sc.CaptureFromPixels(make([]byte, 7), 2, 1); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestCaptureSameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "frame")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	pixels := make([]byte, 4)
	first, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatalf("second capture: %v", err)
	}

	if first == second {
		t.Fatalf("both captures written to %s", first)
	}
	if want := filepath.Join(dir, "frame_2026-03-01_12-00-00_1.png"); second != want {
		t.Errorf("second capture = %s, want %s", second, want)
	}
}
