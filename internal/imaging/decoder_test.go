package imaging_test

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"shortlist/internal/imaging"
	"shortlist/internal/services"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestDecodeScalesLongestEdge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.png")
	writePNG(t, path, 400, 100)

	var dec imaging.StdDecoder
	img, err := dec.Decode(path, 200)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("bounds = %dx%d, want 200x50", b.Dx(), b.Dy())
	}
}

func TestDecodeDoesNotUpscale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.png")
	writePNG(t, path, 40, 30)

	var dec imaging.StdDecoder
	img, err := dec.Decode(path, 2048)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("bounds = %dx%d, want original 40x30", b.Dx(), b.Dy())
	}
}

func TestDecodeCorruptFileReturnsDecodeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrupt.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var dec imaging.StdDecoder
	if _, err := dec.Decode(path, 100); !errors.Is(err, services.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestDecodeMissingFileReturnsDecodeError(t *testing.T) {
	var dec imaging.StdDecoder
	if _, err := dec.Decode("/nonexistent/a.png", 100); !errors.Is(err, services.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestFitPortraitOrientation(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 400))
	out := imaging.Fit(src, 200)
	b := out.Bounds()
	if b.Dx() != 50 || b.Dy() != 200 {
		t.Fatalf("bounds = %dx%d, want 50x200", b.Dx(), b.Dy())
	}
}
