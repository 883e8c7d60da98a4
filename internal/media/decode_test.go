package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestThumbnailCoversBox(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 15 && x < 25 {
				c = color.RGBA{G: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}

	thumb := Thumbnail(src, 4, 4)
	if thumb.Bounds().Dx() != 4 || thumb.Bounds().Dy() != 4 {
		t.Fatalf("thumbnail bounds = %v", thumb.Bounds())
	}
	// The center crop of a wide image keeps only the green band.
	c := thumb.RGBAAt(2, 2)
	if c.G < 200 || c.R > 50 {
		t.Fatalf("center pixel = %v, want green", c)
	}
}

func TestThumbnailClampsSize(t *testing.T) {
	thumb := Thumbnail(image.NewRGBA(image.Rect(0, 0, 8, 8)), 0, -3)
	if thumb.Bounds().Dx() != 1 || thumb.Bounds().Dy() != 1 {
		t.Fatalf("thumbnail bounds = %v", thumb.Bounds())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	thumb, err := Load(path, 6, 3)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if thumb.Bounds().Dx() != 6 || thumb.Bounds().Dy() != 3 {
		t.Fatalf("thumbnail bounds = %v", thumb.Bounds())
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad, 4, 4); err == nil {
		t.Fatal("expected a decode error")
	}
}
