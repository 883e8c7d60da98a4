package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Decode reads and decodes an image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Thumbnail scales src to cover a w×h box, cropping the overflow around
// the center.
func Thumbnail(src image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	if b.Empty() {
		return dst
	}

	sw, sh := b.Dx(), b.Dy()
	// Crop the source to the destination aspect ratio.
	if sw*h > sh*w {
		cw := sh * w / h
		b.Min.X += (sw - cw) / 2
		b.Max.X = b.Min.X + cw
	} else {
		ch := sw * h / w
		b.Min.Y += (sh - ch) / 2
		b.Max.Y = b.Min.Y + ch
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Load decodes path and returns its w×h thumbnail.
func Load(path string, w, h int) (*image.RGBA, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return Thumbnail(img, w, h), nil
}
