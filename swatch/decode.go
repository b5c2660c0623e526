// Package swatch extracts a dominant hue from photographs and turns it into
// small accent palettes of maximally chromatic colors.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	exif_tiff "github.com/rwcarlsen/goexif/tiff"

	"github.com/kovidgoyal/go-parallel"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type decodeConfig struct {
	autoOrientation bool
}

var defaultDecodeConfig = decodeConfig{
	autoOrientation: true,
}

// DecodeOption sets an optional parameter for the Decode and Open functions.
type DecodeOption func(*decodeConfig)

// AutoOrientation returns a DecodeOption that sets the auto-orientation mode.
// If auto-orientation is enabled, the image will be transformed after decoding
// according to the EXIF orientation tag (if present). By default it's enabled.
func AutoOrientation(enabled bool) DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrientation = enabled
	}
}

// Open decodes the image file at path into NRGBA pixels. PNG, JPEG, GIF,
// BMP, TIFF and WebP inputs are recognized.
func Open(path string, opts ...DecodeOption) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return img, nil
}

// Decode reads an image from r into NRGBA pixels, applying its EXIF
// orientation unless disabled.
func Decode(r io.Reader, opts ...DecodeOption) (*image.NRGBA, error) {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ans := toNRGBA(img)
	if cfg.autoOrientation {
		return remapOrientation(ans, orientationOf(data))
	}
	return ans, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.NRGBA); ok {
		return p
	}
	b := img.Bounds()
	ans := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(ans, ans.Bounds(), img, b.Min, draw.Src)
	return ans
}

// orientationOf reads the EXIF orientation tag from an encoded image.
// Formats that carry no EXIF and malformed metadata count as unspecified.
func orientationOf(data []byte) orientation {
	exif_data, err := exif.Decode(bytes.NewReader(data))
	if err != nil || exif_data == nil {
		return orientationUnspecified
	}
	orient, err := exif_data.Get(exif.Orientation)
	if err != nil || orient == nil || orient.Format() != exif_tiff.IntVal {
		return orientationUnspecified
	}
	if x, err := orient.Int(0); err == nil && x > 0 && x < 9 {
		return orientation(x)
	}
	return orientationUnspecified
}

// orientation is an EXIF flag that specifies the transformation
// that should be applied to image to display it correctly.
type orientation int

const (
	orientationUnspecified = 0
	orientationNormal      = 1
	orientationFlipH       = 2
	orientationRotate180   = 3
	orientationFlipV       = 4
	orientationTranspose   = 5
	orientationRotate270   = 6
	orientationTransverse  = 7
	orientationRotate90    = 8
)

// remapOrientation rewrites pixels so the stored image displays upright.
// Tags follow the EXIF convention: 2-4 mirror or turn in place, 5-8 swap the
// axes.
func remapOrientation(img *image.NRGBA, o orientation) (*image.NRGBA, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	switch o {
	case orientationFlipH:
		return remap(img, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
	case orientationRotate180:
		return remap(img, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
	case orientationFlipV:
		return remap(img, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
	case orientationTranspose:
		return remap(img, h, w, func(x, y int) (int, int) { return y, x })
	case orientationRotate270:
		return remap(img, h, w, func(x, y int) (int, int) { return y, h - 1 - x })
	case orientationTransverse:
		return remap(img, h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x })
	case orientationRotate90:
		return remap(img, h, w, func(x, y int) (int, int) { return w - 1 - y, x })
	}
	return img, nil
}

// remap copies src into a dw x dh image, reading the pixel for (x, y) from
// the source coordinates at returns. at takes and yields coordinates
// relative to the image origin.
func remap(src *image.NRGBA, dw, dh int, at func(x, y int) (int, int)) (*image.NRGBA, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	minx, miny := src.Rect.Min.X, src.Rect.Min.Y
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := dst.Pix[dst.Stride*y:]
			for x := 0; x < dw; x++ {
				sx, sy := at(x, y)
				s := src.Pix[src.PixOffset(minx+sx, miny+sy):]
				d := row[4*x : 4*x+4 : 4*x+4]
				copy(d, s[:4])
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, dh); err != nil {
		return nil, err
	}
	return dst, nil
}
