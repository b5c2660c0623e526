package chart

import (
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Encode writes a single chart image in the given still format. Animated
// formats need a frame sequence, see Sweep.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case GIF:
		return gif.Encode(w, img, nil)
	case APNG:
		return fmt.Errorf("APNG output needs a frame sequence, render a Sweep instead")
	default:
		return fmt.Errorf("unsupported chart output format: %d", int(f))
	}
}

// WriteFile encodes img into path, picking the format from the extension.
func WriteFile(path string, img image.Image) (err error) {
	f := FormatForPath(path)
	if f == UNKNOWN {
		return fmt.Errorf("cannot determine an output format for %q", path)
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = Encode(out, img, f); err != nil {
		err = fmt.Errorf("encoding %q as %s: %w", path, f, err)
	}
	return
}
