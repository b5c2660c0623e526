package swatch

import (
	"errors"
	"image"

	"github.com/kovidgoyal/go-parallel"

	"github.com/thislittleecstaticlife/jzazbz"
)

type scanConfig struct {
	stride      int
	chromaFloor float64
}

// Display white has a residual chroma of about 2e-4 through the intake
// matrices, so the default floor sits well above it.
var defaultScanConfig = scanConfig{
	stride:      1,
	chromaFloor: 0.008,
}

// ScanOption sets an optional parameter for DominantHue.
type ScanOption func(*scanConfig)

// Stride returns a ScanOption that samples every n-th pixel along both axes.
// Values below one are ignored.
func Stride(n int) ScanOption {
	return func(c *scanConfig) {
		if n >= 1 {
			c.stride = n
		}
	}
}

// ChromaFloor returns a ScanOption that sets the chroma below which a pixel
// counts as neutral and is left out of the average. Negative values are
// ignored.
func ChromaFloor(floor float64) ScanOption {
	return func(c *scanConfig) {
		if floor >= 0 {
			c.chromaFloor = floor
		}
	}
}

// DominantHue estimates the hue that dominates img, in degrees. Sampled
// pixels are taken through the sRGB intake to the appearance space and their
// chromatic vectors summed, so vivid pixels weigh more than washed out ones.
// Near-neutral pixels below the chroma floor and fully transparent pixels do
// not vote. It fails when nothing chromatic remains.
func DominantHue(img image.Image, opts ...ScanOption) (float64, error) {
	cfg := defaultScanConfig
	for _, option := range opts {
		option(&cfg)
	}
	p := toNRGBA(img)
	w, h := p.Rect.Dx(), p.Rect.Dy()
	rows := (h + cfg.stride - 1) / cfg.stride
	if w < 1 || rows < 1 {
		return 0, errors.New("cannot take a dominant hue from an empty image")
	}
	sumAz := make([]float64, rows)
	sumBz := make([]float64, rows)
	counts := make([]int, rows)
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			row := p.Pix[p.Stride*i*cfg.stride:]
			var az, bz float64
			var n int
			for x := 0; x < w; x += cfg.stride {
				s := row[4*x : 4*x+4 : 4*x+4]
				if s[3] == 0 {
					continue
				}
				c := jzazbz.FromSRGB8(s[0], s[1], s[2])
				if c.Chroma() > cfg.chromaFloor {
					az += c.Az
					bz += c.Bz
					n++
				}
			}
			sumAz[i], sumBz[i], counts[i] = az, bz, n
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, rows); err != nil {
		return 0, err
	}
	var az, bz float64
	var n int
	for i, c := range counts {
		az += sumAz[i]
		bz += sumBz[i]
		n += c
	}
	if n == 0 {
		return 0, errors.New("no pixels above the chroma floor, the image is effectively neutral")
	}
	return jzazbz.Color{Az: az, Bz: bz}.HueDegrees(), nil
}
