package swatch

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thislittleecstaticlife/jzazbz"
)

const (
	redHue   = 42.4775965097
	greenHue = 132.7184522192
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDominantHueUniform(t *testing.T) {
	hue, err := DominantHue(uniform(16, 16, color.NRGBA{R: 255, A: 255}))
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)
}

func TestDominantHueIgnoresNeutrals(t *testing.T) {
	img := uniform(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetNRGBA(1, 2, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(5, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(7, 7, color.NRGBA{G: 255, A: 255})
	hue, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, greenHue, hue, 1e-6)
}

func TestDominantHueWeighsByChroma(t *testing.T) {
	img := uniform(2, 2, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 160, G: 200, B: 255, A: 255})
	hue, err := DominantHue(img)
	require.NoError(t, err)
	// Three vivid reds against one pale blue pull the mean only a few
	// degrees off the red axis.
	assert.InDelta(t, 38.53690487547162, hue, 1e-9)
}

func TestDominantHueCrossesTheWrap(t *testing.T) {
	img := uniform(2, 2, color.NRGBA{G: 200, B: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{G: 255, B: 190, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{G: 255, B: 190, A: 255})
	hue, err := DominantHue(img)
	require.NoError(t, err)
	// The two hues straddle 180°, so the mean sits near the wrap, far
	// from the naive arithmetic average of the angles.
	assert.InDelta(t, -159.22330461360357, hue, 1e-9)
}

func TestDominantHueTransparentPixelsDoNotVote(t *testing.T) {
	img := uniform(2, 2, color.NRGBA{G: 255})
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	hue, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)

	_, err = DominantHue(uniform(4, 4, color.NRGBA{G: 255}))
	assert.Error(t, err)
}

func TestDominantHueNeutralImage(t *testing.T) {
	_, err := DominantHue(uniform(4, 4, color.NRGBA{R: 128, G: 128, B: 128, A: 255}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chroma floor")

	_, err = DominantHue(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty image")
}

func TestDominantHueStride(t *testing.T) {
	img := uniform(4, 4, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	for y := 1; y < 4; y += 2 {
		for x := 1; x < 4; x += 2 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	hue, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)

	// A stride of two lands on even coordinates only, which are all gray.
	_, err = DominantHue(img, Stride(2))
	assert.Error(t, err)

	// Out of range values keep the default.
	hue, err = DominantHue(img, Stride(0), Stride(-3), ChromaFloor(-0.5))
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)
}

func TestDominantHueChromaFloor(t *testing.T) {
	img := uniform(4, 4, color.NRGBA{R: 255, A: 255})
	// sRGB red has a chroma of about 0.135.
	_, err := DominantHue(img, ChromaFloor(0.2))
	assert.Error(t, err)

	hue, err := DominantHue(img, ChromaFloor(0.1))
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)
}

func TestDominantHueConvertsOtherFormats(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	hue, err := DominantHue(img)
	require.NoError(t, err)
	assert.InDelta(t, redHue, hue, 1e-6)
}

// TestDominantHueMatchesSerialReference checks the parallel scan against a
// straightforward single pass over the same pixels.
func TestDominantHueMatchesSerialReference(t *testing.T) {
	const w, h, stride, floor = 64, 48, 3, 0.02
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	state := uint32(1)
	for i := 0; i < w*h; i++ {
		state = state*1664525 + 1013904223
		a := uint8(255)
		if i%17 == 0 {
			a = 0
		}
		img.SetNRGBA(i%w, i/w, color.NRGBA{
			R: uint8(state >> 24), G: uint8(state >> 16), B: uint8(state >> 8), A: a,
		})
	}

	var az, bz float64
	var n int
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			p := img.NRGBAAt(x, y)
			if p.A == 0 {
				continue
			}
			c := jzazbz.FromSRGB8(p.R, p.G, p.B)
			if c.Chroma() > floor {
				az += c.Az
				bz += c.Bz
				n++
			}
		}
	}
	require.Positive(t, n)
	expected := jzazbz.Color{Az: az, Bz: bz}.HueDegrees()

	hue, err := DominantHue(img, Stride(stride), ChromaFloor(floor))
	require.NoError(t, err)
	assert.InDelta(t, expected, hue, 1e-6)
}

func BenchmarkDominantHue(b *testing.B) {
	img := uniform(512, 512, color.NRGBA{R: 30, G: 180, B: 90, A: 255})
	for b.Loop() {
		if _, err := DominantHue(img); err != nil {
			b.Fatal(err)
		}
	}
}
