package chart

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thislittleecstaticlife/jzazbz"
)

func TestRenderRejectsTinyCanvas(t *testing.T) {
	_, err := Render(Size(10, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the minimum")
}

func TestRenderMaxPatch(t *testing.T) {
	const hue = 120.0
	img, err := Render(Size(128, 96), Hue(hue))
	require.NoError(t, err)
	lay, err := NewLayout(128, 96)
	require.NoError(t, err)

	n := jzazbz.MaxChromaColor(hue).LinearP3().NRGBA()
	want := RGBColor{n.R, n.G, n.B}
	for y := lay.MaxPatch.Min.Y; y < lay.MaxPatch.Max.Y; y++ {
		for x := lay.MaxPatch.Min.X; x < lay.MaxPatch.Max.X; x++ {
			if got := img.RGBAt(x, y); got != want {
				t.Fatalf("patch pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderJCSlice(t *testing.T) {
	img, err := Render(Size(128, 96), Hue(120))
	require.NoError(t, err)
	lay, err := NewLayout(128, 96)
	require.NoError(t, err)

	inGamut, checker := 0, 0
	for y := lay.JC.Min.Y; y < lay.JC.Max.Y; y++ {
		for x := lay.JC.Min.X; x < lay.JC.Max.X; x++ {
			switch got := img.RGBAt(x, y); got {
			case checkerDark, checkerLight:
				checker++
			case background:
			default:
				inGamut++
			}
		}
	}
	// the 15% chroma headroom guarantees out of gamut area on the right,
	// and the low chroma left side is always displayable
	assert.Positive(t, inGamut, "no in gamut pixels in the JC slice")
	assert.Positive(t, checker, "no out of gamut checker pixels in the JC slice")
}

func TestRenderGradientStrip(t *testing.T) {
	img, err := Render(Size(128, 96), Hue(30))
	require.NoError(t, err)
	lay, err := NewLayout(128, 96)
	require.NoError(t, err)

	// rows are uniform; near black at the bottom, near white at the top
	x0 := lay.Gradient.Min.X
	for y := lay.Gradient.Min.Y; y < lay.Gradient.Max.Y; y++ {
		first := img.RGBAt(x0, y)
		for x := x0 + 1; x < lay.Gradient.Max.X; x++ {
			if got := img.RGBAt(x, y); got != first {
				t.Fatalf("gradient row %d is not uniform: %v vs %v", y, got, first)
			}
		}
	}
	top := img.RGBAt(x0, lay.Gradient.Min.Y)
	bottom := img.RGBAt(x0, lay.Gradient.Max.Y-1)
	assert.Greater(t, int(top.R)+int(top.G)+int(top.B), 3*200, "gradient top %v is not near white", top)
	assert.Less(t, int(bottom.R)+int(bottom.G)+int(bottom.B), 3*40, "gradient bottom %v is not near black", bottom)
}

func TestRenderDialMarkerAndRing(t *testing.T) {
	const hue = 120.0
	img, err := Render(Size(256, 192), Hue(hue))
	require.NoError(t, err)
	lay, err := NewLayout(256, 192)
	require.NoError(t, err)

	cx := float64(lay.Dial.Min.X) + float64(lay.Dial.Dx())/2
	cy := float64(lay.Dial.Min.Y) + float64(lay.Dial.Dy())/2
	outer := float64(min(lay.Dial.Dx(), lay.Dial.Dy())) / 2
	mid := outer * (1 + 0.62) / 2

	at := func(angleDegrees float64) RGBColor {
		a := angleDegrees * math.Pi / 180
		x := int(cx + mid*math.Cos(a))
		y := int(cy - mid*math.Sin(a))
		return img.RGBAt(x, y)
	}

	assert.Equal(t, markerColor, at(hue), "no marker at the configured hue")
	// a distant angle shows that angle's boundary color, not background
	off := at(hue + 180)
	assert.NotEqual(t, markerColor, off)
	assert.NotEqual(t, background, off)
	// corners of the dial square lie outside the annulus
	assert.Equal(t, background, img.RGBAt(lay.Dial.Min.X, lay.Dial.Min.Y))
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(Size(128, 96), Hue(200.5))
	require.NoError(t, err)
	b, err := Render(Size(128, 96), Hue(200.5))
	require.NoError(t, err)
	if diff := cmp.Diff(a.Pix, b.Pix); diff != "" {
		t.Fatalf("two identical renders differ: %s", diff)
	}
}

func TestRenderP3PixelsDiffer(t *testing.T) {
	a, err := Render(Size(128, 96), Hue(120))
	require.NoError(t, err)
	b, err := Render(Size(128, 96), Hue(120), P3Pixels())
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a.Pix, b.Pix), "P3 encoded pixels match sRGB pixels")
}

func TestRenderWithSearchOptions(t *testing.T) {
	// the wide search narrows at least as far, so the patches agree closely
	a, err := Render(Size(128, 96), Hue(42))
	require.NoError(t, err)
	b, err := Render(Size(128, 96), Hue(42), WithSearch(jzazbz.SearchLanes(32), jzazbz.SearchIterations(4)))
	require.NoError(t, err)
	lay, err := NewLayout(128, 96)
	require.NoError(t, err)
	pa := a.RGBAt(lay.MaxPatch.Min.X, lay.MaxPatch.Min.Y)
	pb := b.RGBAt(lay.MaxPatch.Min.X, lay.MaxPatch.Min.Y)
	assert.InDelta(t, int(pa.R), int(pb.R), 1)
	assert.InDelta(t, int(pa.G), int(pb.G), 1)
	assert.InDelta(t, int(pa.B), int(pb.B), 1)
}

func TestHueDistance(t *testing.T) {
	testCases := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{-170, 170, 20},
		{180, -180, 0},
		{90, 270, 180},
		{721, 1, 0},
	}
	for _, tc := range testCases {
		if got := hueDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("hueDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	for b.Loop() {
		if _, err := Render(Size(256, 192), Hue(137.5)); err != nil {
			b.Fatal(err)
		}
	}
}
