package chart

import (
	"fmt"
	"image"
	"math"

	"github.com/kovidgoyal/go-parallel"
	"github.com/thislittleecstaticlife/jzazbz"
)

var _ = fmt.Print

type renderConfig struct {
	width, height int
	hue           float64
	search        []jzazbz.SearchOption
	p3            bool
}

var defaultRenderConfig = renderConfig{width: 800, height: 600}

// RenderOption sets an optional parameter for Render.
type RenderOption func(*renderConfig)

// Size sets the canvas size in pixels. The default is 800x600.
func Size(width, height int) RenderOption {
	return func(c *renderConfig) {
		c.width, c.height = width, height
	}
}

// Hue sets the hue of the composition in degrees. The default is 0.
func Hue(degrees float64) RenderOption {
	return func(c *renderConfig) {
		c.hue = degrees
	}
}

// WithSearch passes options through to the gamut boundary searches the
// renderer runs.
func WithSearch(opts ...jzazbz.SearchOption) RenderOption {
	return func(c *renderConfig) {
		c.search = append(c.search, opts...)
	}
}

// P3Pixels emits pixels through the Display P3 transfer function instead of
// converting to sRGB, for output that will be tagged as Display P3.
func P3Pixels() RenderOption {
	return func(c *renderConfig) {
		c.p3 = true
	}
}

// The appearance lightness of display white bounds the vertical axis of the
// JC slice and the top of the tone gradient.
var white = jzazbz.FromLMS(jzazbz.LinearP3{R: 1, G: 1, B: 1}.LMS())

var (
	background   = RGBColor{20, 20, 22}
	checkerDark  = RGBColor{38, 38, 38}
	checkerLight = RGBColor{46, 46, 46}
	markerColor  = RGBColor{255, 255, 255}
)

func (cfg *renderConfig) pixel(p jzazbz.LinearP3) RGBColor {
	if cfg.p3 {
		r, g, b := p.EncodeP3()
		return RGBColor{uint8(r*255 + 0.5), uint8(g*255 + 0.5), uint8(b*255 + 0.5)}
	}
	n := p.NRGBA()
	return RGBColor{n.R, n.G, n.B}
}

// Render draws the hue chart composition: the lightness-chroma slice of the
// configured hue, the tone gradient through its most chromatic color, the
// max chroma patch and the hue dial.
func Render(opts ...RenderOption) (*RGB, error) {
	cfg := defaultRenderConfig
	for _, o := range opts {
		o(&cfg)
	}
	lay, err := NewLayout(cfg.width, cfg.height)
	if err != nil {
		return nil, err
	}
	img := NewRGB(lay.Bounds)
	img.Fill(lay.Bounds, background)
	cusp := jzazbz.MaxChromaColor(cfg.hue, cfg.search...)
	if err := renderJC(img, lay.JC, &cfg, cusp); err != nil {
		return nil, err
	}
	if err := renderGradient(img, lay.Gradient, &cfg, cusp); err != nil {
		return nil, err
	}
	img.Fill(lay.MaxPatch, cfg.pixel(cusp.LinearP3()))
	if err := renderDial(img, lay.Dial, &cfg); err != nil {
		return nil, err
	}
	return img, nil
}

func checkerAt(x, y int) RGBColor {
	if (x/8+y/8)%2 == 0 {
		return checkerDark
	}
	return checkerLight
}

// renderJC draws the lightness-chroma slice at the configured hue. x maps to
// chroma with 15% headroom past the cusp so the boundary bulge is visible, y
// maps to lightness from display white at the top down to black. Out of
// gamut pixels show a checkerboard.
func renderJC(img *RGB, r image.Rectangle, cfg *renderConfig, cusp jzazbz.Color) error {
	if r.Empty() {
		return nil
	}
	hueRad := cfg.hue * math.Pi / 180
	maxC := cusp.Chroma() * 1.15
	w, h := r.Dx(), r.Dy()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			jz := white.Jz * (1 - (float64(y)+0.5)/float64(h))
			i := img.PixOffset(r.Min.X, r.Min.Y+y)
			row := img.Pix[i : i+3*w : i+3*w]
			for x := 0; x < w; x++ {
				chroma := maxC * (float64(x) + 0.5) / float64(w)
				p := jzazbz.FromJCh(jz, chroma, hueRad).LinearP3()
				px := checkerAt(x, y)
				if p.InGamut() {
					px = cfg.pixel(p)
				}
				s := row[3*x : 3*x+3 : 3*x+3]
				s[0], s[1], s[2] = px.R, px.G, px.B
			}
		}
	}
	return parallel.Run_in_parallel_over_range(0, f, 0, h)
}

// renderGradient draws the tone strip: black at the bottom through the most
// chromatic color of the hue up to display white, chroma following a tent
// over lightness peaking at the cusp.
func renderGradient(img *RGB, r image.Rectangle, cfg *renderConfig, cusp jzazbz.Color) error {
	if r.Empty() {
		return nil
	}
	hueRad := cfg.hue * math.Pi / 180
	cuspC := cusp.Chroma()
	h := r.Dy()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			jz := white.Jz * (1 - (float64(y)+0.5)/float64(h))
			var chroma float64
			if jz <= cusp.Jz {
				chroma = cuspC * jz / cusp.Jz
			} else {
				chroma = cuspC * (white.Jz - jz) / (white.Jz - cusp.Jz)
			}
			p := jzazbz.FromJCh(jz, chroma, hueRad).LinearP3()
			// rounding can push a tent point just past the boundary
			for k := 0; k < 8 && !p.InGamut(); k++ {
				chroma *= 0.98
				p = jzazbz.FromJCh(jz, chroma, hueRad).LinearP3()
			}
			px := cfg.pixel(p)
			i := img.PixOffset(r.Min.X, r.Min.Y+y)
			row := img.Pix[i : i+3*r.Dx()]
			for x := 0; x < len(row); x += 3 {
				row[x], row[x+1], row[x+2] = px.R, px.G, px.B
			}
		}
	}
	return parallel.Run_in_parallel_over_range(0, f, 0, h)
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

const dialSegments = 720

// renderDial draws an annulus of boundary colors by angle with a marker at
// the configured hue. Colors come from a per-segment table so the locator
// runs dialSegments times, not once per pixel.
func renderDial(img *RGB, r image.Rectangle, cfg *renderConfig) error {
	if r.Empty() {
		return nil
	}
	table := make([]RGBColor, dialSegments)
	tf := func(start, limit int) {
		for i := start; i < limit; i++ {
			hue := -180 + 360*float64(i)/dialSegments
			table[i] = cfg.pixel(jzazbz.MaxChromaColor(hue, cfg.search...).LinearP3())
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, tf, 0, dialSegments); err != nil {
		return err
	}

	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	outer := float64(min(r.Dx(), r.Dy())) / 2
	inner := outer * 0.62
	marker := math.Mod(cfg.hue, 360)
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			py := float64(r.Min.Y+y) + 0.5
			i := img.PixOffset(r.Min.X, r.Min.Y+y)
			row := img.Pix[i : i+3*r.Dx() : i+3*r.Dx()]
			for x := 0; x < r.Dx(); x++ {
				px := float64(r.Min.X+x) + 0.5
				dx, dy := px-cx, cy-py // flip y so angles run counterclockwise
				d := math.Hypot(dx, dy)
				if d < inner || d > outer {
					continue
				}
				ang := math.Atan2(dy, dx) * 180 / math.Pi
				c := markerColor
				if hueDistance(ang, marker) >= 2.5 {
					idx := int((ang + 180) * dialSegments / 360)
					if idx >= dialSegments {
						idx = dialSegments - 1
					}
					c = table[idx]
				}
				s := row[3*x : 3*x+3 : 3*x+3]
				s[0], s[1], s[2] = c.R, c.G, c.B
			}
		}
	}
	return parallel.Run_in_parallel_over_range(0, f, 0, r.Dy())
}
