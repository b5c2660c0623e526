package chart

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"time"

	"github.com/kettek/apng"
)

// Frame is one step of an animated hue sweep. Frames are full canvas
// snapshots, each replacing the previous one.
type Frame struct {
	Number uint
	Hue    float64
	Image  image.Image
	Delay  time.Duration
}

// Sweep is a rendered animation advancing the composition hue uniformly
// through a full turn.
type Sweep struct {
	Frames    []*Frame
	LoopCount uint // 0 means loop forever, 1 means loop once, ...
}

// NewSweep renders frames charts, advancing the hue by 360/frames degrees
// per step from the configured starting hue, each shown for delay.
func NewSweep(frames int, delay time.Duration, opts ...RenderOption) (*Sweep, error) {
	if frames < 1 {
		return nil, fmt.Errorf("a sweep needs at least one frame, got %d", frames)
	}
	cfg := defaultRenderConfig
	for _, o := range opts {
		o(&cfg)
	}
	ans := &Sweep{}
	for i := 0; i < frames; i++ {
		hue := cfg.hue + 360*float64(i)/float64(frames)
		frameOpts := append(append([]RenderOption{}, opts...), Hue(hue))
		img, err := Render(frameOpts...)
		if err != nil {
			return nil, err
		}
		ans.Frames = append(ans.Frames, &Frame{
			Number: uint(len(ans.Frames) + 1), Hue: hue, Image: img, Delay: delay,
		})
	}
	return ans, nil
}

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}

	val := d.Seconds()

	// Use continued fractions to find the best rational approximation.
	// We look for the convergent that is closest to the original value
	// while keeping the numerator and denominator within uint16 bounds.

	bestNum, bestDen := uint16(0), uint16(1)
	bestError := math.Abs(val)

	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0

	f := val

	for i := 2; i < 100; i++ { // Limit iterations to prevent infinite loops
		a := int64(f)

		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]

		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			// This convergent is out of bounds, so the previous one was the best we could do.
			break
		}

		numConv := uint16(h[2])
		denConv := uint16(k[2])

		currentVal := float64(numConv) / float64(denConv)
		currentError := math.Abs(val - currentVal)

		if currentError < bestError {
			bestError = currentError
			bestNum = numConv
			bestDen = denConv
		}

		if f-float64(a) == 0.0 {
			break
		}

		f = 1.0 / (f - float64(a))

		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}

	return bestNum, bestDen
}

func (s *Sweep) as_apng() (ans apng.APNG) {
	ans.LoopCount = s.LoopCount
	for _, f := range s.Frames {
		d := apng.Frame{
			Image: f.Image, DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE,
		}
		d.DelayNumerator, d.DelayDenominator = as_fraction(f.Delay)
		ans.Frames = append(ans.Frames, d)
	}
	return
}

// EncodeAsAPNG writes the sweep as an animated PNG. A single frame sweep
// degrades to a plain PNG.
func (s *Sweep) EncodeAsAPNG(w io.Writer) error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("sweep has no frames")
	}
	if len(s.Frames) < 2 {
		return png.Encode(w, s.Frames[0].Image)
	}
	return apng.Encode(w, s.as_apng())
}

// EncodeAsGIF writes the sweep as an animated GIF, dithering each frame to
// the Plan 9 palette.
func (s *Sweep) EncodeAsGIF(w io.Writer) error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("sweep has no frames")
	}
	g := &gif.GIF{}
	switch {
	case s.LoopCount == 0:
		g.LoopCount = 0
	case s.LoopCount == 1:
		g.LoopCount = -1
	default:
		g.LoopCount = int(s.LoopCount) - 1
	}
	for _, f := range s.Frames {
		b := f.Image.Bounds()
		pd := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(pd, b, f.Image, b.Min)
		g.Image = append(g.Image, pd)
		g.Delay = append(g.Delay, int(f.Delay/(10*time.Millisecond)))
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	return gif.EncodeAll(w, g)
}

// WriteFile encodes the sweep into path: GIF for a .gif extension, animated
// PNG for .png or .apng.
func (s *Sweep) WriteFile(path string) (err error) {
	f := FormatForPath(path)
	switch f {
	case GIF, PNG, APNG:
	default:
		return fmt.Errorf("cannot determine an animation format for %q", path)
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
	if f == GIF {
		err = s.EncodeAsGIF(out)
	} else {
		err = s.EncodeAsAPNG(out)
	}
	return
}
