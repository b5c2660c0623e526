package chart

import (
	"fmt"
	"image"
	"image/color"

	"github.com/thislittleecstaticlife/jzazbz"
)

var _ = fmt.Print

// RGBColor is an opaque 8 bit sRGB color, the pixel type of the chart
// render target.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGBColor) String() string {
	return fmt.Sprintf("RGBColor{%02X %02X %02X}", c.R, c.G, c.B)
}

func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 65535 // (255 << 8 | 255)
	return
}

// RGB is an in-memory image whose At method returns RGBColor values. Three
// bytes per pixel, no alpha; a chart composition is always fully opaque.
type RGB struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGBColor); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return RGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	case 0:
		return RGBColor{0, 0, 0}
	default:
		// Color.RGBA returns alpha-premultiplied values, so r <= a && g <= a && b <= a
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return RGBColor{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

var RGBModel color.Model = color.ModelFunc(rgbModel)

func (p *RGB) ColorModel() color.Model { return RGBModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

func (p *RGB) RGBAt(x, y int) RGBColor {
	if !(image.Point{x, y}.In(p.Rect)) {
		return RGBColor{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small cap improves performance, see https://golang.org/issue/27857
	return RGBColor{s[0], s[1], s[2]}
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := RGBModel.Convert(c).(RGBColor)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c1.R
	s[1] = c1.G
	s[2] = c1.B
}

func (p *RGB) SetRGB(x, y int, c RGBColor) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// SetLinearP3 writes a linear Display P3 color as gamma encoded sRGB bytes,
// the presentation default for chart output.
func (p *RGB) SetLinearP3(x, y int, c jzazbz.LinearP3) {
	n := c.NRGBA()
	p.SetRGB(x, y, RGBColor{n.R, n.G, n.B})
}

// Fill sets every pixel of r, clipped to the image bounds, to c.
func (p *RGB) Fill(r image.Rectangle, c RGBColor) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		row := p.Pix[i : i+3*r.Dx()]
		for x := 0; x < len(row); x += 3 {
			row[x] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
		}
	}
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *RGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be inside
	// either r1 or r2 if the intersection is empty. Without explicitly checking for
	// this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &RGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque scans the entire image and reports whether it is fully opaque.
func (p *RGB) Opaque() bool { return true }

func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}
