package chart

import (
	"fmt"
	"image"
)

// Layout carves a canvas into the four regions of the hue chart
// composition: the lightness-chroma slice, the tone gradient strip, the
// max chroma patch and the hue dial.
type Layout struct {
	Bounds   image.Rectangle
	JC       image.Rectangle
	Gradient image.Rectangle
	MaxPatch image.Rectangle
	Dial     image.Rectangle
}

// MinWidth and MinHeight are the smallest canvas NewLayout accepts; below
// this the right column collapses.
const (
	MinWidth  = 96
	MinHeight = 72
)

// NewLayout computes the composition regions for a canvas of the given
// size. The JC slice takes the left 62% of the inner area, the gradient
// strip the next 10%, and the right column holds the patch above the dial.
func NewLayout(width, height int) (Layout, error) {
	if width < MinWidth || height < MinHeight {
		return Layout{}, fmt.Errorf("chart canvas %dx%d is below the minimum %dx%d", width, height, MinWidth, MinHeight)
	}
	bounds := image.Rect(0, 0, width, height)
	margin := min(width, height) / 32
	if margin < 4 {
		margin = 4
	}
	inner := bounds.Inset(margin)

	jcWidth := inner.Dx() * 62 / 100
	gradWidth := inner.Dx() * 10 / 100
	jc := image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+jcWidth, inner.Max.Y)
	grad := image.Rect(jc.Max.X+margin, inner.Min.Y, jc.Max.X+margin+gradWidth, inner.Max.Y)

	right := image.Rect(grad.Max.X+margin, inner.Min.Y, inner.Max.X, inner.Max.Y)
	patch := image.Rect(right.Min.X, right.Min.Y, right.Max.X, right.Min.Y+right.Dy()*28/100)

	rest := image.Rect(right.Min.X, patch.Max.Y+margin, right.Max.X, right.Max.Y)
	side := min(rest.Dx(), rest.Dy())
	cx := rest.Min.X + rest.Dx()/2
	cy := rest.Min.Y + rest.Dy()/2
	dial := image.Rect(cx-side/2, cy-side/2, cx-side/2+side, cy-side/2+side)

	return Layout{Bounds: bounds, JC: jc, Gradient: grad, MaxPatch: patch, Dial: dial}, nil
}

// DialFrame returns the frame of the hue dial within a canvas of the given
// size, for callers that hit test or overlay the dial.
func DialFrame(width, height int) (image.Rectangle, error) {
	lay, err := NewLayout(width, height)
	if err != nil {
		return image.Rectangle{}, err
	}
	return lay.Dial, nil
}
