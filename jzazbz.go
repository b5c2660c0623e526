package jzazbz

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Color is a color in the Jzazbz appearance space. Jz is perceptual
// lightness, about [0, 0.17] for colors a display can show. Az and Bz are the
// signed chromatic coordinates; hue is derived from them, never stored.
type Color struct {
	Jz, Az, Bz float64
}

// LMS is a simulated cone response triple, the intermediate between the
// appearance space and linear display primaries. Channels are non-negative
// apart from small negative noise near black.
type LMS struct {
	L, M, S float64
}

// LinearP3 holds linear light Display P3 primaries. Values are not clamped;
// a channel outside [0, 1] means the color is outside the display gamut.
type LinearP3 struct {
	R, G, B float64
}

// HueRadians returns the hue angle atan2(Bz, Az) in [-pi, pi].
func (c Color) HueRadians() float64 {
	return math.Atan2(c.Bz, c.Az)
}

// HueDegrees returns the hue angle in [-180, 180].
func (c Color) HueDegrees() float64 {
	return c.HueRadians() * 180 / math.Pi
}

// Chroma returns the magnitude of the chromatic vector.
func (c Color) Chroma() float64 {
	return math.Hypot(c.Az, c.Bz)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{Jz: %.6f Az: %+.6f Bz: %+.6f}", c.Jz, c.Az, c.Bz)
}

// FromJCh assembles an appearance color from lightness, chroma and a hue
// angle in radians.
func FromJCh(jz, chroma, hueRadians float64) Color {
	return Color{jz, chroma * math.Cos(hueRadians), chroma * math.Sin(hueRadians)}
}

// The LMS' <-> Izazbz matrices of the Jzazbz model and the lightness warp
// constants. The chromatic rows sum to zero, keeping neutral cone responses
// on the achromatic axis, and d0 cancels the warp at black so a zero
// response maps to black up to rounding.
var (
	lmsPrimeToIzazbz = Matrix3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}
	izazbzToLMSPrime = Matrix3{
		{1, 0.138605043271539, 0.0580473161561189},
		{1, -0.138605043271539, -0.0580473161561189},
		{1, -0.0960192420263189, -0.811891896056039},
	}
)

const (
	dWarp  = -0.56
	d0Warp = 1.6295499532821566e-11
)

var pq = NewPQCurve()

// FromLMS converts a cone response to the appearance space. Channels below
// zero are clamped by the quantizer curve, so every finite input yields a
// finite Color.
func FromLMS(lms LMS) Color {
	lp := pq.Transform(lms.L)
	mp := pq.Transform(lms.M)
	sp := pq.Transform(lms.S)
	iz, az, bz := lmsPrimeToIzazbz.MulVec3(lp, mp, sp)
	jz := (1+dWarp)*iz/(1+dWarp*iz) - d0Warp
	return Color{jz, az, bz}
}

// LMS converts the appearance color back to a cone response. It is the exact
// inverse of FromLMS for any color reachable from the display gamut; out of
// range intermediates, which the boundary search produces routinely, are
// clamped into the quantizer's domain rather than rejected.
func (c Color) LMS() LMS {
	jzp := c.Jz + d0Warp
	iz := jzp / (1 + dWarp - dWarp*jzp)
	lp, mp, sp := izazbzToLMSPrime.MulVec3(iz, c.Az, c.Bz)
	return LMS{
		pq.InverseTransform(lp),
		pq.InverseTransform(mp),
		pq.InverseTransform(sp),
	}
}
