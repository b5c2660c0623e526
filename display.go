package jzazbz

import (
	"image/color"
)

// Cone response to linear Display P3, pre-composed offline from the
// LMS -> XYZ(D65) and XYZ -> P3 primary matrices.
var lmsToLinearP3 = Matrix3{
	{4.4820606379518333, -3.6184317541411817, 0.16694496856407345},
	{-1.9532025238860451, 3.5217700975984596, -0.54063532522070301},
	{-0.0027453573623004834, -0.45182653146288487, 1.4822547119502889},
}

// CSS Color 4 rational primary matrices. Display P3 and sRGB share the D65
// white point, so composing them needs no chromatic adaptation.
var (
	linearP3ToXYZ = Matrix3{
		{608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160},
		{35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400},
		{0, 32229.0 / 714400, 5220557.0 / 5000800},
	}
	xyzToLinearSRGB = Matrix3{
		{12831.0 / 3959, -329.0 / 214, -1974.0 / 3959},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{705.0 / 12673, -2585.0 / 12673, 705.0 / 667},
	}
	linearSRGBToXYZ = Matrix3{
		{506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218},
		{87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545},
		{7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270},
	}
	xyzToLinearP3 = Matrix3{
		{446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915},
		{-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905},
		{11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415},
	}
)

// Fused single-multiply matrices, computed once at startup.
var (
	linearP3ToLMS        Matrix3
	linearP3ToLinearSRGB Matrix3
	linearSRGBToLinearP3 Matrix3
	linearSRGBToLMS      Matrix3
)

var srgb = NewSRGBCurve()

func init() {
	var err error
	if linearP3ToLMS, err = lmsToLinearP3.Inverted(); err != nil {
		panic(err)
	}
	linearP3ToLinearSRGB = xyzToLinearSRGB.Multiply(&linearP3ToXYZ)
	linearSRGBToLinearP3 = xyzToLinearP3.Multiply(&linearSRGBToXYZ)
	linearSRGBToLMS = linearP3ToLMS.Multiply(&linearSRGBToLinearP3)
}

// LinearP3 converts the cone response to linear light Display P3 primaries.
// A single matrix multiply, no clamping.
func (lms LMS) LinearP3() LinearP3 {
	r, g, b := lmsToLinearP3.MulVec3(lms.L, lms.M, lms.S)
	return LinearP3{r, g, b}
}

// LinearP3 converts the appearance color to linear Display P3 primaries.
func (c Color) LinearP3() LinearP3 {
	return c.LMS().LinearP3()
}

// LMS converts linear Display P3 primaries back to a cone response.
func (p LinearP3) LMS() LMS {
	l, m, s := linearP3ToLMS.MulVec3(p.R, p.G, p.B)
	return LMS{l, m, s}
}

// XYZ returns the color as CIE XYZ tristimulus values relative to the D65
// white point. Display white maps to Y = 1 exactly.
func (p LinearP3) XYZ() (x, y, z float64) {
	return linearP3ToXYZ.MulVec3(p.R, p.G, p.B)
}

// InGamut reports whether all three channels are inside [0, 1] with a small
// tolerance for rounding noise.
func (p LinearP3) InGamut() bool {
	const eps = 1e-6
	return p.R >= -eps && p.G >= -eps && p.B >= -eps &&
		p.R <= 1+eps && p.G <= 1+eps && p.B <= 1+eps
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// SRGB returns the color as gamma encoded sRGB components clipped to [0, 1].
// Display P3 covers more than sRGB, so chromatic P3 colors clip here; this is
// a presentation helper, not part of the search domain.
func (p LinearP3) SRGB() (r, g, b float64) {
	lr, lg, lb := linearP3ToLinearSRGB.MulVec3(p.R, p.G, p.B)
	r = clamp01(srgb.Transform(lr))
	g = clamp01(srgb.Transform(lg))
	b = clamp01(srgb.Transform(lb))
	return
}

// EncodeP3 returns display referred Display P3 components, clipped to [0, 1].
// The P3 transfer function is the sRGB curve.
func (p LinearP3) EncodeP3() (r, g, b float64) {
	r = clamp01(srgb.Transform(p.R))
	g = clamp01(srgb.Transform(p.G))
	b = clamp01(srgb.Transform(p.B))
	return
}

// NRGBA returns the color as 8 bit sRGB with full alpha.
func (p LinearP3) NRGBA() color.NRGBA {
	r, g, b := p.SRGB()
	return color.NRGBA{R: uint8(r*255 + 0.5), G: uint8(g*255 + 0.5), B: uint8(b*255 + 0.5), A: 0xff}
}

// RGBA implements color.Color. Out of gamut colors are clipped.
func (c Color) RGBA() (r, g, b, a uint32) {
	rf, gf, bf := c.LinearP3().SRGB()
	r = uint32(rf*0xffff + 0.5)
	g = uint32(gf*0xffff + 0.5)
	b = uint32(bf*0xffff + 0.5)
	a = 0xffff
	return
}

var _ color.Color = Color{}

// FromSRGB8 converts an 8 bit sRGB color to the appearance space.
func FromSRGB8(r, g, b uint8) Color {
	lr := srgb.InverseTransform(float64(r) / 255)
	lg := srgb.InverseTransform(float64(g) / 255)
	lb := srgb.InverseTransform(float64(b) / 255)
	l, m, s := linearSRGBToLMS.MulVec3(lr, lg, lb)
	return FromLMS(LMS{l, m, s})
}

// FromLinearSRGB converts linear light sRGB primaries to the appearance
// space.
func FromLinearSRGB(r, g, b float64) Color {
	l, m, s := linearSRGBToLMS.MulVec3(r, g, b)
	return FromLMS(LMS{l, m, s})
}
