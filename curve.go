package jzazbz

import (
	"fmt"
	"math"
)

// Curve1D is an invertible per-channel transfer curve. Transform maps a
// linear light value to its encoded signal value and InverseTransform is the
// exact algebraic inverse, within the curve's clamp domain.
type Curve1D interface {
	Transform(x float64) float64
	InverseTransform(x float64) float64
	Prepare() error
	String() string
}

// PQCurve is the SMPTE ST 2084 style perceptual quantizer used by the Jzazbz
// model: normalize by scale, raise to n, fold through a rational expression
// and raise to p. The inverse clamps its input into [min_encoded,
// max_encoded]; below the floor the expression loses its sign and above the
// ceiling the denominator crosses zero.
type PQCurve struct {
	n, p, c1, c2, c3         float64
	scale                    float64
	min_encoded, max_encoded float64
	inv_n, inv_p             float64
}

// SRGBCurve is the IEC 61966-2-1 piecewise transfer function. Display P3
// shares it. Negative values are mirrored, as CSS Color 4 specifies, so the
// curve stays odd and invertible on all of the reals.
type SRGBCurve struct {
	a, gamma, slope      float64
	linear_threshold     float64
	inv_gamma, threshold float64
}

var _ Curve1D = (*PQCurve)(nil)
var _ Curve1D = (*SRGBCurve)(nil)

// NewPQCurve returns a prepared perceptual quantizer curve with the Jzazbz
// constants: n = 2610/16384, p = 1.7*2523/32, c1 = 3424/4096, c2 = 2413/128,
// c3 = 2392/128, over cone responses scaled by 100.
func NewPQCurve() *PQCurve {
	c := &PQCurve{
		n:     2610.0 / 16384,
		p:     1.7 * 2523.0 / 32,
		c1:    3424.0 / 4096,
		c2:    2413.0 / 128,
		c3:    2392.0 / 128,
		scale: 100,
		// floor is Transform(0) rounded away from the sign flip
		min_encoded: 0.0000000000370353,
		max_encoded: 3.227,
	}
	if err := c.Prepare(); err != nil {
		panic(err)
	}
	return c
}

func (c PQCurve) Transform(x float64) float64 {
	valp := math.Pow(max(x/c.scale, 0), c.n)
	return math.Pow((c.c1+c.c2*valp)/(1+c.c3*valp), c.p)
}

func (c PQCurve) InverseTransform(x float64) float64 {
	x = min(max(x, c.min_encoded), c.max_encoded)
	xp := math.Pow(x, c.inv_p)
	return c.scale * math.Pow((c.c1-xp)/(c.c3*xp-c.c2), c.inv_n)
}

func (c *PQCurve) Prepare() error {
	if c.n == 0 || c.p == 0 {
		return fmt.Errorf("pq curve has zero exponent: n=%f p=%f", c.n, c.p)
	}
	if c.scale == 0 {
		return fmt.Errorf("pq curve has zero scale")
	}
	c.inv_n, c.inv_p = 1/c.n, 1/c.p
	return nil
}

func (c PQCurve) String() string {
	return fmt.Sprintf("PQCurve{n: %v p: %v}", c.n, c.p)
}

// NewSRGBCurve returns a prepared sRGB transfer curve.
func NewSRGBCurve() *SRGBCurve {
	c := &SRGBCurve{a: 0.055, gamma: 2.4, slope: 12.92, linear_threshold: 0.0031308}
	if err := c.Prepare(); err != nil {
		panic(err)
	}
	return c
}

func (c SRGBCurve) Transform(x float64) float64 {
	if abs := math.Abs(x); abs > c.linear_threshold {
		return math.Copysign((1+c.a)*math.Pow(abs, c.inv_gamma)-c.a, x)
	}
	return c.slope * x
}

func (c SRGBCurve) InverseTransform(x float64) float64 {
	if abs := math.Abs(x); abs > c.threshold {
		return math.Copysign(math.Pow((abs+c.a)/(1+c.a), c.gamma), x)
	}
	return x / c.slope
}

func (c *SRGBCurve) Prepare() error {
	if c.gamma == 0 || c.slope == 0 {
		return fmt.Errorf("srgb curve has zero parameter: gamma=%f slope=%f", c.gamma, c.slope)
	}
	c.inv_gamma = 1 / c.gamma
	c.threshold = c.slope * c.linear_threshold
	return nil
}

func (c SRGBCurve) String() string {
	return fmt.Sprintf("SRGBCurve{gamma: %v}", c.gamma)
}
