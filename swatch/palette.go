package swatch

import (
	"errors"
	"fmt"

	"github.com/thislittleecstaticlife/jzazbz"
)

// Accent is one palette entry, the most chromatic displayable color of its
// hue.
type Accent struct {
	Hue   float64
	Color jzazbz.Color
	Hex   string
}

func (a Accent) String() string {
	return fmt.Sprintf("%s at %.1f°", a.Hex, a.Hue)
}

// Palette spreads n accents evenly around the hue wheel starting at hue,
// every one taken at the gamut boundary so the set reads as a single family
// of vivid colors.
func Palette(hue float64, n int, opts ...jzazbz.SearchOption) ([]Accent, error) {
	if n < 1 {
		return nil, errors.New("a palette needs at least one entry")
	}
	ans := make([]Accent, n)
	for i := range ans {
		c := jzazbz.MaxChromaColor(hue+360*float64(i)/float64(n), opts...)
		p := c.LinearP3().NRGBA()
		ans[i] = Accent{
			Hue:   c.HueDegrees(),
			Color: c,
			Hex:   fmt.Sprintf("#%02X%02X%02X", p.R, p.G, p.B),
		}
	}
	return ans, nil
}
