/*
Package jzazbz converts between the Jzazbz perceptual color appearance space
and linear Display P3, and solves the inverse problem of locating, for any
hue, the most chromatic color the display can still reproduce.

Colors move through a cone response (LMS) intermediate: FromLMS applies the
perceptual quantizer nonlinearity and produces an appearance space Color,
Color.LMS inverts it exactly, and LMS.LinearP3 maps cone responses onto the
display primaries. MaxChromaColor runs a bracketed search along the gamut
edge between precomputed corner colors to find the boundary color for a hue.
*/
package jzazbz

import "fmt"

type JzazbzVersion struct {
	Major, Minor, Patch uint
}

func (v JzazbzVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v JzazbzVersion) Equal(o JzazbzVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v JzazbzVersion) After(o JzazbzVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v JzazbzVersion) Before(o JzazbzVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = JzazbzVersion{1, 0, 0}
