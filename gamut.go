package jzazbz

import (
	"math"
)

type gamutCorner struct {
	lms LMS
	hue float64
}

// The Display P3 primaries and secondaries in cone response space, tagged
// with their appearance space hue in radians and sorted by it. The first and
// last entries are the same physical color, the point on the green-cyan cube
// edge whose hue is +-pi, so every hue in [-pi, pi] falls between two
// adjacent entries. Derived offline from the P3 primary chromaticities;
// TestGamutCornerColors cross-checks them against FromLMS.
var gamutCorners = [8]gamutCorner{
	{LMS{0.5160874353648806, 0.6689515188836437, 0.6434469935994587}, -math.Pi},
	{LMS{0.55608700197488292, 0.73025516799564405, 0.89827700087481577}, -2.7604618631505451}, // cyan
	{LMS{0.11431238432553269, 0.17519605565166838, 0.72826353378675235}, -1.7688992503294745}, // blue
	{LMS{0.53001160774764933, 0.41718828256028762, 0.8027984639562511}, -0.60623058828496412}, // magenta
	{LMS{0.41569922342211668, 0.24199222690861924, 0.074534930169498803}, 0.74690126898001996}, // red
	{LMS{0.85747384107146684, 0.79705133925259486, 0.24454839725756228}, 1.789331917784555},    // yellow
	{LMS{0.44177461764935022, 0.55505911234397565, 0.17001346708806347}, 2.3782967581439904},   // green
	{LMS{0.5160874353648806, 0.6689515188836437, 0.6434469935994587}, math.Pi},
}

// chromaEdge returns the adjacent corner pair whose hue range contains hue,
// which must already be reduced to [-pi, pi). Three ordered comparisons
// rather than a scan, so the same lookup runs without divergence when many
// lanes execute it at once.
func chromaEdge(hue float64) (lower, upper gamutCorner) {
	j := 0
	if gamutCorners[4].hue <= hue {
		j += 4
	}
	if gamutCorners[j+2].hue <= hue {
		j += 2
	}
	if gamutCorners[j+1].hue <= hue {
		j++
	}
	return gamutCorners[j], gamutCorners[j+1]
}

type searchConfig struct {
	iterations int
	lanes      int
}

// A zero iteration count is resolved in maxChroma by lane count.
var defaultSearchConfig = searchConfig{lanes: 1}

// SearchOption sets an optional parameter for the boundary search.
type SearchOption func(*searchConfig)

// SearchIterations returns a SearchOption that sets the number of bracket
// narrowing iterations. Each iteration divides the bracket by 2, or by
// lanes+1 when lanes are in use. Left unset, plain bisection runs 20
// iterations, enough to push the hue error of a single precision result
// below its last significant digit, and a wide search runs 4.
func SearchIterations(n int) SearchOption {
	return func(c *searchConfig) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// SearchLanes returns a SearchOption that spreads each iteration over n
// candidate points evaluated concurrently, keeping the furthest candidate
// whose hue has not passed the target as the new lower bound. At 32 lanes
// the default 4 iterations narrow the bracket about as far as 20 bisection
// halvings. The default is 1, plain bisection.
func SearchLanes(n int) SearchOption {
	return func(c *searchConfig) {
		if n > 0 {
			c.lanes = n
		}
	}
}

// MaxChromaColor returns the most chromatic appearance color of the given
// hue that Display P3 can reproduce. The hue is in degrees; any real value
// is accepted and reduced here, once, to the [-180, 180) convention of the
// corner table. The result lies on the gamut boundary: its linear P3
// projection has channels pinned at 0 or 1.
func MaxChromaColor(hueDegrees float64, opts ...SearchOption) Color {
	hue := math.Mod(hueDegrees, 360)
	switch {
	case hue >= 180:
		hue -= 360
	case hue < -180:
		hue += 360
	}
	return maxChroma(hue*math.Pi/180, opts...)
}

// MaxChromaColorRadians is MaxChromaColor for a hue angle in radians.
func MaxChromaColorRadians(hue float64, opts ...SearchOption) Color {
	hue = math.Mod(hue, 2*math.Pi)
	switch {
	case hue >= math.Pi:
		hue -= 2 * math.Pi
	case hue < -math.Pi:
		hue += 2 * math.Pi
	}
	return maxChroma(hue, opts...)
}

// maxChroma requires hue already reduced to [-pi, pi).
func maxChroma(hue float64, opts ...SearchOption) Color {
	cfg := defaultSearchConfig
	for _, o := range opts {
		o(&cfg)
	}
	iters := cfg.iterations
	if iters == 0 {
		if cfg.lanes > 1 {
			iters = 4
		} else {
			iters = 20
		}
	}
	lower, upper := chromaEdge(hue)
	lo, hi := lower.lms, upper.lms
	if cfg.lanes > 1 {
		lo = narrowWide(lo, hi, hue, iters, cfg.lanes)
	} else {
		lo = narrow(lo, hi, hue, iters)
	}
	return FromLMS(lo)
}

func lerpLMS(a, b LMS, t float64) LMS {
	return LMS{
		a.L + t*(b.L-a.L),
		a.M + t*(b.M-a.M),
		a.S + t*(b.S-a.S),
	}
}

// narrow halves the bracket iters times and returns the lower end. Hue grows
// monotonically along the segment from lo to hi, so a midpoint whose hue is
// still <= target keeps the boundary between itself and hi.
func narrow(lo, hi LMS, target float64, iters int) LMS {
	for range iters {
		val := lerpLMS(lo, hi, 0.5)
		if FromLMS(val).HueRadians() <= target {
			lo = val
		} else {
			hi = val
		}
	}
	return lo
}
