package jzazbz

import (
	"github.com/kovidgoyal/go-parallel"
)

// narrowWide subdivides the bracket into lanes+1 parts each iteration. The
// interior candidates are evaluated concurrently, one hue test per lane, and
// the reduction keeps the highest lane whose hue has not passed the target:
// the boundary lies between that candidate and the next one up. Each
// iteration divides the bracket by lanes+1 instead of 2, so a handful of
// iterations matches many bisection halvings. Hue is monotonic along the
// segment, which makes the pass results a prefix of the lanes and the
// per-lane writes independent.
func narrowWide(lo, hi LMS, target float64, iters, lanes int) LMS {
	pass := make([]bool, lanes)
	width := 1 / float64(lanes+1)
	for range iters {
		f := func(start, limit int) {
			for i := start; i < limit; i++ {
				t := float64(i+1) * width
				pass[i] = FromLMS(lerpLMS(lo, hi, t)).HueRadians() <= target
			}
		}
		_ = parallel.Run_in_parallel_over_range(0, f, 0, lanes)
		j := -1
		for i, ok := range pass {
			if ok {
				j = i
			}
		}
		newlo, newhi := lo, hi
		if j >= 0 {
			newlo = lerpLMS(lo, hi, float64(j+1)*width)
		}
		if j+1 < lanes {
			newhi = lerpLMS(lo, hi, float64(j+2)*width)
		}
		lo, hi = newlo, newhi
	}
	return lo
}
