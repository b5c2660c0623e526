// Command jzchart renders hue charts of the Jzazbz appearance space: the
// lightness-chroma plane of a hue, its tone gradient, the most chromatic
// displayable color and a hue dial, as a PNG, BMP or GIF still or as an
// APNG/GIF sweep animation around the hue wheel.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thislittleecstaticlife/jzazbz"
	"github.com/thislittleecstaticlife/jzazbz/chart"
)

var _ = fmt.Print

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		if w, err = strconv.Atoi(ws); err == nil {
			if h, err = strconv.Atoi(hs); err == nil {
				return w, h, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("invalid size %q, expected something like 800x600", s)
}

func main() {
	var (
		hue     = flag.Float64("hue", 0, "hue angle in degrees")
		size    = flag.String("size", "800x600", "output size as WIDTHxHEIGHT")
		sweep   = flag.Int("sweep", 0, "animate this many frames around the hue wheel")
		delay   = flag.Duration("delay", 80*time.Millisecond, "delay between animation frames")
		loop    = flag.Uint("loop", 0, "animation loop count, zero loops forever")
		lanes   = flag.Int("lanes", 1, "parallel lanes for the gamut boundary search")
		p3      = flag.Bool("p3", false, "emit Display P3 pixel values instead of sRGB")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: jzchart [options] output-file")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println("jzchart", jzazbz.Version)
		return
	}
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	output_file := flag.Arg(0)
	w, h, err := parseSize(*size)
	if err != nil {
		return
	}
	opts := []chart.RenderOption{
		chart.Size(w, h), chart.Hue(*hue),
		chart.WithSearch(jzazbz.SearchLanes(*lanes)),
	}
	if *p3 {
		opts = append(opts, chart.P3Pixels())
	}
	if *sweep > 0 {
		var s *chart.Sweep
		if s, err = chart.NewSweep(*sweep, *delay, opts...); err != nil {
			return
		}
		s.LoopCount = *loop
		if err = s.WriteFile(output_file); err != nil {
			return
		}
		fmt.Printf("%d frame sweep saved to: %s\n", *sweep, output_file)
		return
	}
	img, err := chart.Render(opts...)
	if err != nil {
		return
	}
	if err = chart.WriteFile(output_file, img); err != nil {
		return
	}
	fmt.Println("Chart saved to:", output_file)
}
