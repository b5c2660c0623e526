// Command jzswatch reads a photograph, reports the hue that dominates it and
// prints an accent palette of the most chromatic displayable colors spread
// around that hue.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thislittleecstaticlife/jzazbz"
	"github.com/thislittleecstaticlife/jzazbz/swatch"
)

var _ = fmt.Print

func main() {
	var (
		n       = flag.Int("n", 5, "number of palette entries")
		stride  = flag.Int("stride", 1, "sample every n-th pixel along both axes")
		floor   = flag.Float64("floor", 0.008, "chroma below which a pixel counts as neutral")
		lanes   = flag.Int("lanes", 1, "parallel lanes for the gamut boundary search")
		noexif  = flag.Bool("noexif", false, "ignore the EXIF orientation of the input")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: jzswatch [options] input-file")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println("jzswatch", jzazbz.Version)
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
	img, err := swatch.Open(flag.Arg(0), swatch.AutoOrientation(!*noexif))
	if err != nil {
		return
	}
	hue, err := swatch.DominantHue(img, swatch.Stride(*stride), swatch.ChromaFloor(*floor))
	if err != nil {
		return
	}
	boundary := jzazbz.MaxChromaColor(hue, jzazbz.SearchLanes(*lanes))
	p3 := boundary.LinearP3()
	rgb := p3.NRGBA()
	fmt.Printf("Dominant hue: %.1f°\n", hue)
	fmt.Printf("Boundary color: %v\n", boundary)
	fmt.Printf("  linear P3: %.4f %.4f %.4f\n", p3.R, p3.G, p3.B)
	fmt.Printf("  sRGB: #%02X%02X%02X\n", rgb.R, rgb.G, rgb.B)
	accents, err := swatch.Palette(hue, *n, jzazbz.SearchLanes(*lanes))
	if err != nil {
		return
	}
	fmt.Println("Palette:")
	for i, a := range accents {
		fmt.Printf("  %d. %v\n", i+1, a)
	}
}
