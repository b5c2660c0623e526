package chart

import (
	"path/filepath"
	"strings"
)

// Format is a chart output file format.
type Format int

// Output file formats.
const (
	UNKNOWN Format = iota
	PNG
	BMP
	GIF
	APNG
)

var FormatExts = map[string]Format{
	"png":  PNG,
	"bmp":  BMP,
	"gif":  GIF,
	"apng": APNG,
}

var formatNames = map[Format]string{
	PNG:  "PNG",
	BMP:  "BMP",
	GIF:  "GIF",
	APNG: "APNG",
}

func (f Format) String() string {
	return formatNames[f]
}

// FormatForPath maps a file name to its output format by extension.
func FormatForPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return FormatExts[ext]
}
