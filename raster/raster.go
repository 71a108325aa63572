/*
Package raster decodes PNG and BMP images into a canonical buffer of RGB
triples, validating dimensions before any pixel data is read.
*/
package raster

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound means the named file does not exist.
	ErrNotFound = errors.New("raster: file not found")
	// ErrFormat means the image uses a channel layout or bit depth that
	// has no RGB interpretation here, or is not the claimed container.
	ErrFormat = errors.New("raster: unsupported image format")
	// ErrTooLarge means the header dimensions exceed the supported size.
	ErrTooLarge = errors.New("raster: image dimensions too large")
	// ErrDecode means the pixel data could not be read after the header
	// had already been accepted.
	ErrDecode = errors.New("raster: image data could not be decoded")
)

const (
	// MaxSideLength is twice the longest supported grid side, leaving
	// room to downscale oversized axes.
	MaxSideLength = 2 * (1 << 16)
	// MaxPixels bounds the decoded buffer allocation.
	MaxPixels = 256 << 20
)

// ValidDimensions reports whether an image of the given size may be
// decoded. The pixel count is computed in 64 bits so header values near
// the limits cannot wrap.
func ValidDimensions(width, height int) bool {
	return int64(width)*int64(height) <= MaxPixels &&
		width > 0 && width <= MaxSideLength &&
		height > 0 && height <= MaxSideLength
}

// Raster is a decoded image held as a flat row-major buffer of RGB
// triples, so len(Pix) == Width*Height*3.
type Raster struct {
	Width  int
	Height int
	Pix    []byte
}

// RGB returns the channel bytes of the pixel at (x, y).
func (r *Raster) RGB(x, y int) (byte, byte, byte) {
	i := (y*r.Width + x) * 3
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// Config holds the dimensions of an image without its pixel data.
type Config struct {
	Width  int
	Height int
}

// Format identifies a supported image container.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	}
	return "unknown"
}

// FormatForPath guesses the container from a file extension.
func FormatForPath(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return FormatPNG, true
	case ".bmp":
		return FormatBMP, true
	}
	return 0, false
}
