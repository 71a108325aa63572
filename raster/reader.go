package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"

	"golang.org/x/image/bmp"
)

// bmpBitsOffset is where the bits-per-pixel field sits in a BMP header.
const bmpBitsOffset = 28

// decoder carries one decode run. The header is parsed first through a tee
// so that dimensions and channel layout are rejected before any pixel data
// is read; the teed bytes are then replayed for the full decode.
type decoder struct {
	format Format

	config Config
	raster *Raster
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	var head bytes.Buffer

	cfg, err := d.decodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return err
	}

	if !ValidDimensions(cfg.Width, cfg.Height) {
		return ErrTooLarge
	}
	if err := d.checkColorModel(cfg, head.Bytes()); err != nil {
		return err
	}
	d.config = Config{Width: cfg.Width, Height: cfg.Height}

	if configOnly {
		return nil
	}

	m, err := d.decodeImage(io.MultiReader(&head, r))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return d.normalize(m)
}

func (d *decoder) decodeConfig(r io.Reader) (image.Config, error) {
	var (
		cfg image.Config
		err error
	)
	switch d.format {
	case FormatPNG:
		cfg, err = png.DecodeConfig(r)
	case FormatBMP:
		cfg, err = bmp.DecodeConfig(r)
	default:
		return image.Config{}, ErrFormat
	}
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return cfg, nil
}

func (d *decoder) decodeImage(r io.Reader) (image.Image, error) {
	switch d.format {
	case FormatBMP:
		return bmp.Decode(r)
	default:
		return png.Decode(r)
	}
}

// checkColorModel admits the layouts that map onto RGB triples: 8-bit
// palettes, 8-bit true color and 8-bit grayscale. Alpha channels and wider
// samples carry information the canonical buffer cannot hold, so they are
// rejected rather than silently flattened.
func (d *decoder) checkColorModel(cfg image.Config, head []byte) error {
	if d.format == FormatBMP {
		if len(head) < bmpBitsOffset+2 {
			return ErrFormat
		}
		// The decoded model hides the source depth, so read it from the
		// header directly.
		switch bpp := binary.LittleEndian.Uint16(head[bmpBitsOffset:]); bpp {
		case 8, 24:
		default:
			return fmt.Errorf("%w: %d bits per pixel", ErrFormat, bpp)
		}
	}

	if p, ok := cfg.ColorModel.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return fmt.Errorf("%w: transparent palette entry", ErrFormat)
			}
		}
		return nil
	}

	switch cfg.ColorModel {
	case color.RGBAModel, color.GrayModel:
		return nil
	case color.NRGBAModel:
		return fmt.Errorf("%w: alpha channel", ErrFormat)
	case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
		return fmt.Errorf("%w: 16 bits per channel", ErrFormat)
	}
	return ErrFormat
}

func (d *decoder) normalize(m image.Image) error {
	w, h := d.config.Width, d.config.Height
	pix := make([]byte, w*h*3)

	switch src := m.(type) {
	case *image.Paletted:
		lut := make([]byte, len(src.Palette)*3)
		for i, c := range src.Palette {
			r, g, b, a := c.RGBA()
			if a != 0xffff {
				return fmt.Errorf("%w: transparent palette entry %d", ErrFormat, i)
			}
			lut[i*3+0] = byte(r >> 8)
			lut[i*3+1] = byte(g >> 8)
			lut[i*3+2] = byte(b >> 8)
		}
		for y := 0; y < h; y++ {
			si := y * src.Stride
			di := y * w * 3
			for x := 0; x < w; x++ {
				p := int(src.Pix[si+x])
				if p >= len(src.Palette) {
					return fmt.Errorf("%w: palette index %d out of range", ErrDecode, p)
				}
				copy(pix[di+x*3:di+x*3+3], lut[p*3:p*3+3])
			}
		}
	case *image.RGBA:
		for y := 0; y < h; y++ {
			si := y * src.Stride
			di := y * w * 3
			for x := 0; x < w; x++ {
				pix[di+x*3+0] = src.Pix[si+x*4+0]
				pix[di+x*3+1] = src.Pix[si+x*4+1]
				pix[di+x*3+2] = src.Pix[si+x*4+2]
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			si := y * src.Stride
			di := y * w * 3
			for x := 0; x < w; x++ {
				v := src.Pix[si+x]
				pix[di+x*3+0] = v
				pix[di+x*3+1] = v
				pix[di+x*3+2] = v
			}
		}
	default:
		return ErrFormat
	}

	d.raster = &Raster{Width: w, Height: h, Pix: pix}
	return nil
}

// Decode reads one image from r and returns it as a canonical RGB raster.
func Decode(r io.Reader, f Format) (*Raster, error) {
	d := decoder{format: f}
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.raster, nil
}

// DecodeConfig returns the dimensions of the image in r without decoding
// its pixel data.
func DecodeConfig(r io.Reader, f Format) (Config, error) {
	d := decoder{format: f}
	if err := d.decode(r, true); err != nil {
		return Config{}, err
	}
	return d.config, nil
}

// ReadFile decodes the named file.
func ReadFile(name string, f Format) (*Raster, error) {
	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	defer file.Close()

	return Decode(file, f)
}

// ReadFileConfig returns the dimensions of the named file without reading
// its pixel data.
func ReadFileConfig(name string, f Format) (Config, error) {
	file, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Config{}, err
	}
	defer file.Close()

	return DecodeConfig(file, f)
}
