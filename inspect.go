package geomap

import (
	"image"
	"image/color"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/tilecraft/geomap/raster"
)

const inspectColors = 16

// PaletteEntry is one quantized color and the share of pixels mapped to it.
type PaletteEntry struct {
	Color color.RGBA
	Share float64
}

// Inspect decodes the raster at path and reduces it to a palette of at
// most sixteen colors, ordered by how much of the image each one covers.
// It helps judge which classifier channels a raster will drive before
// importing it.
func (m *GeoMap) Inspect(path string, f raster.Format) ([]PaletteEntry, error) {
	ras, err := raster.ReadFile(path, f)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, ras.Width, ras.Height))
	for i := 0; i < ras.Width*ras.Height; i++ {
		img.Pix[i*4+0] = ras.Pix[i*3+0]
		img.Pix[i*4+1] = ras.Pix[i*3+1]
		img.Pix[i*4+2] = ras.Pix[i*3+2]
		img.Pix[i*4+3] = 0xff
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, inspectColors), img)

	counts := make([]int, len(p))
	for i := 0; i < ras.Width*ras.Height; i++ {
		counts[p.Index(color.RGBA{ras.Pix[i*3+0], ras.Pix[i*3+1], ras.Pix[i*3+2], 0xff})]++
	}

	total := float64(ras.Width * ras.Height)
	entries := make([]PaletteEntry, len(p))
	for i, c := range p {
		entries[i] = PaletteEntry{
			Color: color.RGBAModel.Convert(c).(color.RGBA),
			Share: float64(counts[i]) / total,
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Share > entries[j].Share
	})

	return entries, nil
}
