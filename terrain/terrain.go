/*
Package terrain paints decoded rasters onto a tile grid. Every import
category pairs one channel classifier with a shared geometric pass that
fits the image to the grid and walks it tile by tile.
*/
package terrain

import (
	"errors"
	"fmt"

	"github.com/tilecraft/geomap/raster"
	"github.com/tilecraft/geomap/world"
)

// ErrRasterTooLarge means the source packs more pixels into a single tile
// than the fixed-point scale can express.
var ErrRasterTooLarge = errors.New("terrain: raster too large for grid")

// Category selects the classifier an import runs.
type Category int

const (
	CategoryTerrain Category = iota
	CategoryFields
	CategoryWater
	CategoryTrees
	CategorySnow
	CategoryDesert
	CategoryTropics
)

func (c Category) String() string {
	switch c {
	case CategoryTerrain:
		return "terrain"
	case CategoryFields:
		return "fields"
	case CategoryWater:
		return "water"
	case CategoryTrees:
		return "trees"
	case CategorySnow:
		return "snow"
	case CategoryDesert:
		return "desert"
	case CategoryTropics:
		return "tropics"
	}
	return "unknown"
}

// ParseCategory maps a command-line or configuration name to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "terrain":
		return CategoryTerrain, nil
	case "fields":
		return CategoryFields, nil
	case "water":
		return CategoryWater, nil
	case "trees":
		return CategoryTrees, nil
	case "snow":
		return CategorySnow, nil
	case "desert":
		return CategoryDesert, nil
	case "tropics":
		return CategoryTropics, nil
	}
	return 0, fmt.Errorf("terrain: unknown category %q", s)
}

// Rotation fixes how raster axes project onto grid axes.
type Rotation int

const (
	RotationCounterClockwise Rotation = iota
	RotationClockwise
)

func (r Rotation) String() string {
	switch r {
	case RotationCounterClockwise:
		return "counter-clockwise"
	case RotationClockwise:
		return "clockwise"
	}
	return "unknown"
}

// ParseRotation maps a configuration name to a Rotation.
func ParseRotation(s string) (Rotation, error) {
	switch s {
	case "counter-clockwise", "ccw":
		return RotationCounterClockwise, nil
	case "clockwise", "cw":
		return RotationClockwise, nil
	}
	return 0, fmt.Errorf("terrain: unknown rotation %q", s)
}

// Apply runs the classifier for cat over every inner tile of g covered by
// the scaled raster. ras must be a successfully decoded raster; it is
// rejected with ErrRasterTooLarge, before any tile is touched, when no
// scale step can fit it onto g. Tiles whose current state is incompatible
// with the category are skipped silently; the grid is mutated in place,
// row by row, and rng draws are consumed in that same order.
func Apply(g world.Grid, rng world.RandomSource, cat Category, ras *raster.Raster, rot Rotation) error {
	if rot != RotationCounterClockwise && rot != RotationClockwise {
		return fmt.Errorf("terrain: unknown rotation %d", rot)
	}

	c := &classifier{grid: g, rng: rng}

	var fn tileFunc
	switch cat {
	case CategoryTerrain:
		fn = c.terrain
	case CategoryFields:
		fn = c.fields
	case CategoryWater:
		fn = c.water
	case CategoryTrees:
		fn = c.trees
	case CategorySnow:
		fn = c.snow
	case CategoryDesert:
		fn = c.desert
	case CategoryTropics:
		fn = c.tropics
	default:
		return fmt.Errorf("terrain: unknown category %d", cat)
	}

	return applyRaster(g, rot, ras, fn)
}
