package terrain

import (
	"github.com/tilecraft/geomap/raster"
	"github.com/tilecraft/geomap/world"
)

// numDiv is the fixed-point denominator for the aspect and scale
// arithmetic, so the pass never touches floating point.
const numDiv = 16384

// tileFunc receives the sampled channel bytes for one eligible tile.
type tileFunc func(r, g, b byte, tile world.TileIndex)

// applyRaster fits ras to g preserving aspect ratio, centers it with
// padding rows or columns, and calls fn once per inner tile with the
// nearest-neighbor source pixel. Counter-clockwise rotation mirrors the
// source columns so the image keeps its on-screen orientation; clockwise
// swaps the grid axes instead. A source more than numDiv times larger
// than the grid on the fitted axis leaves no scale step and is rejected.
func applyRaster(g world.Grid, rot Rotation, ras *raster.Raster, fn tileFunc) error {
	var mapWidth, mapHeight uint
	if rot == RotationClockwise {
		mapWidth = g.SizeY()
		mapHeight = g.SizeX()
	} else {
		mapWidth = g.SizeX()
		mapHeight = g.SizeY()
	}

	rasterWidth := uint(ras.Width)
	rasterHeight := uint(ras.Height)

	var scale, rowPad, colPad uint
	if rasterWidth*numDiv/rasterHeight > mapWidth*numDiv/mapHeight {
		// Image is wider than the grid, center vertically.
		scale = mapWidth * numDiv / rasterWidth
		rowPad = (1 + mapHeight - rasterHeight*scale/numDiv) / 2
	} else {
		// Image is taller than the grid, center horizontally.
		scale = mapHeight * numDiv / rasterHeight
		colPad = (1 + mapWidth - rasterWidth*scale/numDiv) / 2
	}

	if scale == 0 {
		return ErrRasterTooLarge
	}

	for row := rowPad; row < mapHeight-rowPad; row++ {
		for col := colPad; col < mapWidth-colPad; col++ {
			var tile world.TileIndex
			if rot == RotationClockwise {
				tile = g.TileXY(row, col)
			} else {
				tile = g.TileXY(col, row)
			}

			srcRow := (row - rowPad) * numDiv / scale
			var srcCol uint
			if rot == RotationClockwise {
				srcCol = (col - colPad) * numDiv / scale
			} else {
				srcCol = (mapWidth - 1 - col - colPad) * numDiv / scale
			}

			i := (srcRow*rasterWidth + srcCol) * 3
			if g.IsInner(tile) {
				fn(ras.Pix[i], ras.Pix[i+1], ras.Pix[i+2], tile)
			}
		}
	}

	return nil
}
