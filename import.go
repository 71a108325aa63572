package geomap

import (
	"path/filepath"

	"github.com/tilecraft/geomap/raster"
	"github.com/tilecraft/geomap/terrain"
	"github.com/tilecraft/geomap/world"
)

// Import decodes the raster name under dir and paints it onto grid with
// the classifier for cat. Decode and validation failures abort before any
// tile is touched. Successful imports are recorded in the catalog.
func (m *GeoMap) Import(grid world.Grid, rng world.RandomSource, cat terrain.Category, f raster.Format, dir, name string, rot terrain.Rotation) error {
	file := filepath.Join(dir, name)

	ras, err := raster.ReadFile(file, f)
	if err != nil {
		return err
	}

	if err := terrain.Apply(grid, rng, cat, ras, rot); err != nil {
		return err
	}

	crc, err := crcFile(file)
	if err != nil {
		return err
	}

	id, err := m.db.AddRaster(crc, file, f, ras.Width, ras.Height)
	if err != nil {
		return err
	}

	if err := m.db.RecordImport(id, cat.String()); err != nil {
		return err
	}

	m.logger.Printf("Imported \"%s\" as %s onto %dx%d tiles, with CRC \"%s\"\n", file, cat, grid.SizeX(), grid.SizeY(), crc)

	return nil
}
