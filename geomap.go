/*
Package geomap imports classified raster images onto tile worlds. Rasters
are decoded into plain RGB triples, mapped tile by tile onto the world
grid and fed through per-category classifiers that place terrain, fields,
water, trees, snow, desert and climate zones. Every raster that passes
through is recorded in a SQLite catalog keyed by content checksum.
*/
package geomap

import (
	"log"
)

// GeoMap ties the raster catalog and a logger together.
type GeoMap struct {
	db     *Catalog
	logger *log.Logger
}

// New opens the catalog database at db, creating it if necessary.
func New(db string, logger *log.Logger) (*GeoMap, error) {
	catalog, err := NewCatalog(db)
	if err != nil {
		return nil, err
	}

	return &GeoMap{
		db:     catalog,
		logger: logger,
	}, nil
}

// Close releases the catalog database.
func (m *GeoMap) Close() error {
	return m.db.Close()
}
