package geomap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tilecraft/geomap/raster"
)

// Catalog records every raster the tool has seen, keyed by content
// checksum, along with the imports performed from each one.
type Catalog struct {
	db *sql.DB
}

// RasterInfo is one catalog row.
type RasterInfo struct {
	ID     int64
	CRC    string
	Path   string
	Format string
	Width  int
	Height int
}

// NewCatalog opens or creates the catalog database at file. Scan writes
// from several goroutines at once, so the journal runs in WAL mode and
// contending writers wait on the busy timeout.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS raster (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, path TEXT NOT NULL, format TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS import (id INTEGER PRIMARY KEY NOT NULL, raster_id INTEGER NOT NULL, category TEXT NOT NULL, imported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP, FOREIGN KEY(raster_id) REFERENCES raster(id))"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// AddRaster records a raster file, returning the existing row id when the
// same content was seen before. The stored path follows the latest
// sighting. The write is a single upsert, safe for concurrent callers.
func (c *Catalog) AddRaster(crc, path string, format raster.Format, width, height int) (int64, error) {
	if _, err := c.db.Exec("INSERT INTO raster (crc, path, format, width, height) VALUES (?, ?, ?, ?, ?) ON CONFLICT(crc) DO UPDATE SET path = excluded.path", crc, path, format.String(), width, height); err != nil {
		return 0, err
	}

	var id int64
	if err := c.db.QueryRow("SELECT id FROM raster WHERE crc = ?", crc).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// RecordImport appends an import of the raster to its history.
func (c *Catalog) RecordImport(rasterID int64, category string) error {
	if _, err := c.db.Exec("INSERT INTO import (raster_id, category) VALUES (?, ?)", rasterID, category); err != nil {
		return err
	}
	return nil
}

// FindByCRC looks a raster up by content checksum. A miss returns nil.
func (c *Catalog) FindByCRC(crc string) (*RasterInfo, error) {
	info := RasterInfo{CRC: crc}
	switch err := c.db.QueryRow("SELECT id, path, format, width, height FROM raster WHERE crc = ?", crc).Scan(&info.ID, &info.Path, &info.Format, &info.Width, &info.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &info, nil
	default:
		return nil, err
	}
}

// ImportCount returns how many imports were recorded for a raster.
func (c *Catalog) ImportCount(rasterID int64) (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM import WHERE raster_id = ?", rasterID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
