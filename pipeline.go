package geomap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/tilecraft/geomap/raster"
)

const scanWorkers = 10

func (m *GeoMap) findRasters(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			// Ignore anything that isn't recognisable from its extension
			if _, ok := raster.FormatForPath(file); !ok {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (m *GeoMap) rasterWorker(ctx context.Context, in <-chan string, bar *progressbar.ProgressBar) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			format, _ := raster.FormatForPath(file)

			cfg, err := raster.ReadFileConfig(file, format)
			if err != nil {
				// Files that don't decode are skipped, not fatal
				m.logger.Printf("Skipping \"%s\": %v\n", file, err)
				bar.Add(1)
				continue
			}

			crc, err := crcFile(file)
			if err != nil {
				errc <- err
				return
			}

			if _, err := m.db.AddRaster(crc, file, format, cfg.Width, cfg.Height); err != nil {
				errc <- err
				return
			}

			m.logger.Printf("Cataloged \"%s\" (%dx%d), with CRC \"%s\"\n", file, cfg.Width, cfg.Height, crc)
			bar.Add(1)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks a directory tree and catalogs every raster found under it.
// Files that fail to decode are logged and skipped.
func (m *GeoMap) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	bar := progressbar.New(-1)

	var errcList []<-chan error

	files, errc, err := m.findRasters(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := m.rasterWorker(ctx, files, bar)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	err = waitForPipeline(errcList...)
	bar.Finish()
	return err
}
