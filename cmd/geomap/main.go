package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/tilecraft/geomap"
	"github.com/tilecraft/geomap/config"
	"github.com/tilecraft/geomap/raster"
	"github.com/tilecraft/geomap/terrain"
	"github.com/tilecraft/geomap/world"
)

const defaultDB = "geomap.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "geomap"
	app.Usage = "Raster to tile world import utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GEOMAP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"GEOMAP_CONFIG"},
			Usage:   "path to world profile",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "import",
			Usage:       "Import a classified raster onto a fresh world",
			Description: "CATEGORY is one of terrain, fields, water, trees, snow, desert or tropics.",
			ArgsUsage:   "CATEGORY FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				cfg, err := config.Load(c.String("config"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				cat, err := terrain.ParseCategory(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				file := c.Args().Get(1)
				format, ok := raster.FormatForPath(file)
				if !ok {
					return cli.NewExitError(fmt.Errorf("unsupported raster file %q", file), 1)
				}

				m, err := geomap.New(databasePath(c, cfg), logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				grid := world.NewMap(cfg.World.SizeX, cfg.World.SizeY, cfg.Landscape())
				rng := world.NewRandomizer(cfg.Seed)

				if err := m.Import(grid, rng, cat, format, filepath.Dir(file), filepath.Base(file), cfg.ParsedRotation()); err != nil {
					return cli.NewExitError(err, 1)
				}

				census := grid.Census()
				fmt.Printf("%dx%d world: %d clear, %d tree, %d water tiles\n",
					grid.SizeX(), grid.SizeY(),
					census[world.TileClear], census[world.TileTrees], census[world.TileWater])

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and catalog rasters",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				cfg, err := config.Load(c.String("config"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				m, err := geomap.New(databasePath(c, cfg), logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Show the quantized palette of a raster",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				cfg, err := config.Load(c.String("config"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				file := c.Args().First()
				format, ok := raster.FormatForPath(file)
				if !ok {
					return cli.NewExitError(fmt.Errorf("unsupported raster file %q", file), 1)
				}

				m, err := geomap.New(databasePath(c, cfg), logger)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				entries, err := m.Inspect(file, format)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("#%02x%02x%02x %6.2f%%\n", e.Color.R, e.Color.G, e.Color.B, e.Share*100)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// databasePath prefers an explicit --db flag, then the profile, then the
// flag's working directory default.
func databasePath(c *cli.Context, cfg *config.Config) string {
	if !c.IsSet("db") && cfg.Database != "" {
		return cfg.Database
	}
	return c.String("db")
}
