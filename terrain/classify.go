package terrain

import "github.com/tilecraft/geomap/world"

// Channel cutoffs for classified rasters. Indexed sources with a reduced
// palette can land slightly off the extremes, so both ends keep a margin.
const (
	lowerCutoff = 0x0f
	upperCutoff = 0xf0
)

// classifier binds one import's grid and random source to the per-tile
// channel rules.
type classifier struct {
	grid world.Grid
	rng  world.RandomSource
}

// replaceGround rewrites the ground of a clear tile, or merges it onto the
// tree ground when the tile carries trees. Rocks and fields push the trees
// off the tile entirely. Other tile types are left alone.
func (c *classifier) replaceGround(tile world.TileIndex, ground world.ClearGround, density uint) {
	switch c.grid.TileType(tile) {
	case world.TileClear:
		c.grid.SetClearGround(tile, ground, density)
	case world.TileTrees:
		switch ground {
		case world.ClearGrass:
			c.grid.SetTreeGround(tile, world.TreeGroundGrass, density)
		case world.ClearRough:
			c.grid.SetTreeGround(tile, world.TreeGroundRough, density)
		case world.ClearRocks, world.ClearFields:
			c.grid.MakeClear(tile, ground, density)
		case world.ClearSnow, world.ClearDesert:
			c.grid.SetTreeGround(tile, world.TreeGroundSnowDesert, density)
		}
	}
}

// terrain classifies red to grass-to-dirt density, green to rough ground
// and blue to rocks.
func (c *classifier) terrain(r, g, b byte, tile world.TileIndex) {
	t := c.grid.TileType(tile)
	if t != world.TileClear && t != world.TileTrees {
		return
	}

	if r >= 0x10 {
		density := SampleGradient(c.rng, int(r), 3, upperCutoff, lowerCutoff)
		if density < 3 {
			c.replaceGround(tile, world.ClearGrass, uint(density))
		}
	}

	if g >= 0x10 {
		if SampleGradient(c.rng, int(g), 1, lowerCutoff, upperCutoff) != 0 {
			c.replaceGround(tile, world.ClearRough, 3)
		}
	}

	if b >= 0x10 {
		if SampleGradient(c.rng, int(b), 1, lowerCutoff, upperCutoff) != 0 {
			c.replaceGround(tile, world.ClearRocks, 3)
		}
	}
}

// fields selects the crop type from red and draws placement odds from
// green.
func (c *classifier) fields(r, g, b byte, tile world.TileIndex) {
	t := c.grid.TileType(tile)
	if t != world.TileClear && t != world.TileTrees {
		return
	}

	if r < lowerCutoff {
		return
	}

	// Bands of 16 map to the nine crop types, wrapping past the ninth.
	field := world.FieldType((r>>4 - 1) % 9)

	if SampleGradient(c.rng, int(g), 1, lowerCutoff, upperCutoff) != 0 {
		c.grid.MakeField(tile, field, world.IndustryNone)
	}
}

// water places canals from red, rivers from green and sea from blue, in
// that priority order.
func (c *classifier) water(r, g, b byte, tile world.TileIndex) {
	if r >= upperCutoff {
		slope := c.grid.Slope(tile)
		if slope.IsFlat() {
			owner := c.grid.Owner(tile)
			if owner == world.OwnerWater {
				owner = world.OwnerNone
			}
			c.grid.MakeCanal(tile, owner, c.rng.Next())
		} else if g >= upperCutoff && slope.IsHalftile() {
			// The canal cannot sit on this slope, but a river can.
			c.grid.MakeRiver(tile, c.rng.Next())
		}
	} else if g >= upperCutoff {
		slope := c.grid.Slope(tile)
		if slope.IsFlat() || slope.IsHalftile() {
			c.grid.MakeRiver(tile, c.rng.Next())
		}
	} else if b >= upperCutoff {
		if c.grid.Slope(tile).IsFlat() && c.grid.Height(tile) == 0 {
			c.grid.MakeSea(tile)
		}
	}
}

// trees reads growth from red, density from green and the species from
// blue, falling back to a random species fit for the tile.
func (c *classifier) trees(r, g, b byte, tile world.TileIndex) {
	var growth int
	if r < 0x10 {
		// Default to the adult stage.
		growth = 3
	} else {
		growth = SampleGradient(c.rng, int(r), 6, lowerCutoff, upperCutoff)
	}

	// Densities run 0-3; the extra bottom band places nothing.
	density := SampleGradient(c.rng, int(g), 3+1, lowerCutoff, upperCutoff) - 1
	if density < 0 {
		return
	}

	var tree world.TreeType
	if b < 0x10 {
		tree = c.grid.RandomTreeType(tile, uint8(c.rng.Next()>>24))
	} else {
		tree = treeTypeLookup(c.grid.Landscape(), b)
	}

	if tree == world.TreeInvalid {
		return
	}
	if c.grid.CanPlantTrees(tile, true) {
		c.grid.PlantTrees(tile, tree, uint(density), uint(growth))
	}
}

// snow layers snow density from blue onto clear and tree tiles, keeping
// the rough or desert state underneath.
func (c *classifier) snow(r, g, b byte, tile world.TileIndex) {
	density := SampleGradient(c.rng, int(b), 3+1, lowerCutoff, upperCutoff) - 1
	if density < 0 {
		return
	}

	switch c.grid.TileType(tile) {
	case world.TileClear:
		if c.grid.IsSnow(tile) {
			c.grid.SetClearGround(tile, world.ClearSnow, uint(density))
		} else {
			c.grid.MakeSnow(tile, uint(density))
		}
	case world.TileTrees:
		switch c.grid.TreeGround(tile) {
		case world.TreeGroundGrass, world.TreeGroundSnowDesert:
			c.grid.SetTreeGround(tile, world.TreeGroundSnowDesert, uint(density))
		case world.TreeGroundRough, world.TreeGroundRoughSnow:
			c.grid.SetTreeGround(tile, world.TreeGroundRoughSnow, uint(density))
		}
	}
}

// desert lays desert ground from red and flags the desert climate zone
// from green.
func (c *classifier) desert(r, g, b byte, tile world.TileIndex) {
	// Desert density can only be 1 or 3.
	density := SampleGradient(c.rng, int(r), 2, lowerCutoff, upperCutoff)*2 - 1
	if density < 0 {
		return
	}

	c.replaceGround(tile, world.ClearDesert, uint(density))

	if g > upperCutoff {
		c.grid.SetTropicZone(tile, world.TropicZoneDesert)
	}
}

// tropics assigns the climate zone, first matching channel wins.
func (c *classifier) tropics(r, g, b byte, tile world.TileIndex) {
	if r > upperCutoff {
		c.grid.SetTropicZone(tile, world.TropicZoneDesert)
	} else if g > upperCutoff {
		c.grid.SetTropicZone(tile, world.TropicZoneRainforest)
	} else if b > upperCutoff {
		c.grid.SetTropicZone(tile, world.TropicZoneNormal)
	}
}

// treeTypeLookup picks the species for a channel value, each step of 16
// selecting the next species of the landscape's range.
func treeTypeLookup(l world.Landscape, val byte) world.TreeType {
	if val < 0x10 {
		return world.TreeInvalid
	}

	switch l {
	case world.LandscapeTemperate:
		return world.TreeTemperate + world.TreeType((val>>4-1)%world.TreeCountTemperate)
	case world.LandscapeArctic:
		return world.TreeSubArctic + world.TreeType((val>>4-1)%world.TreeCountSubArctic)
	case world.LandscapeTropic:
		return world.TreeRainforest + world.TreeType((val>>4-1)%world.TreeCountSubTropical)
	case world.LandscapeToyland:
		return world.TreeToyland + world.TreeType((val>>4-1)%world.TreeCountToyland)
	}
	return world.TreeInvalid
}
