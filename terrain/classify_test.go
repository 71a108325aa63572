package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilecraft/geomap/raster"
	"github.com/tilecraft/geomap/world"
)

// pixel builds a single-pixel raster, which an import stretches over the
// whole grid so exactly the center tile of a 3x3 map receives it.
func pixel(r, g, b byte) *raster.Raster {
	return &raster.Raster{Width: 1, Height: 1, Pix: []byte{r, g, b}}
}

func center(m *world.Map) world.TileIndex { return m.TileXY(1, 1) }

func TestApplyTerrainChannels(t *testing.T) {
	// Bright red with a top-of-range draw collapses grass to dirt.
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMax}}
	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(255, 0, 0), RotationCounterClockwise))
	assert.Equal(t, world.ClearGrass, m.ClearGround(center(m)))
	assert.Equal(t, uint(0), m.Density(center(m)))
	assert.Equal(t, 1, rng.calls)

	// Bright green turns the tile rough.
	m = world.NewMap(3, 3, world.LandscapeTemperate)
	rng = &stubRandom{words: []uint32{wordMin}}
	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(0, 255, 0), RotationCounterClockwise))
	assert.Equal(t, world.ClearRough, m.ClearGround(center(m)))

	// Bright blue turns it rocky.
	m = world.NewMap(3, 3, world.LandscapeTemperate)
	rng = &stubRandom{words: []uint32{wordMin}}
	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(0, 0, 255), RotationCounterClockwise))
	assert.Equal(t, world.ClearRocks, m.ClearGround(center(m)))

	// Channels below the threshold neither mutate nor draw.
	m = world.NewMap(3, 3, world.LandscapeTemperate)
	rng = &stubRandom{words: []uint32{wordMin}}
	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(5, 5, 5), RotationCounterClockwise))
	assert.Equal(t, world.ClearGrass, m.ClearGround(center(m)))
	assert.Equal(t, uint(3), m.Density(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyTerrainSkipsWater(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.MakeSea(center(m))
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(255, 255, 255), RotationCounterClockwise))

	assert.Equal(t, world.TileWater, m.TileType(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyTerrainMergesTreeGround(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.PlantTrees(center(m), world.TreeTemperate, 0, 3)
	rng := &stubRandom{words: []uint32{wordMin}}

	// Rough ground lands beneath the trees rather than clearing them.
	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(0, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.TileTrees, m.TileType(center(m)))
	assert.Equal(t, world.TreeGroundRough, m.TreeGround(center(m)))
}

func TestApplyTerrainRocksClearTrees(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.PlantTrees(center(m), world.TreeTemperate, 0, 3)
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryTerrain, pixel(0, 0, 255), RotationCounterClockwise))

	assert.Equal(t, world.TileClear, m.TileType(center(m)))
	assert.Equal(t, world.ClearRocks, m.ClearGround(center(m)))
}

func TestApplyFields(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryFields, pixel(0x30, 255, 0), RotationCounterClockwise))

	tile := center(m)
	assert.Equal(t, world.TileClear, m.TileType(tile))
	assert.Equal(t, world.ClearFields, m.ClearGround(tile))
	assert.Equal(t, world.FieldType(2), m.Field(tile))
	assert.Equal(t, world.IndustryNone, m.Industry(tile))
}

func TestApplyFieldsCropWrap(t *testing.T) {
	tests := []struct {
		r    byte
		want world.FieldType
	}{
		{0x0f, 3},
		{0x10, 0},
		{0xa0, 0},
		{0xff, 5},
	}

	for _, tt := range tests {
		m := world.NewMap(3, 3, world.LandscapeTemperate)
		rng := &stubRandom{words: []uint32{wordMin}}
		require.NoError(t, Apply(m, rng, CategoryFields, pixel(tt.r, 255, 0), RotationCounterClockwise))
		assert.Equal(t, tt.want, m.Field(center(m)), "red %#x", tt.r)
	}
}

func TestApplyFieldsLowRed(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryFields, pixel(0x0e, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.ClearGrass, m.ClearGround(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyFieldsSkipsWater(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.MakeSea(center(m))
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryFields, pixel(0x30, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.TileWater, m.TileType(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyWaterAllBlack(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMin}}

	require.NoError(t, Apply(m, rng, CategoryWater, pixel(0, 0, 0), RotationCounterClockwise))

	assert.Equal(t, world.TileClear, m.TileType(center(m)))
	assert.Equal(t, world.ClearGrass, m.ClearGround(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyWaterCanal(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{0xdeadbeef}}

	require.NoError(t, Apply(m, rng, CategoryWater, pixel(255, 0, 0), RotationCounterClockwise))

	tile := center(m)
	assert.Equal(t, world.TileWater, m.TileType(tile))
	assert.Equal(t, world.WaterCanal, m.WaterClass(tile))
	assert.Equal(t, world.OwnerNone, m.Owner(tile))
	assert.Equal(t, 1, rng.calls)
}

func TestApplyWaterCanalNeedsFlat(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.SetSlope(center(m), world.SlopeW)
	rng := &stubRandom{words: []uint32{7}}

	// Sloped without a half tile: neither canal nor the river fallback.
	require.NoError(t, Apply(m, rng, CategoryWater, pixel(255, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.TileClear, m.TileType(center(m)))
	assert.Zero(t, rng.calls)
}

func TestApplyWaterRiverFallback(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.SetSlope(center(m), world.SlopeW|world.SlopeHalftile)
	rng := &stubRandom{words: []uint32{7}}

	// Canal channel set but a half-tile slope: the river takes over.
	require.NoError(t, Apply(m, rng, CategoryWater, pixel(255, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.WaterRiver, m.WaterClass(center(m)))
	assert.Equal(t, 1, rng.calls)
}

func TestApplyWaterRiver(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{7}}

	require.NoError(t, Apply(m, rng, CategoryWater, pixel(0, 255, 0), RotationCounterClockwise))

	tile := center(m)
	assert.Equal(t, world.WaterRiver, m.WaterClass(tile))
	assert.Equal(t, world.OwnerWater, m.Owner(tile))
	assert.Equal(t, 1, rng.calls)
}

func TestApplyWaterSea(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{7}}

	require.NoError(t, Apply(m, rng, CategoryWater, pixel(0, 0, 255), RotationCounterClockwise))

	tile := center(m)
	assert.Equal(t, world.TileWater, m.TileType(tile))
	assert.Equal(t, world.WaterSea, m.WaterClass(tile))
	assert.Zero(t, rng.calls)
}

func TestApplyWaterSeaNeedsSeaLevel(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	m.SetHeight(center(m), 1)
	rng := &stubRandom{words: []uint32{7}}

	require.NoError(t, Apply(m, rng, CategoryWater, pixel(0, 0, 255), RotationCounterClockwise))

	assert.Equal(t, world.TileClear, m.TileType(center(m)))
}

func TestApplyTrees(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMax}}

	// Low red defaults to adult growth, bright green gives full density,
	// blue picks the species directly.
	require.NoError(t, Apply(m, rng, CategoryTrees, pixel(0, 255, 0x20), RotationCounterClockwise))

	tile := center(m)
	require.Equal(t, world.TileTrees, m.TileType(tile))
	assert.Equal(t, world.TreeTemperate+1, m.Tree(tile))
	assert.Equal(t, uint(3), m.TreeCount(tile))
	assert.Equal(t, uint(3), m.TreeGrowth(tile))
	assert.Equal(t, 1, rng.calls)
}

func TestApplyTreesGrowth(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMax}}

	require.NoError(t, Apply(m, rng, CategoryTrees, pixel(255, 255, 0x20), RotationCounterClockwise))

	tile := center(m)
	require.Equal(t, world.TileTrees, m.TileType(tile))
	assert.Equal(t, uint(6), m.TreeGrowth(tile))
	assert.Equal(t, 2, rng.calls)
}

func TestApplyTreesSparsity(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMax}}

	// Green at the bottom anchor samples density -1: nothing planted and
	// no species draw after the bail-out.
	require.NoError(t, Apply(m, rng, CategoryTrees, pixel(0, 0x0f, 0x20), RotationCounterClockwise))

	assert.Equal(t, world.TileClear, m.TileType(center(m)))
	assert.Equal(t, 1, rng.calls)
}

func TestApplyTreesRandomSpecies(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)

	// The second word feeds the species seed; its top byte scaled over
	// the twelve temperate species picks the seventh.
	rng := &stubRandom{words: []uint32{wordMax, 0x80000000}}

	require.NoError(t, Apply(m, rng, CategoryTrees, pixel(0, 255, 0), RotationCounterClockwise))

	tile := center(m)
	require.Equal(t, world.TileTrees, m.TileType(tile))
	assert.Equal(t, world.TreeTemperate+6, m.Tree(tile))
	assert.Equal(t, 2, rng.calls)
}

func TestApplyTreesDesertCactus(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTropic)
	m.SetTropicZone(center(m), world.TropicZoneDesert)

	// Low species seeds in the desert zone grow a cactus.
	rng := &stubRandom{words: []uint32{wordMax, 0x05000000}}
	require.NoError(t, Apply(m, rng, CategoryTrees, pixel(0, 255, 0), RotationCounterClockwise))
	assert.Equal(t, world.TreeCactus, m.Tree(center(m)))

	// High seeds give up rather than plant off-palette species.
	m2 := world.NewMap(3, 3, world.LandscapeTropic)
	m2.SetTropicZone(center(m2), world.TropicZoneDesert)
	rng = &stubRandom{words: []uint32{wordMax, 0xff000000}}
	require.NoError(t, Apply(m2, rng, CategoryTrees, pixel(0, 255, 0), RotationCounterClockwise))
	assert.Equal(t, world.TileClear, m2.TileType(center(m2)))
}

func TestApplyTreesSpeciesLookup(t *testing.T) {
	tests := []struct {
		landscape world.Landscape
		val       byte
		want      world.TreeType
	}{
		{world.LandscapeTemperate, 0x10, world.TreeTemperate},
		{world.LandscapeTemperate, 0xff, world.TreeTemperate + 2},
		{world.LandscapeArctic, 0x30, world.TreeSubArctic + 2},
		{world.LandscapeTropic, 0x60, world.TreeRainforest + 1},
		{world.LandscapeToyland, 0xa0, world.TreeToyland},
	}

	for _, tt := range tests {
		got := treeTypeLookup(tt.landscape, tt.val)
		assert.Equal(t, tt.want, got, "%s %#x", tt.landscape, tt.val)
	}

	assert.Equal(t, world.TreeInvalid, treeTypeLookup(world.LandscapeTemperate, 0x0f))
}

func TestApplySnow(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeArctic)
	rng := &stubRandom{words: []uint32{wordMax}}

	require.NoError(t, Apply(m, rng, CategorySnow, pixel(0, 0, 255), RotationCounterClockwise))

	tile := center(m)
	assert.True(t, m.IsSnow(tile))
	assert.Equal(t, world.ClearSnow, m.ClearGround(tile))
	assert.Equal(t, world.ClearGrass, m.RawClearGround(tile))
	assert.Equal(t, uint(3), m.Density(tile))
}

func TestApplySnowLowBlue(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeArctic)
	rng := &stubRandom{words: []uint32{wordMax}}

	// Bottom anchor samples density -1: no snow.
	require.NoError(t, Apply(m, rng, CategorySnow, pixel(0, 0, 0x0f), RotationCounterClockwise))

	assert.False(t, m.IsSnow(center(m)))
	assert.Equal(t, 1, rng.calls)
}

func TestApplySnowOnTrees(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeArctic)
	m.PlantTrees(center(m), world.TreeSubArctic, 0, 3)
	rng := &stubRandom{words: []uint32{wordMax}}

	require.NoError(t, Apply(m, rng, CategorySnow, pixel(0, 0, 255), RotationCounterClockwise))

	assert.Equal(t, world.TreeGroundSnowDesert, m.TreeGround(center(m)))
}

func TestApplySnowKeepsRoughTrees(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeArctic)
	m.SetClearGround(center(m), world.ClearRough, 3)
	m.PlantTrees(center(m), world.TreeSubArctic, 0, 3)
	rng := &stubRandom{words: []uint32{wordMax}}

	require.NoError(t, Apply(m, rng, CategorySnow, pixel(0, 0, 255), RotationCounterClockwise))

	assert.Equal(t, world.TreeGroundRoughSnow, m.TreeGround(center(m)))
}

func TestApplyDesert(t *testing.T) {
	// Bright red lays dense desert; green past the cutoff flags the zone.
	m := world.NewMap(3, 3, world.LandscapeTropic)
	rng := &stubRandom{words: []uint32{wordMax}}
	require.NoError(t, Apply(m, rng, CategoryDesert, pixel(255, 255, 0), RotationCounterClockwise))
	assert.Equal(t, world.ClearDesert, m.ClearGround(center(m)))
	assert.Equal(t, uint(3), m.Density(center(m)))
	assert.Equal(t, world.TropicZoneDesert, m.TropicZone(center(m)))

	// Mid red keeps the sparse density and leaves the zone alone.
	m = world.NewMap(3, 3, world.LandscapeTropic)
	rng = &stubRandom{words: []uint32{wordMax}}
	require.NoError(t, Apply(m, rng, CategoryDesert, pixel(0x7f, 0, 0), RotationCounterClockwise))
	assert.Equal(t, world.ClearDesert, m.ClearGround(center(m)))
	assert.Equal(t, uint(1), m.Density(center(m)))
	assert.Equal(t, world.TropicZoneNormal, m.TropicZone(center(m)))
}

func TestApplyDesertLowRedSkipsZone(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTropic)
	rng := &stubRandom{words: []uint32{wordMin}}

	// The density sample bails out before the zone flag is considered.
	require.NoError(t, Apply(m, rng, CategoryDesert, pixel(0x0f, 255, 0), RotationCounterClockwise))

	assert.Equal(t, world.ClearGrass, m.ClearGround(center(m)))
	assert.Equal(t, world.TropicZoneNormal, m.TropicZone(center(m)))
}

func TestApplyTropics(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b byte
		want    world.TropicZone
	}{
		{"red wins", 255, 255, 255, world.TropicZoneDesert},
		{"green next", 0, 255, 255, world.TropicZoneRainforest},
		{"blue last", 0, 0, 255, world.TropicZoneNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := world.NewMap(3, 3, world.LandscapeTropic)
			m.SetTropicZone(center(m), world.TropicZoneRainforest)
			rng := &stubRandom{words: []uint32{wordMin}}

			require.NoError(t, Apply(m, rng, CategoryTropics, pixel(tt.r, tt.g, tt.b), RotationCounterClockwise))

			assert.Equal(t, tt.want, m.TropicZone(center(m)))
			assert.Zero(t, rng.calls)
		})
	}
}

func TestApplyTropicsThresholdStrict(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTropic)
	m.SetTropicZone(center(m), world.TropicZoneRainforest)
	rng := &stubRandom{words: []uint32{wordMin}}

	// Exactly at the cutoff is not past it.
	require.NoError(t, Apply(m, rng, CategoryTropics, pixel(0xf0, 0xf0, 0xf0), RotationCounterClockwise))

	assert.Equal(t, world.TropicZoneRainforest, m.TropicZone(center(m)))
}

func TestApplyRejectsUnknown(t *testing.T) {
	m := world.NewMap(3, 3, world.LandscapeTemperate)
	rng := &stubRandom{words: []uint32{wordMin}}

	assert.Error(t, Apply(m, rng, Category(99), pixel(0, 0, 0), RotationCounterClockwise))
	assert.Error(t, Apply(m, rng, CategoryWater, pixel(0, 0, 0), Rotation(9)))
}

func TestParseCategory(t *testing.T) {
	for want := CategoryTerrain; want <= CategoryTropics; want++ {
		got, err := ParseCategory(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCategory("lava")
	assert.Error(t, err)
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation("clockwise")
	require.NoError(t, err)
	assert.Equal(t, RotationClockwise, r)

	r, err = ParseRotation("ccw")
	require.NoError(t, err)
	assert.Equal(t, RotationCounterClockwise, r)

	_, err = ParseRotation("flipped")
	assert.Error(t, err)
}
