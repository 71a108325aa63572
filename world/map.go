package world

// Map is an in-memory Grid. It backs the command line tools and the test
// suite; an embedding game would provide its own Grid over live map state.
type Map struct {
	sizeX, sizeY uint
	landscape    Landscape
	tiles        []tile
}

type tile struct {
	kind    TileType
	ground  ClearGround
	density uint8
	snow    bool

	owner  Owner
	height uint8
	slope  Slope

	field    FieldType
	industry IndustryID

	tree       TreeType
	treeCount  uint8
	treeGrowth uint8
	treeGround TreeGround

	water       WaterClass
	waterRandom uint8

	tropic TropicZone
}

// NewMap returns a flat grass grid of the given dimensions.
func NewMap(sizeX, sizeY uint, landscape Landscape) *Map {
	m := &Map{
		sizeX:     sizeX,
		sizeY:     sizeY,
		landscape: landscape,
		tiles:     make([]tile, sizeX*sizeY),
	}
	for i := range m.tiles {
		m.tiles[i] = tile{
			kind:     TileClear,
			ground:   ClearGrass,
			density:  3,
			owner:    OwnerNone,
			industry: IndustryNone,
			tree:     TreeInvalid,
		}
	}
	return m
}

func (m *Map) SizeX() uint { return m.sizeX }

func (m *Map) SizeY() uint { return m.sizeY }

// TileXY returns the index of the tile in column x, row y.
func (m *Map) TileXY(x, y uint) TileIndex {
	return TileIndex(y*m.sizeX + x)
}

// TileX returns the column of a tile.
func (m *Map) TileX(t TileIndex) uint { return uint(t) % m.sizeX }

// TileY returns the row of a tile.
func (m *Map) TileY(t TileIndex) uint { return uint(t) / m.sizeX }

// IsInner reports whether the tile sits clear of the grid border.
func (m *Map) IsInner(t TileIndex) bool {
	x, y := m.TileX(t), m.TileY(t)
	return x > 0 && y > 0 && x < m.sizeX-1 && y < m.sizeY-1
}

func (m *Map) TileType(t TileIndex) TileType { return m.tiles[t].kind }

func (m *Map) Slope(t TileIndex) Slope { return m.tiles[t].slope }

func (m *Map) Height(t TileIndex) uint { return uint(m.tiles[t].height) }

func (m *Map) Owner(t TileIndex) Owner { return m.tiles[t].owner }

// IsSnow reports whether a clear tile carries snow cover.
func (m *Map) IsSnow(t TileIndex) bool {
	return m.tiles[t].kind == TileClear && m.tiles[t].snow
}

func (m *Map) TreeGround(t TileIndex) TreeGround { return m.tiles[t].treeGround }

func (m *Map) TropicZone(t TileIndex) TropicZone { return m.tiles[t].tropic }

func (m *Map) Landscape() Landscape { return m.landscape }

// ClearGround returns the ground cover of a clear tile, reporting snow
// cover over whatever lies beneath it.
func (m *Map) ClearGround(t TileIndex) ClearGround {
	if m.IsSnow(t) {
		return ClearSnow
	}
	return m.tiles[t].ground
}

// RawClearGround returns the ground cover ignoring snow.
func (m *Map) RawClearGround(t TileIndex) ClearGround { return m.tiles[t].ground }

// Density returns the ground density of a tile.
func (m *Map) Density(t TileIndex) uint { return uint(m.tiles[t].density) }

// WaterClass reports how a water tile was made.
func (m *Map) WaterClass(t TileIndex) WaterClass { return m.tiles[t].water }

// Field returns the crop type of a field tile.
func (m *Map) Field(t TileIndex) FieldType { return m.tiles[t].field }

// Industry returns the industry a field tile belongs to.
func (m *Map) Industry(t TileIndex) IndustryID { return m.tiles[t].industry }

// Tree returns the species planted on a tree tile.
func (m *Map) Tree(t TileIndex) TreeType { return m.tiles[t].tree }

// TreeCount returns the number of extra trees on a tree tile.
func (m *Map) TreeCount(t TileIndex) uint { return uint(m.tiles[t].treeCount) }

// TreeGrowth returns the growth stage of a tree tile.
func (m *Map) TreeGrowth(t TileIndex) uint { return uint(m.tiles[t].treeGrowth) }

// SetSlope overrides the slope of a tile.
func (m *Map) SetSlope(t TileIndex, s Slope) { m.tiles[t].slope = s }

// SetHeight overrides the height of a tile.
func (m *Map) SetHeight(t TileIndex, h uint) { m.tiles[t].height = uint8(h) }

// SetOwner overrides the owner of a tile.
func (m *Map) SetOwner(t TileIndex, o Owner) { m.tiles[t].owner = o }

// SetClearGround rewrites the ground cover and density of a clear tile,
// leaving any snow cover in place.
func (m *Map) SetClearGround(t TileIndex, ground ClearGround, density uint) {
	ti := &m.tiles[t]
	ti.ground = ground
	ti.density = uint8(density)
}

// SetTreeGround rewrites the ground cover and density beneath a tree tile.
func (m *Map) SetTreeGround(t TileIndex, ground TreeGround, density uint) {
	ti := &m.tiles[t]
	ti.treeGround = ground
	ti.density = uint8(density)
}

// MakeClear resets the tile to bare clear ground. Terrain geometry and
// climate survive; everything else is discarded.
func (m *Map) MakeClear(t TileIndex, ground ClearGround, density uint) {
	ti := &m.tiles[t]
	*ti = tile{
		kind:     TileClear,
		ground:   ground,
		density:  uint8(density),
		owner:    OwnerNone,
		height:   ti.height,
		slope:    ti.slope,
		tropic:   ti.tropic,
		industry: IndustryNone,
		tree:     TreeInvalid,
	}
}

// MakeField turns the tile into a farm field.
func (m *Map) MakeField(t TileIndex, field FieldType, industry IndustryID) {
	m.MakeClear(t, ClearFields, 3)
	ti := &m.tiles[t]
	ti.field = field
	ti.industry = industry
}

// MakeCanal floods the tile as a canal held by owner.
func (m *Map) MakeCanal(t TileIndex, owner Owner, random uint32) {
	ti := &m.tiles[t]
	*ti = tile{
		kind:        TileWater,
		water:       WaterCanal,
		owner:       owner,
		waterRandom: uint8(random),
		height:      ti.height,
		slope:       ti.slope,
		tropic:      ti.tropic,
		industry:    IndustryNone,
		tree:        TreeInvalid,
	}
}

// MakeRiver floods the tile as a river.
func (m *Map) MakeRiver(t TileIndex, random uint32) {
	ti := &m.tiles[t]
	*ti = tile{
		kind:        TileWater,
		water:       WaterRiver,
		owner:       OwnerWater,
		waterRandom: uint8(random),
		height:      ti.height,
		slope:       ti.slope,
		tropic:      ti.tropic,
		industry:    IndustryNone,
		tree:        TreeInvalid,
	}
}

// MakeSea floods the tile as open water.
func (m *Map) MakeSea(t TileIndex) {
	ti := &m.tiles[t]
	*ti = tile{
		kind:     TileWater,
		water:    WaterSea,
		owner:    OwnerWater,
		height:   ti.height,
		slope:    ti.slope,
		tropic:   ti.tropic,
		industry: IndustryNone,
		tree:     TreeInvalid,
	}
}

// MakeSnow lays snow cover over a clear tile. Fields lose their crop and
// revert to grass beneath the snow.
func (m *Map) MakeSnow(t TileIndex, density uint) {
	ti := &m.tiles[t]
	ti.snow = true
	if ti.ground == ClearFields {
		ti.ground = ClearGrass
	}
	ti.density = uint8(density)
}

// SetTropicZone assigns the climate band of the tile.
func (m *Map) SetTropicZone(t TileIndex, zone TropicZone) {
	m.tiles[t].tropic = zone
}

// CanPlantTrees reports whether the tile can take trees. Fields and rocks
// refuse them; desert refuses them unless allowDesert is set.
func (m *Map) CanPlantTrees(t TileIndex, allowDesert bool) bool {
	if m.tiles[t].kind != TileClear {
		return false
	}
	if m.ClearGround(t) == ClearFields {
		return false
	}
	if m.RawClearGround(t) == ClearRocks {
		return false
	}
	if !allowDesert && m.ClearGround(t) == ClearDesert {
		return false
	}
	return true
}

// PlantTrees converts a clear tile into a tree tile, deriving the tree
// ground from the cover being planted over.
func (m *Map) PlantTrees(t TileIndex, tree TreeType, count, growth uint) {
	ti := &m.tiles[t]

	var ground TreeGround
	switch m.ClearGround(t) {
	case ClearGrass:
		ground = TreeGroundGrass
	case ClearRough:
		ground = TreeGroundRough
	case ClearSnow:
		if ti.ground == ClearRough {
			ground = TreeGroundRoughSnow
		} else {
			ground = TreeGroundSnowDesert
		}
	default:
		ground = TreeGroundSnowDesert
	}

	density := uint8(3)
	if m.ClearGround(t) != ClearRough {
		density = ti.density
	}

	*ti = tile{
		kind:       TileTrees,
		treeGround: ground,
		density:    density,
		tree:       tree,
		treeCount:  uint8(count),
		treeGrowth: uint8(growth),
		owner:      OwnerNone,
		height:     ti.height,
		slope:      ti.slope,
		tropic:     ti.tropic,
		industry:   IndustryNone,
	}
}

// RandomTreeType picks a species suited to the landscape, and in tropical
// landscapes to the climate band of the tile. seed spreads the choice over
// the run; in desert zones most seeds yield no tree at all.
func (m *Map) RandomTreeType(t TileIndex, seed uint8) TreeType {
	switch m.landscape {
	case LandscapeTemperate:
		return TreeTemperate + TreeType(uint(seed)*TreeCountTemperate/256)
	case LandscapeArctic:
		return TreeSubArctic + TreeType(uint(seed)*TreeCountSubArctic/256)
	case LandscapeTropic:
		switch m.tiles[t].tropic {
		case TropicZoneNormal:
			return TreeSubTropical + TreeType(uint(seed)*TreeCountSubTropical/256)
		case TropicZoneDesert:
			if seed > 12 {
				return TreeInvalid
			}
			return TreeCactus
		default:
			return TreeRainforest + TreeType(uint(seed)*TreeCountRainforest/256)
		}
	default:
		return TreeToyland + TreeType(uint(seed)*TreeCountToyland/256)
	}
}

// Census tallies the tiles of the grid by type.
func (m *Map) Census() map[TileType]uint {
	c := make(map[TileType]uint)
	for i := range m.tiles {
		c[m.tiles[i].kind]++
	}
	return c
}
