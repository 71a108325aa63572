/*
Package world models the tile grid that raster imports paint onto, along
with the random source that keeps those imports reproducible.
*/
package world

// TileIndex addresses a single tile of a grid. Indices are only meaningful
// on the grid that produced them.
type TileIndex uint32

// Grid is the mutable tile grid an import operates on. Implementations own
// the coordinate space and the tile effects; importers never construct or
// interpret indices themselves.
type Grid interface {
	// SizeX returns the number of tile columns.
	SizeX() uint
	// SizeY returns the number of tile rows.
	SizeY() uint
	// TileXY returns the index of the tile in column x, row y.
	TileXY(x, y uint) TileIndex
	// IsInner reports whether the tile sits clear of the grid border.
	IsInner(tile TileIndex) bool

	TileType(tile TileIndex) TileType
	Slope(tile TileIndex) Slope
	Height(tile TileIndex) uint
	Owner(tile TileIndex) Owner
	IsSnow(tile TileIndex) bool
	TreeGround(tile TileIndex) TreeGround
	TropicZone(tile TileIndex) TropicZone
	Landscape() Landscape

	SetClearGround(tile TileIndex, ground ClearGround, density uint)
	SetTreeGround(tile TileIndex, ground TreeGround, density uint)
	MakeClear(tile TileIndex, ground ClearGround, density uint)
	MakeField(tile TileIndex, field FieldType, industry IndustryID)
	MakeCanal(tile TileIndex, owner Owner, random uint32)
	MakeRiver(tile TileIndex, random uint32)
	MakeSea(tile TileIndex)
	MakeSnow(tile TileIndex, density uint)
	SetTropicZone(tile TileIndex, zone TropicZone)

	CanPlantTrees(tile TileIndex, allowDesert bool) bool
	PlantTrees(tile TileIndex, tree TreeType, count, growth uint)
	RandomTreeType(tile TileIndex, seed uint8) TreeType
}
