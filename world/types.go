package world

import "fmt"

// TileType is the broad classification of a tile.
type TileType uint8

const (
	TileClear TileType = iota
	TileTrees
	TileWater
	TileVoid
)

func (t TileType) String() string {
	switch t {
	case TileClear:
		return "clear"
	case TileTrees:
		return "trees"
	case TileWater:
		return "water"
	case TileVoid:
		return "void"
	}
	return "unknown"
}

// ClearGround is the ground cover of a clear tile.
type ClearGround uint8

const (
	ClearGrass ClearGround = iota
	ClearRough
	ClearRocks
	ClearFields
	ClearSnow
	ClearDesert
)

// TreeGround is the ground cover beneath a tree tile.
type TreeGround uint8

const (
	TreeGroundGrass TreeGround = iota
	TreeGroundRough
	TreeGroundSnowDesert
	TreeGroundShore
	TreeGroundRoughSnow
)

// TropicZone is the climate band of a tile in tropical landscapes.
type TropicZone uint8

const (
	TropicZoneNormal TropicZone = iota
	TropicZoneDesert
	TropicZoneRainforest
)

// Owner identifies who holds a tile. Company owners occupy the low values.
type Owner uint8

const (
	OwnerNone  Owner = 0x10
	OwnerWater Owner = 0x11
)

// Slope describes the inclination of a tile as a set of raised corners.
type Slope uint8

const (
	SlopeFlat  Slope = 0x00
	SlopeW     Slope = 0x01
	SlopeS     Slope = 0x02
	SlopeE     Slope = 0x04
	SlopeN     Slope = 0x08
	SlopeSteep Slope = 0x10

	// SlopeHalftile marks a slope with one half leveled, as left behind
	// by foundations.
	SlopeHalftile Slope = 0x20
)

// IsFlat reports whether no corner is raised.
func (s Slope) IsFlat() bool {
	return s == SlopeFlat
}

// IsHalftile reports whether one half of the tile has been leveled.
func (s Slope) IsHalftile() bool {
	return s&SlopeHalftile != 0
}

// FieldType selects the crop drawn on a farm field tile.
type FieldType uint8

// IndustryID ties a field tile to the industry that works it.
type IndustryID uint16

// IndustryNone marks a field without an industry.
const IndustryNone IndustryID = 0xffff

// WaterClass records how a water tile came to be.
type WaterClass uint8

const (
	WaterSea WaterClass = iota
	WaterCanal
	WaterRiver
)

// Landscape is the climate of a whole grid.
type Landscape uint8

const (
	LandscapeTemperate Landscape = iota
	LandscapeArctic
	LandscapeTropic
	LandscapeToyland
)

func (l Landscape) String() string {
	switch l {
	case LandscapeTemperate:
		return "temperate"
	case LandscapeArctic:
		return "arctic"
	case LandscapeTropic:
		return "tropic"
	case LandscapeToyland:
		return "toyland"
	}
	return "unknown"
}

// ParseLandscape maps a configuration name to a Landscape.
func ParseLandscape(s string) (Landscape, error) {
	switch s {
	case "temperate":
		return LandscapeTemperate, nil
	case "arctic":
		return LandscapeArctic, nil
	case "tropic":
		return LandscapeTropic, nil
	case "toyland":
		return LandscapeToyland, nil
	}
	return 0, fmt.Errorf("world: unknown landscape %q", s)
}
