package world

// TreeType identifies a tree species. Species sit in per-landscape runs
// starting at the bases below.
type TreeType uint8

const (
	TreeTemperate   TreeType = 0x00
	TreeSubArctic   TreeType = 0x0c
	TreeRainforest  TreeType = 0x14
	TreeCactus      TreeType = 0x1b
	TreeSubTropical TreeType = 0x1c
	TreeToyland     TreeType = 0x20
	TreeInvalid     TreeType = 0xff
)

// Number of species in each landscape run.
const (
	TreeCountTemperate   = 12
	TreeCountSubArctic   = 8
	TreeCountRainforest  = 7
	TreeCountSubTropical = 4
	TreeCountToyland     = 9
)
