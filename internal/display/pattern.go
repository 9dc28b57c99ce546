package display

// Pattern is an 8x8 1-bit fill texture. Patterns stand in for gray levels
// on a two-color panel.
type Pattern int

const (
	PatternSolid Pattern = iota
	PatternStripes
	PatternDots
	PatternCheckerboard
	PatternDiagonalStripes
	PatternCrossHatch
	PatternSparseDots
	PatternVerySparseDots
)

// One byte per row, MSB is the leftmost pixel.
var patterns = [...][8]byte{
	PatternSolid:           {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
	PatternStripes:         {0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00},
	PatternDots:            {0x88, 0x00, 0x22, 0x00, 0x88, 0x00, 0x22, 0x00},
	PatternCheckerboard:    {0xF0, 0xF0, 0xF0, 0xF0, 0x0F, 0x0F, 0x0F, 0x0F},
	PatternDiagonalStripes: {0x88, 0x44, 0x22, 0x11, 0x88, 0x44, 0x22, 0x11},
	PatternCrossHatch:      {0xFF, 0x88, 0x88, 0x88, 0xFF, 0x88, 0x88, 0x88},
	PatternSparseDots:      {0x80, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00},
	PatternVerySparseDots:  {0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}

func patternBit(p Pattern, x, y int) bool {
	if p < 0 || int(p) >= len(patterns) {
		p = PatternSolid
	}
	row := patterns[p][y&7]
	return row&(0x80>>(x&7)) != 0
}
