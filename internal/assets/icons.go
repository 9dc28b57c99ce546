// Package assets holds the builtin 1-bit icon bitmaps. Each bitmap is 8x8,
// row-major, MSB first, and scales up cleanly on the e-paper panel.
package assets

import "github.com/rook-computer/epdui/internal/widgets"

const iconSide = 8

var (
	gearBits = []byte{
		0x00, 0x5A, 0x3C, 0x66,
		0x66, 0x3C, 0x5A, 0x00,
	}
	homeBits = []byte{
		0x18, 0x3C, 0x7E, 0xFF,
		0x66, 0x66, 0x66, 0x7E,
	}
	powerBits = []byte{
		0x18, 0x18, 0x5A, 0x99,
		0x99, 0x81, 0x42, 0x3C,
	}
	clockBits = []byte{
		0x3C, 0x42, 0x91, 0x91,
		0x8D, 0x81, 0x42, 0x3C,
	}
	networkBits = []byte{
		0x00, 0x3C, 0x42, 0x18,
		0x24, 0x00, 0x18, 0x18,
	}
)

func GearIcon() *widgets.Icon    { return widgets.NewIcon(gearBits, iconSide, iconSide) }
func HomeIcon() *widgets.Icon    { return widgets.NewIcon(homeBits, iconSide, iconSide) }
func PowerIcon() *widgets.Icon   { return widgets.NewIcon(powerBits, iconSide, iconSide) }
func ClockIcon() *widgets.Icon   { return widgets.NewIcon(clockBits, iconSide, iconSide) }
func NetworkIcon() *widgets.Icon { return widgets.NewIcon(networkBits, iconSide, iconSide) }
