package model

// PaletteColor names a display colour. Mapping names to actual colours is
// left to the renderer.
type PaletteColor string

// Palette colours in assignment order.
const (
	ColorBlue   PaletteColor = "blue"
	ColorRed    PaletteColor = "red"
	ColorGreen  PaletteColor = "green"
	ColorOrange PaletteColor = "orange"
	ColorPurple PaletteColor = "purple"
	ColorPink   PaletteColor = "pink"
	ColorYellow PaletteColor = "yellow"
	ColorCyan   PaletteColor = "cyan"
)

// Palette is the fixed cycle of node colours.
var Palette = []PaletteColor{
	ColorBlue, ColorRed, ColorGreen, ColorOrange,
	ColorPurple, ColorPink, ColorYellow, ColorCyan,
}

// PaletteIndex maps a node number onto the palette cyclically, starting
// with node 1 at index 0.
func PaletteIndex(number int) int {
	size := len(Palette)

	index := (number - 1) % size
	if index < 0 {
		index += size
	}

	return index
}

// PaletteColorFor returns the palette colour for node number.
func PaletteColorFor(number int) PaletteColor {
	return Palette[PaletteIndex(number)]
}
