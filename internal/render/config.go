package render

import "image/png"

// Global render configuration for palette and encoding.
var (
	// Auric Veil palette: warm golds for the orb and mark, deep teals behind them.
	GoldBright  = Color{R: 255, G: 208, B: 102}
	GoldMid     = Color{R: 235, G: 180, B: 60}
	GoldDeep    = Color{R: 195, G: 145, B: 35}
	TealDeep    = Color{R: 18, G: 52, B: 68}
	TealDarker  = Color{R: 14, G: 44, B: 58}
	TealDarkest = Color{R: 10, G: 36, B: 48}

	// PNG output favours size; icons are written once and shipped.
	Compression = png.BestCompression
)
