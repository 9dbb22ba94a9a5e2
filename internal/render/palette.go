package render

import "image/color"

// Color is an RGB triple. Alpha is supplied separately where a layer needs it.
type Color struct {
	R, G, B uint8
}

// Alpha returns c with the given non-premultiplied alpha.
func (c Color) Alpha(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Opaque returns c at full opacity.
func (c Color) Opaque() color.NRGBA { return c.Alpha(0xFF) }

// Palette maps the semantic colour names used by the icon layers.
// It is built once and passed by value; nothing mutates it afterwards.
type Palette struct {
	GoldBright  Color
	GoldMid     Color
	GoldDeep    Color
	TealDeep    Color
	TealDarker  Color
	TealDarkest Color
}

func DefaultPalette() Palette {
	return Palette{
		GoldBright:  GoldBright,
		GoldMid:     GoldMid,
		GoldDeep:    GoldDeep,
		TealDeep:    TealDeep,
		TealDarker:  TealDarker,
		TealDarkest: TealDarkest,
	}
}

// Lookup resolves a snake_case palette name such as "gold_bright".
func (p Palette) Lookup(name string) (Color, bool) {
	switch name {
	case "gold_bright":
		return p.GoldBright, true
	case "gold_mid":
		return p.GoldMid, true
	case "gold_deep":
		return p.GoldDeep, true
	case "teal_deep":
		return p.TealDeep, true
	case "teal_darker":
		return p.TealDarker, true
	case "teal_darkest":
		return p.TealDarkest, true
	}
	return Color{}, false
}
