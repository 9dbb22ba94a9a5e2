// Package icons composes the app's icon variants from render primitives.
// Every variant is a pure function of palette and size: layers are drawn in
// a fixed order onto a fresh canvas and all geometry scales with size.
package icons

import (
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/render/layout"
)

// RenderFunc draws one variant at size x size pixels.
type RenderFunc func(p render.Palette, size int) *render.Canvas

// Variant names an output file and how to draw it.
type Variant struct {
	Name   string
	File   string
	Size   int
	Render RenderFunc
}

// Variants returns the icon suite in generation order.
func Variants() []Variant {
	return []Variant{
		{Name: "main", File: "icon.png", Size: 1024, Render: Main},
		{Name: "adaptive", File: "adaptive-icon.png", Size: 1024, Render: Adaptive},
		{Name: "splash", File: "splash-icon.png", Size: 288, Render: Splash},
		{Name: "favicon", File: "favicon.png", Size: 48, Render: Favicon},
	}
}

// Main is the full app icon: a shaded teal disc with gold rings around the
// orb and mark.
func Main(p render.Palette, size int) *render.Canvas {
	c := render.NewCanvas(size, size)
	cx, cy := layout.Center(size)
	s := float64(size)

	bg := trunc(s * 0.495)
	render.FillCircle(c, cx, cy, bg, p.TealDarkest.Opaque())

	render.RadialGradient(c, cx, cy, trunc(s*0.47), p.TealDeep, p.TealDarkest)

	ring := trunc(s * 0.488)
	render.StrokeCircle(c, cx, cy, ring, atLeast(2, s*0.005), p.GoldMid.Alpha(55))

	for i, mult := range []float64{0.80, 0.70, 0.60} {
		r := trunc(s * mult * 0.5)
		alpha := uint8(30 - i*7)
		render.StrokeCircle(c, cx, cy, r, atLeast(1, s*0.003), p.GoldMid.Alpha(alpha))
	}

	orb := trunc(s * 0.25)
	drawOrb(c, p, cx, cy, orb, 1.6)
	return c
}

// Adaptive carries only the foreground; the launcher supplies the
// background and mask, so the orb is sized for the safe zone.
func Adaptive(p render.Palette, size int) *render.Canvas {
	c := render.NewCanvas(size, size)
	cx, cy := layout.Center(size)
	s := float64(size)

	orb := trunc(s * 0.21)
	drawOrb(c, p, cx, cy, orb, 1.6)

	for i, mult := range []float64{1.35, 1.55, 1.75} {
		r := trunc(orb * mult)
		alpha := uint8(45 - i*12)
		render.StrokeCircle(c, cx, cy, r, atLeast(2, s*0.004), p.GoldMid.Alpha(alpha))
	}
	return c
}

// Splash is the orb and mark alone, filling most of the canvas.
func Splash(p render.Palette, size int) *render.Canvas {
	c := render.NewCanvas(size, size)
	cx, cy := layout.Center(size)

	orb := trunc(float64(size) * 0.40)
	drawOrb(c, p, cx, cy, orb, 1.55)
	return c
}

// Favicon is drawn with hard edges in two flat colours so it stays crisp
// at a few dozen pixels.
func Favicon(p render.Palette, size int) *render.Canvas {
	c := render.NewCanvas(size, size)
	c.AntiAlias = false
	cx, cy := layout.Center(size)

	r := trunc(float64(size) * 0.44)
	render.FillCircle(c, cx, cy, r, p.GoldMid.Opaque())
	render.DrawGlyph(c, render.BoldGlyph(r), cx, cy, p.TealDeep)
	return c
}

// drawOrb paints the gold gradient orb with the mark scaled to glyphScale
// times its radius.
func drawOrb(c *render.Canvas, p render.Palette, cx, cy, radius, glyphScale float64) {
	render.RadialGradient(c, cx, cy, radius, p.GoldBright, p.GoldDeep)
	render.DrawGlyph(c, render.StandardGlyph(radius*glyphScale), cx, cy, p.TealDeep)
}

func trunc(v float64) float64 { return float64(int(v)) }

func atLeast(lo int, v float64) float64 { return float64(max(lo, int(v))) }
