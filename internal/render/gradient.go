package render

import (
	"math"

	"github.com/rook-computer/iconsmith/internal/render/layout"
)

// Lerp interpolates each channel independently and truncates the result.
// t is not clamped; callers keep it in [0,1].
func Lerp(c1, c2 Color, t float64) Color {
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return Color{R: ch(c1.R, c2.R), G: ch(c1.G, c2.G), B: ch(c1.B, c2.B)}
}

// Smoothstep eases t with zero slope at 0 and 1.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// RadialGradient paints every pixel within radius of (cx, cy) fully opaque,
// shading from inner at the centre to outer at the rim. Pixels outside the
// radius keep whatever was beneath them.
func RadialGradient(d Drawer, cx, cy, radius float64, inner, outer Color) {
	if radius <= 0 {
		return
	}
	width, height := d.Size()
	box := layout.Clip(layout.SquareAround(cx, cy, radius), width, height)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > radius {
				continue
			}
			t := Smoothstep(dist / radius)
			d.SetPixel(x, y, Lerp(inner, outer, t).Opaque())
		}
	}
}
