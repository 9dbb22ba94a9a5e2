package render

import "math"

// Polygon is a quadrilateral in fixed winding order.
type Polygon [4]Point

// Glyph holds the proportions of the "M" mark in pixels.
type Glyph struct {
	Width  float64
	Height float64
	Stroke float64
	// Valley is the drop of the diagonals' meeting point below centre,
	// as a fraction of Height.
	Valley float64
	// OuterSlant and InnerSlant set the diagonal thickness at the top of
	// the bars and at the valley, as fractions of Stroke.
	OuterSlant float64
	InnerSlant float64
}

// StandardGlyph is the mark as drawn over the orb at icon sizes.
func StandardGlyph(size float64) Glyph {
	return Glyph{
		Width:      size * 0.65,
		Height:     size * 0.50,
		Stroke:     size * 0.12,
		Valley:     0.06,
		OuterSlant: 0.6,
		InnerSlant: 0.6,
	}
}

// BoldGlyph keeps the mark legible at favicon sizes: heavier strokes with a
// minimum of three pixels and a deeper valley.
func BoldGlyph(radius float64) Glyph {
	return Glyph{
		Width:      radius * 1.15,
		Height:     radius * 0.85,
		Stroke:     math.Max(3, math.Trunc(radius*0.30)),
		Valley:     0.08,
		OuterSlant: 0.7,
		InnerSlant: 0.5,
	}
}

// Polygons returns left bar, right bar, left diagonal and right diagonal.
func (g Glyph) Polygons(cx, cy float64) [4]Polygon {
	left, right := cx-g.Width/2, cx+g.Width/2
	top, bottom := cy-g.Height/2, cy+g.Height/2
	valley := cy + g.Height*g.Valley
	s := g.Stroke
	outer, inner := s*g.OuterSlant, s*g.InnerSlant

	return [4]Polygon{
		{{left, bottom}, {left, top}, {left + s, top}, {left + s, bottom}},
		{{right - s, bottom}, {right - s, top}, {right, top}, {right, bottom}},
		{{left, top}, {left + outer, top}, {cx, valley}, {cx - inner, valley}},
		{{right - outer, top}, {right, top}, {cx + inner, valley}, {cx, valley}},
	}
}

// DrawGlyph fills the four polygons of g centred on (cx, cy).
func DrawGlyph(d Drawer, g Glyph, cx, cy float64, c Color) {
	for _, poly := range g.Polygons(cx, cy) {
		d.FillPolygon(poly[:], c.Opaque())
	}
}
