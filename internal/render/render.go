package render

import (
	"image/color"
	"io"
)

// Point is a position in pixel space. Integer values address pixel centres.
type Point struct {
	X, Y float64
}

// Drawer is the set of primitives icon layers are composed from. Canvas is
// the only implementation; layers never touch the pixel buffer directly.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	SetPixel(x, y int, c color.NRGBA)
	FillPolygon(pts []Point, c color.NRGBA)
	FillEllipse(cx, cy, rx, ry float64, c color.NRGBA)
	// StrokeEllipse draws an outline width pixels thick lying inside the
	// nominal radii.
	StrokeEllipse(cx, cy, rx, ry, width float64, c color.NRGBA)

	EncodePNG(w io.Writer) error
}

// FillCircle is a convenience over FillEllipse.
func FillCircle(d Drawer, cx, cy, r float64, c color.NRGBA) {
	d.FillEllipse(cx, cy, r, r, c)
}

// StrokeCircle is a convenience over StrokeEllipse.
func StrokeCircle(d Drawer, cx, cy, r, width float64, c color.NRGBA) {
	d.StrokeEllipse(cx, cy, r, r, width, c)
}
