package layout

import "image"

// Center returns the pixel at the middle of a size x size canvas.
// Odd sizes round down, matching integer division.
func Center(size int) (float64, float64) {
	c := float64(size / 2)
	return c, c
}

// SquareAround returns the pixel box scanned for a disc of radius r centred
// on (cx, cy). It is padded by a pixel on each side so edge pixels are
// never missed, and may extend past the canvas.
func SquareAround(cx, cy, r float64) image.Rectangle {
	return Normalize(image.Rect(int(cx-r-1), int(cy-r-1), int(cx+r+2), int(cy+r+2)))
}

// Clip restricts rect to a width x height canvas anchored at the origin.
func Clip(rect image.Rectangle, width, height int) image.Rectangle {
	return Normalize(rect).Intersect(image.Rect(0, 0, width, height))
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SafeZone returns the square inside which adaptive icon content survives
// every launcher mask: the central 66% of the canvas.
func SafeZone(size int) image.Rectangle {
	return Inset(image.Rect(0, 0, size, size), size*17/100)
}
