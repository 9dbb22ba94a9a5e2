package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype/raster"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Shapes are rasterized in a space where pixel (x, y) covers
// [x, x+1) x [y, y+1); adding half maps a pixel coordinate to its centre.
const half = 0.5

// kappa places cubic control points so four segments approximate an ellipse.
const kappa = 0.5522847498307936

// Canvas is an offscreen RGBA surface, transparent until drawn on.
type Canvas struct {
	img *image.RGBA

	// AntiAlias blends shape edges by coverage. When false a shape pixel is
	// either painted in full or left untouched, so only the exact source
	// colours ever reach the buffer.
	AntiAlias bool
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height)), AntiAlias: true}
}

// Image exposes the backing buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetPixel replaces the pixel at (x, y). Writes outside the canvas are dropped.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.Set(x, y, col)
}

func (c *Canvas) FillPolygon(pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	z := c.newVectorRasterizer()
	z.MoveTo(float32(pts[0].X+half), float32(pts[0].Y+half))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X+half), float32(p.Y+half))
	}
	z.ClosePath()
	c.composite(c.vectorMask(z), col)
}

// FillEllipse covers the pixels from cx-rx to cx+rx and cy-ry to cy+ry.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.NRGBA) {
	if rx < 0 || ry < 0 {
		return
	}
	x, y := cx+half, cy+half
	ex, ey := rx+half, ry+half
	kx, ky := ex*kappa, ey*kappa

	z := c.newVectorRasterizer()
	z.MoveTo(f32(x+ex), f32(y))
	z.CubeTo(f32(x+ex), f32(y+ky), f32(x+kx), f32(y+ey), f32(x), f32(y+ey))
	z.CubeTo(f32(x-kx), f32(y+ey), f32(x-ex), f32(y+ky), f32(x-ex), f32(y))
	z.CubeTo(f32(x-ex), f32(y-ky), f32(x-kx), f32(y-ey), f32(x), f32(y-ey))
	z.CubeTo(f32(x+kx), f32(y-ey), f32(x+ex), f32(y-ky), f32(x+ex), f32(y))
	z.ClosePath()
	c.composite(c.vectorMask(z), col)
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, width float64, col color.NRGBA) {
	if width <= 0 {
		return
	}
	// The outer edge of the stroke sits on the filled ellipse's edge.
	mx, my := rx+half-width/2, ry+half-width/2
	if mx <= 0 || my <= 0 {
		c.FillEllipse(cx, cy, rx, ry, col)
		return
	}
	x, y := cx+half, cy+half

	n := arcSegments(math.Max(mx, my))
	var path raster.Path
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i%n) / float64(n)
		p := fixedPoint(x+mx*math.Cos(theta), y+my*math.Sin(theta))
		if i == 0 {
			path.Start(p)
		} else {
			path.Add1(p)
		}
	}

	w, h := c.Size()
	r := raster.NewRasterizer(w, h)
	r.UseNonZeroWinding = true
	r.AddStroke(path, fixed.Int26_6(math.Round(width*64)), raster.RoundCapper, raster.RoundJoiner)
	mask := image.NewAlpha(c.img.Bounds())
	r.Rasterize(raster.NewAlphaSrcPainter(mask))
	c.composite(mask, col)
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: Compression}
	return enc.Encode(w, c.img)
}

func (c *Canvas) newVectorRasterizer() *vector.Rasterizer {
	w, h := c.Size()
	return vector.NewRasterizer(w, h)
}

func (c *Canvas) vectorMask(z *vector.Rasterizer) *image.Alpha {
	mask := image.NewAlpha(c.img.Bounds())
	z.DrawOp = xdraw.Src
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// composite paints col through mask with source-over.
func (c *Canvas) composite(mask *image.Alpha, col color.NRGBA) {
	if !c.AntiAlias {
		for i, a := range mask.Pix {
			if a >= 0x80 {
				mask.Pix[i] = 0xFF
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	xdraw.DrawMask(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, mask, image.Point{}, xdraw.Over)
}

// arcSegments keeps each polyline chord around four pixels long.
func arcSegments(r float64) int {
	n := int(math.Ceil(2 * math.Pi * r / 4))
	if n < 32 {
		n = 32
	}
	return n
}

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func f32(v float64) float32 { return float32(v) }
