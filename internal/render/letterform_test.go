package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStandardGlyphPolygons(t *testing.T) {
	got := StandardGlyph(100).Polygons(50, 50)
	want := [4]Polygon{
		{{17.5, 75}, {17.5, 25}, {29.5, 25}, {29.5, 75}},
		{{70.5, 75}, {70.5, 25}, {82.5, 25}, {82.5, 75}},
		{{17.5, 25}, {24.7, 25}, {50, 53}, {42.8, 53}},
		{{75.3, 25}, {82.5, 25}, {57.2, 53}, {50, 53}},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("polygons mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphIsMirrorSymmetric(t *testing.T) {
	const cx, cy = 40.0, 37.0
	for _, g := range []Glyph{StandardGlyph(180), BoldGlyph(21)} {
		polys := g.Polygons(cx, cy)
		check := func(a, b Polygon, order [4]int) {
			t.Helper()
			for i, j := range order {
				mx := 2*cx - a[i].X
				if math.Abs(mx-b[j].X) > 1e-9 || math.Abs(a[i].Y-b[j].Y) > 1e-9 {
					t.Errorf("%+v: vertex %d mirrors to (%v,%v), want %v", g, i, mx, a[i].Y, b[j])
				}
			}
		}
		check(polys[0], polys[1], [4]int{3, 2, 1, 0})
		// Diagonals mirror with the top pair and valley pair swapped.
		check(polys[2], polys[3], [4]int{1, 0, 3, 2})
	}
}

func TestBoldGlyphStroke(t *testing.T) {
	tests := []struct {
		radius, stroke float64
	}{
		{21, 6},
		{5, 3},
		{100, 30},
	}
	for _, tt := range tests {
		if got := BoldGlyph(tt.radius).Stroke; got != tt.stroke {
			t.Errorf("BoldGlyph(%v).Stroke = %v, want %v", tt.radius, got, tt.stroke)
		}
	}
}

func TestDrawGlyphUsesOneColour(t *testing.T) {
	c := NewCanvas(48, 48)
	c.AntiAlias = false
	DrawGlyph(c, BoldGlyph(21), 24, 24, TealDeep)

	img := c.Image()
	count := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		count++
		if img.Pix[i] != TealDeep.R || img.Pix[i+1] != TealDeep.G || img.Pix[i+2] != TealDeep.B {
			t.Fatalf("pixel %d has colour %v", i/4, img.Pix[i:i+4])
		}
	}
	if count == 0 {
		t.Fatal("glyph painted nothing")
	}
}
