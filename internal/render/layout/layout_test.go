package layout

import (
	"image"
	"testing"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		size int
		want float64
	}{
		{1024, 512},
		{48, 24},
		{7, 3},
	}
	for _, tt := range tests {
		if x, y := Center(tt.size); x != tt.want || y != tt.want {
			t.Errorf("Center(%d) = %v,%v, want %v", tt.size, x, y, tt.want)
		}
	}
}

func TestSquareAroundAndClip(t *testing.T) {
	tests := []struct {
		name          string
		cx, cy, r     float64
		width, height int
		want          image.Rectangle
	}{
		{"inside", 50, 50, 10, 100, 100, image.Rect(39, 39, 62, 62)},
		{"top left overflow", 5, 5, 10, 100, 100, image.Rect(0, 0, 17, 17)},
		{"bottom right overflow", 95, 95, 10, 100, 100, image.Rect(84, 84, 100, 100)},
		{"disjoint", -50, -50, 10, 100, 100, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(SquareAround(tt.cx, tt.cy, tt.r), tt.width, tt.height)
			if !got.Eq(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsetAndNormalize(t *testing.T) {
	r := Inset(image.Rect(0, 0, 10, 10), 2)
	if !r.Eq(image.Rect(2, 2, 8, 8)) {
		t.Fatalf("Inset = %v", r)
	}
	if r := Inset(image.Rect(0, 0, 10, 10), 0); !r.Eq(image.Rect(0, 0, 10, 10)) {
		t.Fatalf("Inset by zero = %v", r)
	}
	flipped := image.Rectangle{Min: image.Pt(5, 6), Max: image.Pt(1, 2)}
	if n := Normalize(flipped); !n.Eq(image.Rect(1, 2, 5, 6)) {
		t.Fatalf("Normalize = %v", n)
	}
}

func TestSafeZone(t *testing.T) {
	z := SafeZone(1024)
	if !z.Eq(image.Rect(174, 174, 850, 850)) {
		t.Fatalf("SafeZone(1024) = %v", z)
	}
}
