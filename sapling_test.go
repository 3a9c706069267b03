package sapling

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 5},
		{"same point", Pt(7, -2), Pt(7, -2), 0},
		{"horizontal", Pt(-3, 1), Pt(2, 1), 5},
		{"vertical", Pt(0, 10), Pt(0, 2), 8},
		{"diagonal", Pt(1, 1), Pt(2, 2), math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a, b := Pt(-5, 12), Pt(9, 3)
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance(a, b) = %v, Distance(b, a) = %v", Distance(a, b), Distance(b, a))
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Pt(50, 40), true},
		{"top-left corner", Pt(10, 20), true},
		{"bottom-right corner", Pt(110, 70), true},
		{"left edge", Pt(10, 40), true},
		{"right edge", Pt(110, 40), true},
		{"outside left", Pt(9, 40), false},
		{"outside right", Pt(111, 40), false},
		{"outside above", Pt(50, 19), false},
		{"outside below", Pt(50, 71), false},
		{"far outside", Pt(999, 999), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.p)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.expect)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 4, 4}, true},
		{"sharing edge", Rect{10, 0, 5, 10}, true},
		{"separate", Rect{20, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.expect {
				t.Errorf("Rect%v.Intersects(%v) = %v, want %v", r, tt.other, got, tt.expect)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	want := Pt(60, 45)
	if got := r.Center(); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestClipImageSizeAndIndependence(t *testing.T) {
	src := newTestImage(32, 32)

	clipped := ClipImage(src, Rect{8, 8, 16, 12})

	b := clipped.Bounds()
	if b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("clipped size = %dx%d, want 16x12", b.Dx(), b.Dy())
	}

	// The clip is a copy: disposing the source must not invalidate it.
	src.Deallocate()
	if clipped.Bounds().Dx() != 16 {
		t.Error("clipped image invalidated by source deallocation")
	}
}
