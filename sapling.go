package sapling

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Point is a 2D coordinate used for positions, sizes, and cursor locations
// throughout the API.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point. Use it at API boundaries where
// a caller has loose x/y values rather than a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Sqrt((b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ClipImage copies the region r of src into a new image. Unlike
// ebiten.Image.SubImage the result does not share pixels with src, so it
// stays valid after src is redrawn or disposed.
func ClipImage(src *ebiten.Image, r Rect) *ebiten.Image {
	clipped := ebiten.NewImage(int(r.Width), int(r.Height))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-r.X, -r.Y)
	clipped.DrawImage(src, op)
	return clipped
}
