package sapling

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Circle is a drawable, hit-testable circle. A StrokeWidth of zero draws a
// filled disc; above zero only the ring of that width is drawn, and border
// hit testing matches the drawn ring.
type Circle struct {
	Center      Point
	Color       color.Color
	StrokeWidth float64

	radius   float64
	diameter float64
}

// NewCircle returns a circle centered on center. strokeWidth zero means
// filled.
func NewCircle(center Point, radius float64, clr color.Color, strokeWidth float64) *Circle {
	return &Circle{
		Center:      center,
		Color:       clr,
		StrokeWidth: strokeWidth,
		radius:      radius,
		diameter:    radius * 2,
	}
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// SetRadius changes the radius and recomputes the derived diameter and
// bounding rectangle.
func (c *Circle) SetRadius(radius float64) {
	c.radius = radius
	c.diameter = radius * 2
}

// Bounds returns the diameter-by-diameter rectangle centered on Center.
func (c *Circle) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.radius,
		Y:      c.Center.Y - c.radius,
		Width:  c.diameter,
		Height: c.diameter,
	}
}

// Draw renders the circle onto dst.
func (c *Circle) Draw(dst *ebiten.Image) {
	x := float32(c.Center.X)
	y := float32(c.Center.Y)
	r := float32(c.radius)
	if c.StrokeWidth > 0 {
		vector.StrokeCircle(dst, x, y, r, float32(c.StrokeWidth), c.Color, true)
		return
	}
	vector.DrawFilledCircle(dst, x, y, r, c.Color, true)
}

// ContainsPoint reports whether p hits the circle, using the
// integer-truncated distance from the center. With borderOnly the test
// matches only the drawn ring: radius-StrokeWidth+1 up to radius inclusive.
func (c *Circle) ContainsPoint(p Point, borderOnly bool) bool {
	dist := math.Trunc(Distance(c.Center, p))
	if borderOnly {
		return dist <= c.radius && dist >= c.radius-c.StrokeWidth+1
	}
	return dist <= c.radius
}
