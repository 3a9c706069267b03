package sapling

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four float64 values simultaneously, writing the
// interpolated values straight into the caller's variables. Create one via
// TweenFloat, TweenPoint, or TweenColor and call Update(dt) each tick.
//
// There is no global animation manager — callers pump Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	apply  func()
	// Done is set once every tween in the group has reached its target.
	// Further Update calls are no-ops.
	Done bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if g.apply != nil {
		g.apply()
	}
	g.Done = allDone
}

// TweenFloat creates a TweenGroup that animates *field to the given target
// over the specified duration using the easing function.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPoint creates a TweenGroup that animates both coordinates of *p to
// the target point over the specified duration. Useful for sliding a
// Circle's Center or any other Point-valued field.
func TweenPoint(p *Point, to Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenColor creates a TweenGroup that animates all four channels of *c to
// the target color over the specified duration. Channels interpolate in
// float space and are rounded back into *c after every update.
func TweenColor(c *color.RGBA, to color.RGBA, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	vals := &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
	targets := [4]uint8{to.R, to.G, to.B, to.A}
	for i := 0; i < 4; i++ {
		g.tweens[i] = gween.New(float32(vals[i]), float32(targets[i]), duration, fn)
		g.fields[i] = &vals[i]
	}
	g.apply = func() {
		c.R = roundChannel(vals[0])
		c.G = roundChannel(vals[1])
		c.B = roundChannel(vals[2])
		c.A = roundChannel(vals[3])
	}
	return g
}

// roundChannel converts an interpolated channel back to uint8, clamping
// against easing overshoot.
func roundChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
