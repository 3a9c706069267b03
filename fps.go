package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay draws the current FPS and TPS in a small box. The readout
// refreshes every half second at the default tick rate; drawing it every
// frame is cheap.
type FPSOverlay struct {
	// Pos is the top-left corner of the box.
	Pos Point

	img     *ebiten.Image
	refresh *Trigger
}

// NewFPSOverlay returns an overlay anchored at the top-left corner.
func NewFPSOverlay() *FPSOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSOverlay{
		img:     ebiten.NewImage(100, 32),
		refresh: NewTrigger(defaultTickRate / 2),
	}
}

// Draw renders the overlay onto dst, refreshing the readout when due.
func (o *FPSOverlay) Draw(dst *ebiten.Image) {
	if o.refresh.Fire() {
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.Pos.X, o.Pos.Y)
	dst.DrawImage(o.img, op)
}
