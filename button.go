package sapling

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Default widget colors, used when the corresponding config field is nil.
var (
	defaultFill      = color.RGBA{255, 255, 255, 255}
	defaultHighlight = color.RGBA{150, 150, 150, 255}
	defaultClicked   = color.RGBA{100, 100, 100, 255}
	defaultLabel     = color.RGBA{0, 0, 0, 255}
	defaultBorder    = color.RGBA{0, 0, 0, 255}
)

// ButtonConfig configures a Button. Nil colors select the documented
// defaults; defaults are resolved once at construction.
type ButtonConfig struct {
	// Action runs synchronously when the button is activated. May be nil.
	// Panics from the action propagate to the Activate caller.
	Action func()
	Label  string
	Bounds Rect
	// Font renders the label. A nil Font draws no label.
	Font *Font

	Fill          color.Color // body color, default white
	HighlightFill color.Color // body color while highlighted, default grey
	ClickedFill   color.Color // body color for the click pulse, default dark grey
	LabelColor    color.Color // default black

	// StrokeWidth above zero draws only the body outline at that width
	// instead of a filled body.
	StrokeWidth float64
	// BorderWidth above zero draws a border on top of the body.
	BorderWidth float64
	BorderColor color.Color // default black
}

// Button is a rectangular widget with a centered label and an activation
// callback. Buttons do not hit-test their own input; the owning screen or
// Menu decides when to call Activate.
type Button struct {
	// Action runs on every activation. May be reassigned at any time.
	Action func()
	Label  string
	// Highlight selects the highlight colors on the next Draw. Menu sets
	// highlighting through DrawState instead, leaving this flag for direct
	// callers.
	Highlight bool

	font          *Font
	bounds        Rect
	fill          color.Color
	highlightFill color.Color
	clickedFill   color.Color
	labelColor    color.Color
	strokeWidth   float64
	borderWidth   float64
	borderColor   color.Color

	clicked bool
}

// NewButton returns a Button with cfg's nil colors resolved to defaults.
func NewButton(cfg ButtonConfig) *Button {
	return &Button{
		Action:        cfg.Action,
		Label:         cfg.Label,
		font:          cfg.Font,
		bounds:        cfg.Bounds,
		fill:          defaultColor(cfg.Fill, defaultFill),
		highlightFill: defaultColor(cfg.HighlightFill, defaultHighlight),
		clickedFill:   defaultColor(cfg.ClickedFill, defaultClicked),
		labelColor:    defaultColor(cfg.LabelColor, defaultLabel),
		strokeWidth:   cfg.StrokeWidth,
		borderWidth:   cfg.BorderWidth,
		borderColor:   defaultColor(cfg.BorderColor, defaultBorder),
	}
}

func defaultColor(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

// Bounds returns the button's rectangle.
func (b *Button) Bounds() Rect {
	return b.bounds
}

// SetBounds moves or resizes the button.
func (b *Button) SetBounds(r Rect) {
	b.bounds = r
}

// Clicked reports whether the button was activated since the last Draw.
// Draw clears the flag, so the clicked state is a one-frame pulse.
func (b *Button) Clicked() bool {
	return b.clicked
}

// Activate runs the button's action, then raises the clicked pulse.
func (b *Button) Activate() {
	if b.Action != nil {
		b.Action()
	}
	b.clicked = true
}

// Draw renders the button using its internal clicked and Highlight state.
func (b *Button) Draw(dst *ebiten.Image) {
	b.draw(dst, nil)
}

// DrawState renders the button with an explicit highlight state, ignoring
// the Highlight flag. The clicked pulse still takes priority.
func (b *Button) DrawState(dst *ebiten.Image, highlighted bool) {
	b.draw(dst, &highlighted)
}

func (b *Button) draw(dst *ebiten.Image, overrideHighlight *bool) {
	fill := b.bodyFill(overrideHighlight)
	b.clicked = false
	drawRect(dst, b.bounds, fill, b.strokeWidth)
	if b.borderWidth > 0 {
		drawRect(dst, b.bounds, b.borderColor, b.borderWidth)
	}
	if b.font != nil {
		c := b.bounds.Center()
		b.font.DrawCentered(dst, b.Label, c.X, c.Y, b.labelColor)
	}
}

// bodyFill picks the body color by priority: clicked pulse, then the
// explicit override when given, then the Highlight flag, then the base fill.
func (b *Button) bodyFill(overrideHighlight *bool) color.Color {
	switch {
	case b.clicked:
		return b.clickedFill
	case overrideHighlight != nil:
		if *overrideHighlight {
			return b.highlightFill
		}
		return b.fill
	case b.Highlight:
		return b.highlightFill
	default:
		return b.fill
	}
}

// drawRect draws r filled when strokeWidth is zero, stroked otherwise.
func drawRect(dst *ebiten.Image, r Rect, clr color.Color, strokeWidth float64) {
	if strokeWidth > 0 {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y),
			float32(r.Width), float32(r.Height), float32(strokeWidth), clr, true)
		return
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y),
		float32(r.Width), float32(r.Height), clr, true)
}

// ToggleButtonConfig configures a ToggleButton. Nil colors fall back first
// to their "on" counterpart where one exists, then to the Button defaults.
type ToggleButtonConfig struct {
	// Action runs synchronously on every activation, before the toggle
	// state flips. May be nil.
	Action   func()
	OnLabel  string
	OffLabel string
	Bounds   Rect
	// Font renders the labels. A nil Font draws no label.
	Font *Font

	OnFill           color.Color // default white
	OffFill          color.Color // default OnFill
	OnHighlightFill  color.Color // default grey
	OffHighlightFill color.Color // default grey
	OnLabelColor     color.Color // default black
	OffLabelColor    color.Color // default black

	StrokeWidth   float64
	BorderWidth   float64
	OnBorderColor color.Color // default black
	// OffBorderColor defaults to OnBorderColor.
	OffBorderColor color.Color

	// Toggled is the initial toggle state.
	Toggled bool
}

// ToggleButton is a Button variant with a persistent on/off state that
// flips on every activation, switching between two label/color sets.
type ToggleButton struct {
	Action    func()
	OnLabel   string
	OffLabel  string
	Highlight bool
	// Toggled is the current on/off state.
	Toggled bool

	font             *Font
	bounds           Rect
	onFill           color.Color
	offFill          color.Color
	onHighlightFill  color.Color
	offHighlightFill color.Color
	onLabelColor     color.Color
	offLabelColor    color.Color
	strokeWidth      float64
	borderWidth      float64
	onBorderColor    color.Color
	offBorderColor   color.Color
}

// NewToggleButton returns a ToggleButton with cfg's nil colors resolved.
func NewToggleButton(cfg ToggleButtonConfig) *ToggleButton {
	onFill := defaultColor(cfg.OnFill, defaultFill)
	onBorder := defaultColor(cfg.OnBorderColor, defaultBorder)
	return &ToggleButton{
		Action:           cfg.Action,
		OnLabel:          cfg.OnLabel,
		OffLabel:         cfg.OffLabel,
		Toggled:          cfg.Toggled,
		font:             cfg.Font,
		bounds:           cfg.Bounds,
		onFill:           onFill,
		offFill:          defaultColor(cfg.OffFill, onFill),
		onHighlightFill:  defaultColor(cfg.OnHighlightFill, defaultHighlight),
		offHighlightFill: defaultColor(cfg.OffHighlightFill, defaultHighlight),
		onLabelColor:     defaultColor(cfg.OnLabelColor, defaultLabel),
		offLabelColor:    defaultColor(cfg.OffLabelColor, defaultLabel),
		strokeWidth:      cfg.StrokeWidth,
		borderWidth:      cfg.BorderWidth,
		onBorderColor:    onBorder,
		offBorderColor:   defaultColor(cfg.OffBorderColor, onBorder),
	}
}

// Bounds returns the button's rectangle.
func (b *ToggleButton) Bounds() Rect {
	return b.bounds
}

// SetBounds moves or resizes the button.
func (b *ToggleButton) SetBounds(r Rect) {
	b.bounds = r
}

// Activate runs the button's action, then flips the toggle state.
func (b *ToggleButton) Activate() {
	if b.Action != nil {
		b.Action()
	}
	b.Toggled = !b.Toggled
}

// Draw renders the button using its internal Highlight state.
func (b *ToggleButton) Draw(dst *ebiten.Image) {
	b.draw(dst, nil)
}

// DrawState renders the button with an explicit highlight state, ignoring
// the Highlight flag.
func (b *ToggleButton) DrawState(dst *ebiten.Image, highlighted bool) {
	b.draw(dst, &highlighted)
}

func (b *ToggleButton) draw(dst *ebiten.Image, overrideHighlight *bool) {
	label, labelColor, fill, border := b.state(overrideHighlight)
	drawRect(dst, b.bounds, fill, b.strokeWidth)
	if b.borderWidth > 0 {
		drawRect(dst, b.bounds, border, b.borderWidth)
	}
	if b.font != nil {
		c := b.bounds.Center()
		b.font.DrawCentered(dst, label, c.X, c.Y, labelColor)
	}
}

// state picks the label and color set for the current toggle and highlight
// state.
func (b *ToggleButton) state(overrideHighlight *bool) (label string, labelColor, fill, border color.Color) {
	highlighted := b.Highlight
	if overrideHighlight != nil {
		highlighted = *overrideHighlight
	}
	if b.Toggled {
		fill = b.onFill
		if highlighted {
			fill = b.onHighlightFill
		}
		return b.OnLabel, b.onLabelColor, fill, b.onBorderColor
	}
	fill = b.offFill
	if highlighted {
		fill = b.offHighlightFill
	}
	return b.OffLabel, b.offLabelColor, fill, b.offBorderColor
}
