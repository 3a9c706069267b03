package sapling

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventQuit      EventKind = iota // window close was requested; the loop terminates after dispatch
	EventKeyDown                    // a keyboard key was pressed this tick
	EventKeyUp                      // a keyboard key was released this tick
	EventMouseDown                  // a mouse button was pressed this tick
	EventMouseUp                    // a mouse button was released this tick
)

// Event is the closed set of input events a Screen dispatches. Switch on
// Kind exhaustively; only the fields for that kind are meaningful.
type Event struct {
	Kind EventKind
	// Key is valid for EventKeyDown and EventKeyUp.
	Key ebiten.Key
	// Button and Pos are valid for EventMouseDown and EventMouseUp.
	// Pos is in logical coordinates (already divided by the pixel scale).
	Button ebiten.MouseButton
	Pos    Point
}

// Handler is the application logic a Screen drives: one screen of a game
// or tool (menu, pause screen, gameplay). Menu is a ready-made Handler.
type Handler interface {
	// HandleEvent receives each input event in dispatch order.
	HandleEvent(ev Event)
	// Update runs once per tick after event dispatch.
	Update()
	// Draw renders onto the logical surface.
	Draw(dst *ebiten.Image)
}

// ScreenConfig configures a Screen. Zero values select the documented
// defaults.
type ScreenConfig struct {
	Title string
	// Width and Height are the real window size in device pixels.
	// Default 640x480.
	Width, Height int
	// LogicalWidth and LogicalHeight, when set and different from the real
	// size, enable integer pixel scaling: drawing happens at the logical
	// size and is stretched onto the window by the truncated integer
	// ratio. The scale factors are clamped to a minimum of 1, so a logical
	// size larger than the window draws 1:1 and is clipped.
	LogicalWidth, LogicalHeight int
	// TickRate is the target ticks per second. Default 30.
	TickRate int
	// Background fills the logical surface before each Draw. Nil leaves
	// the surface cleared to black.
	Background color.Color
}

const (
	defaultScreenW  = 640
	defaultScreenH  = 480
	defaultTickRate = 30

	// tickLimit wraps the tick counter before it can overflow anything
	// downstream. Effectively never reached in practice.
	tickLimit = uint64(1e18)
)

// Screen owns the game loop for one Handler: it polls input, dispatches
// events, runs the handler's update and draw, applies pixel scaling, and
// advances the tick clock. Screen implements ebiten.Game; Run blocks in
// ebiten.RunGame until the window is closed.
type Screen struct {
	handler Handler

	title              string
	realW, realH       int
	logicalW, logicalH int
	scaleX, scaleY     int
	scaled             bool
	tickRate           int
	background         color.Color

	canvas  *ebiten.Image // logical surface, only when scaled
	scaleOp ebiten.DrawImageOptions

	ticks   uint64
	running bool

	keyBuf []ebiten.Key
	events []Event
}

// mouseButtons are the buttons polled for mouse events each tick.
var mouseButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// NewScreen returns a Screen driving the given handler.
func NewScreen(handler Handler, cfg ScreenConfig) *Screen {
	realW, realH := cfg.Width, cfg.Height
	if realW <= 0 {
		realW = defaultScreenW
	}
	if realH <= 0 {
		realH = defaultScreenH
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	s := &Screen{
		handler:    handler,
		title:      cfg.Title,
		realW:      realW,
		realH:      realH,
		logicalW:   realW,
		logicalH:   realH,
		scaleX:     1,
		scaleY:     1,
		tickRate:   tickRate,
		background: cfg.Background,
	}

	if cfg.LogicalWidth > 0 && cfg.LogicalHeight > 0 &&
		(cfg.LogicalWidth != realW || cfg.LogicalHeight != realH) {
		s.scaled = true
		s.logicalW = cfg.LogicalWidth
		s.logicalH = cfg.LogicalHeight
		// A logical size larger than the window would truncate the integer
		// scale to zero; clamp so drawing degrades to 1:1 instead of the
		// cursor math dividing by zero.
		s.scaleX = max(realW/s.logicalW, 1)
		s.scaleY = max(realH/s.logicalH, 1)
		s.canvas = ebiten.NewImage(s.logicalW, s.logicalH)
		s.scaleOp.GeoM.Scale(float64(s.scaleX), float64(s.scaleY))
	}
	return s
}

// Run configures the window and blocks in the game loop until the window
// is closed. The handler sees an EventQuit before the loop terminates.
func (s *Screen) Run() error {
	ebiten.SetWindowTitle(s.title)
	ebiten.SetWindowSize(s.realW, s.realH)
	ebiten.SetTPS(s.tickRate)
	ebiten.SetWindowClosingHandled(true)
	s.running = true
	defer func() { s.running = false }()
	return ebiten.RunGame(s)
}

// Size returns the logical surface size.
func (s *Screen) Size() (width, height int) {
	return s.logicalW, s.logicalH
}

// RealSize returns the window size in device pixels.
func (s *Screen) RealSize() (width, height int) {
	return s.realW, s.realH
}

// Scale returns the integer pixel scale factors. Both are 1 when pixel
// scaling is inactive.
func (s *Screen) Scale() (x, y int) {
	return s.scaleX, s.scaleY
}

// Ticks returns the number of ticks completed since Run started. The
// counter wraps to zero at a very large bound.
func (s *Screen) Ticks() uint64 {
	return s.ticks
}

// Running reports whether the game loop is active.
func (s *Screen) Running() bool {
	return s.running
}

// CursorPosition returns the cursor in logical coordinates, dividing the
// device position by the integer pixel scale.
func (s *Screen) CursorPosition() Point {
	x, y := ebiten.CursorPosition()
	if !s.scaled {
		return Point{X: float64(x), Y: float64(y)}
	}
	return Point{X: float64(x / s.scaleX), Y: float64(y / s.scaleY)}
}

// Update implements ebiten.Game. It drains this tick's input events,
// dispatches each to the handler, runs the handler's update, and advances
// the tick counter. A quit event terminates the loop immediately after
// being dispatched.
func (s *Screen) Update() error {
	s.pollEvents()
	for _, ev := range s.events {
		s.handler.HandleEvent(ev)
		if ev.Kind == EventQuit {
			return ebiten.Termination
		}
	}
	s.handler.Update()
	s.advanceTick()
	return nil
}

// Draw implements ebiten.Game. It fills the background, lets the handler
// draw onto the logical surface, and scale-blits onto the window when pixel
// scaling is active.
func (s *Screen) Draw(screen *ebiten.Image) {
	target := screen
	if s.scaled {
		target = s.canvas
	}
	if s.background != nil {
		target.Fill(s.background)
	}
	s.handler.Draw(target)
	if s.scaled {
		screen.DrawImage(s.canvas, &s.scaleOp)
	}
}

// Layout implements ebiten.Game. Scaling is done manually through the
// logical canvas, so the render size is always the real window size.
func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.realW, s.realH
}

// pollEvents rebuilds the event slice from this tick's input edges.
// Quit is detected first so it dispatches ahead of any other event.
func (s *Screen) pollEvents() {
	s.events = s.events[:0]

	if ebiten.IsWindowBeingClosed() {
		s.events = append(s.events, Event{Kind: EventQuit})
	}

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.events = append(s.events, Event{Kind: EventKeyDown, Key: k})
	}
	s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.events = append(s.events, Event{Kind: EventKeyUp, Key: k})
	}

	pos := s.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.events = append(s.events, Event{Kind: EventMouseDown, Button: b, Pos: pos})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			s.events = append(s.events, Event{Kind: EventMouseUp, Button: b, Pos: pos})
		}
	}
}

func (s *Screen) advanceTick() {
	s.ticks++
	if s.ticks > tickLimit {
		s.ticks = 0
	}
}
