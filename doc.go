// Package sapling is a small application toolkit for [Ebitengine].
//
// Sapling provides the handful of pieces that every small windowed game or
// tool ends up rebuilding: a tick-driven frame animation player, simple
// buttons and toggle buttons, a keyboard/mouse menu, periodic triggers,
// 2D point/rect geometry, and a Screen type that owns the game loop, the
// tick clock, and optional integer pixel scaling for a retro look.
//
// # Quick start
//
// Implement [Handler] (or use a ready-made one like [Menu]) and hand it to
// a [Screen]:
//
//	menu := sapling.NewMenu(
//		sapling.NewButton(sapling.ButtonConfig{
//			Label:  "Start",
//			Bounds: sapling.Rect{X: 100, Y: 60, Width: 120, Height: 28},
//			Font:   font,
//			Action: startGame,
//		}),
//	)
//	screen := sapling.NewScreen(menu, sapling.ScreenConfig{
//		Title: "My Game", Width: 640, Height: 480,
//		LogicalWidth: 320, LogicalHeight: 240, // 2x pixel scaling
//	})
//	if err := screen.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Pixel scaling
//
// When a logical size smaller than the window size is configured, all
// drawing happens on a logical surface that is scale-blitted onto the
// window each frame. [Screen.CursorPosition] reports the cursor in logical
// coordinates so hit testing works unchanged.
//
// # Animations and triggers
//
// [Animation] advances one logical frame per Update call and holds each
// image for a per-frame duration measured in ticks. [Trigger] fires once
// every N calls and is handy for "every half second, do X" logic inside a
// Handler's Update.
//
// Property tweening (via [gween]) is available through [TweenFloat] and
// [TweenPoint]; there is no global animation manager, callers pump
// Update(dt) themselves.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sapling
