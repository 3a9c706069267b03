package sapling

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrFrameCountMismatch is returned by LoadAnimation when the number of
// files matched by the pattern differs from the number of durations.
var ErrFrameCountMismatch = errors.New("sapling: frame count does not match duration count")

// Frame is one image of an Animation together with the number of ticks it
// stays visible before the animation advances.
type Frame struct {
	Image    *ebiten.Image
	Duration int
}

// Animation plays an ordered sequence of frames, advancing one logical step
// per Update call. Drive it from a Handler's Update and blit Image each
// frame:
//
//	anim, err := sapling.LoadAnimation("assets/run/*.png", []int{30, 7, 7, 7}, 0)
//	...
//	func (g *game) Update()                 { g.anim.Update() }
//	func (g *game) Draw(dst *ebiten.Image)  { dst.DrawImage(g.anim.Image(), nil) }
//
// An Animation is not safe for concurrent use; own it from a single loop.
type Animation struct {
	frames      []Frame
	index       int
	untilNext   int
	repetitions int
	finite      bool
	finished    bool
}

// NewAnimation builds an Animation from in-memory frames. A repetitions
// value above zero makes the animation finish after that many full loops;
// zero or below loops forever.
func NewAnimation(frames []Frame, repetitions int) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("sapling: animation needs at least one frame")
	}
	a := &Animation{
		frames:    frames,
		untilNext: frames[0].Duration,
	}
	if repetitions > 0 {
		a.finite = true
		a.repetitions = repetitions
	}
	return a, nil
}

// LoadAnimation loads every image matched by the filepath glob pattern, in
// lexical order, and pairs it with the duration at the same position.
// The pattern must match exactly len(durations) files; otherwise the error
// wraps ErrFrameCountMismatch and no animation is produced.
//
// See NewAnimation for the meaning of repetitions.
func LoadAnimation(pattern string, durations []int, repetitions int) (*Animation, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("sapling: bad animation pattern %q: %w", pattern, err)
	}
	if len(paths) != len(durations) {
		return nil, fmt.Errorf("sapling: pattern %q matched %d files for %d durations: %w",
			pattern, len(paths), len(durations), ErrFrameCountMismatch)
	}
	frames := make([]Frame, len(paths))
	for i, path := range paths {
		img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		frames[i] = Frame{Image: img, Duration: durations[i]}
	}
	return NewAnimation(frames, repetitions)
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sapling: open animation frame: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sapling: decode animation frame %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(src), nil
}

// Update advances the animation by one tick. Once the animation has
// finished, Update is a no-op.
func (a *Animation) Update() {
	if a.finished {
		return
	}
	a.untilNext--
	if a.untilNext == 0 {
		a.index = (a.index + 1) % len(a.frames)
		a.untilNext += a.frames[a.index].Duration
		if a.index == 0 && a.finite {
			a.repetitions--
			if a.repetitions == 0 {
				a.finished = true
			}
		}
	}
}

// Image returns the image of the current frame without advancing.
func (a *Animation) Image() *ebiten.Image {
	return a.frames[a.index].Image
}

// FrameIndex returns the index of the current frame.
func (a *Animation) FrameIndex() int {
	return a.index
}

// Finished reports whether a finite animation has exhausted its
// repetitions. Infinite animations never finish.
func (a *Animation) Finished() bool {
	return a.finished
}

// Reset rewinds to frame zero with its full duration. It does not revive a
// finished animation: the repetition counter and finished state are left
// untouched, so a finished animation stays finished.
func (a *Animation) Reset() {
	a.index = 0
	a.untilNext = a.frames[0].Duration
}
