package sapling

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(w, h)
}

// testFrames builds n blank frames with the given durations.
func testFrames(t *testing.T, durations ...int) []Frame {
	t.Helper()
	frames := make([]Frame, len(durations))
	for i, d := range durations {
		frames[i] = Frame{Image: newTestImage(4, 4), Duration: d}
	}
	return frames
}

// writeTestPNGs writes n small PNG files named 0.png, 1.png, ... into dir.
func writeTestPNGs(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.png", i)))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAnimationAdvancesAfterDuration(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 2, 3, 4), 0)
	if err != nil {
		t.Fatal(err)
	}

	if a.FrameIndex() != 0 {
		t.Fatalf("initial frame = %d, want 0", a.FrameIndex())
	}

	a.Update()
	if a.FrameIndex() != 0 {
		t.Errorf("frame after 1 update = %d, want 0 (duration 2)", a.FrameIndex())
	}
	a.Update()
	if a.FrameIndex() != 1 {
		t.Errorf("frame after 2 updates = %d, want 1", a.FrameIndex())
	}

	// Frame 1 holds for 3 ticks.
	for i := 0; i < 3; i++ {
		a.Update()
	}
	if a.FrameIndex() != 2 {
		t.Errorf("frame after 5 updates = %d, want 2", a.FrameIndex())
	}
}

func TestAnimationRepetitionsAndFinish(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 2, 3, 4), 2)
	if err != nil {
		t.Fatal(err)
	}

	// One full loop is 2+3+4 = 9 updates; it ends back on frame 0.
	for i := 0; i < 9; i++ {
		a.Update()
	}
	if a.FrameIndex() != 0 {
		t.Errorf("frame after one loop = %d, want 0", a.FrameIndex())
	}
	if a.Finished() {
		t.Fatal("animation finished after one of two loops")
	}

	for i := 0; i < 9; i++ {
		a.Update()
	}
	if !a.Finished() {
		t.Fatal("animation not finished after two loops")
	}

	// Finished is terminal: further updates are no-ops.
	idx := a.FrameIndex()
	for i := 0; i < 20; i++ {
		a.Update()
	}
	if a.FrameIndex() != idx {
		t.Errorf("frame advanced after finish: %d, want %d", a.FrameIndex(), idx)
	}
}

func TestAnimationInfiniteNeverFinishes(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 1, 1), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		a.Update()
	}
	if a.Finished() {
		t.Fatal("infinite animation reported finished")
	}
}

func TestAnimationImageTracksCurrentFrame(t *testing.T) {
	frames := testFrames(t, 1, 1, 1)
	a, err := NewAnimation(frames, 0)
	if err != nil {
		t.Fatal(err)
	}

	if a.Image() != frames[0].Image {
		t.Error("Image() != frame 0 image at start")
	}
	a.Update()
	if a.Image() != frames[1].Image {
		t.Error("Image() != frame 1 image after one update")
	}
	// Image is a read-only peek.
	if a.Image() != frames[1].Image {
		t.Error("Image() advanced the animation")
	}
}

func TestAnimationResetRewinds(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 2, 2), 0)
	if err != nil {
		t.Fatal(err)
	}
	a.Update()
	a.Update()
	if a.FrameIndex() != 1 {
		t.Fatalf("frame = %d, want 1", a.FrameIndex())
	}

	a.Reset()
	if a.FrameIndex() != 0 {
		t.Errorf("frame after reset = %d, want 0", a.FrameIndex())
	}
	// The full duration of frame 0 applies again.
	a.Update()
	if a.FrameIndex() != 0 {
		t.Error("reset did not reload frame 0's full duration")
	}
}

func TestAnimationResetDoesNotReviveFinished(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	a.Update()
	a.Update()
	if !a.Finished() {
		t.Fatal("animation should be finished after one loop")
	}

	a.Reset()
	if !a.Finished() {
		t.Fatal("Reset revived a finished animation")
	}
	a.Update()
	if a.FrameIndex() != 0 {
		t.Error("finished animation advanced after reset")
	}
}

func TestNewAnimationEmptyFrames(t *testing.T) {
	if _, err := NewAnimation(nil, 0); err == nil {
		t.Fatal("expected error for empty frame list")
	}
}

func TestLoadAnimationFromGlob(t *testing.T) {
	dir := t.TempDir()
	writeTestPNGs(t, dir, 3)

	a, err := LoadAnimation(filepath.Join(dir, "*.png"), []int{2, 3, 4}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Image() == nil {
		t.Fatal("loaded animation has nil frame image")
	}
	b := a.Image().Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("frame size = %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}

func TestLoadAnimationCountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestPNGs(t, dir, 3)

	a, err := LoadAnimation(filepath.Join(dir, "*.png"), []int{2, 3}, 0)
	if a != nil {
		t.Fatal("mismatched load produced a partial animation")
	}
	if !errors.Is(err, ErrFrameCountMismatch) {
		t.Fatalf("err = %v, want ErrFrameCountMismatch", err)
	}
}

func TestAnimationUpdateZeroAlloc(t *testing.T) {
	a, err := NewAnimation(testFrames(t, 3, 3), 0)
	if err != nil {
		t.Fatal(err)
	}
	result := testing.AllocsPerRun(100, func() {
		a.Update()
	})
	if result > 0 {
		t.Errorf("Animation.Update allocated %f times per run, want 0", result)
	}
}
