package graphics

import (
	"math"
	"testing"
)

func walkFrames(n int, d float64) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Src: R(i*32, 0, 32, 32), Dst: R(100, 100, 64, 64), Duration: d}
	}
	return frames
}

func TestAnimationWrapsWhenRepeating(t *testing.T) {
	a, err := NewAnimation(walkFrames(4, 0.2), true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a.TotalDuration()-0.8) > 1e-9 {
		t.Fatalf("TotalDuration() = %v, want 0.8", a.TotalDuration())
	}

	a.Tick(0.9)

	if math.Abs(a.Timer()-0.1) > 1e-9 {
		t.Errorf("Timer() = %v, want 0.1", a.Timer())
	}
	if a.Index() != 0 {
		t.Errorf("Index() = %d, want 0", a.Index())
	}
	if got := a.CurrentFrame().Src; got != R(0, 0, 32, 32) {
		t.Errorf("CurrentFrame().Src = %+v", got)
	}
}

func TestAnimationFrameSelection(t *testing.T) {
	a, err := NewAnimation(walkFrames(4, 0.25), true)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		elapsed float64
		want    int
	}{
		{0, 0},
		{0.25, 0}, // boundary belongs to the frame that ends there
		{0.26, 1},
		{0.5, 1},
		{0.74, 2},
		{0.99, 3},
		{1.0, 3},
	}
	for _, tt := range tests {
		a.Reset()
		a.Tick(tt.elapsed)
		if got := a.Index(); got != tt.want {
			t.Errorf("after %v s Index() = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestAnimationNonRepeatingHoldsLastFrame(t *testing.T) {
	a, err := NewAnimation(walkFrames(3, 0.1), false)
	if err != nil {
		t.Fatal(err)
	}

	a.Tick(5)

	if a.Index() != 2 {
		t.Errorf("Index() = %d, want last frame", a.Index())
	}
	if !a.Done() {
		t.Error("expected Done() after running past the end")
	}
	if a.Timer() != 5 {
		t.Errorf("Timer() = %v, non-repeating timer should not wrap", a.Timer())
	}
}

func TestNewAnimationValidation(t *testing.T) {
	tests := []struct {
		name   string
		frames []Frame
	}{
		{"empty", nil},
		{"zero duration", []Frame{{Duration: 0.1}, {Duration: 0}}},
		{"negative duration", []Frame{{Duration: -1}}},
		{"NaN duration", []Frame{{Duration: math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnimation(tt.frames, true); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSpritePlayback(t *testing.T) {
	base := R(0, 0, 16, 16)
	dst := R(10, 10, 16, 16)
	s := NewSprite(base, dst)

	walk, err := NewAnimation(walkFrames(2, 0.5), false)
	if err != nil {
		t.Fatal(err)
	}
	s.AddAnimation("walk", walk)

	if s.CurrentSrc() != base || s.CurrentDst() != dst {
		t.Fatal("idle sprite should show base rects")
	}

	s.Play("missing", true)
	if _, ok := s.Active(); ok {
		t.Fatal("unknown clip should be ignored")
	}

	s.Play("walk", true)
	if !walk.Repeat() {
		t.Error("Play should override the repeat flag")
	}
	s.Tick(0.6)
	if got := s.CurrentSrc(); got != R(32, 0, 32, 32) {
		t.Errorf("CurrentSrc() = %+v, want second frame", got)
	}
	if got := s.CurrentDst(); got != R(100, 100, 64, 64) {
		t.Errorf("CurrentDst() = %+v, want frame dst", got)
	}

	s.Stop()
	if s.CurrentSrc() != base {
		t.Error("stopped sprite should show base rect")
	}
}
