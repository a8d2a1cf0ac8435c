package graphics

import (
	"errors"
	"fmt"
	"math"
)

// Frame is one step of an animation.
type Frame struct {
	Src      Rect
	Dst      Rect
	Duration float64 // seconds, > 0
}

// Animation plays an ordered list of frames over time.
type Animation struct {
	frames []Frame
	total  float64
	repeat bool
	timer  float64
}

// NewAnimation creates an animation from a non-empty list of frames with
// positive durations.
func NewAnimation(frames []Frame, repeat bool) (*Animation, error) {
	if len(frames) == 0 {
		return nil, errors.New("animation needs at least one frame")
	}
	var total float64
	for i, f := range frames {
		if !(f.Duration > 0) {
			return nil, fmt.Errorf("frame %d: duration must be positive, got %v", i, f.Duration)
		}
		total += f.Duration
	}
	return &Animation{
		frames: append([]Frame(nil), frames...),
		total:  total,
		repeat: repeat,
	}, nil
}

// Tick advances the animation by dt seconds. Repeating animations wrap the
// elapsed time around the total duration.
func (a *Animation) Tick(dt float64) {
	a.timer += dt
	if a.repeat && a.timer > a.total {
		a.timer = math.Mod(a.timer, a.total)
	}
}

// CurrentFrame returns the frame shown at the current time.
func (a *Animation) CurrentFrame() Frame {
	return a.frames[a.Index()]
}

// Index returns the position of the current frame.
func (a *Animation) Index() int {
	var end float64
	for i, f := range a.frames {
		end += f.Duration
		if end >= a.timer {
			return i
		}
	}
	return len(a.frames) - 1
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	a.timer = 0
}

// Done reports whether a non-repeating animation has played to its end.
func (a *Animation) Done() bool {
	return !a.repeat && a.timer >= a.total
}

// TotalDuration returns the sum of all frame durations.
func (a *Animation) TotalDuration() float64 { return a.total }

// Timer returns the elapsed time within the animation.
func (a *Animation) Timer() float64 { return a.timer }

// Repeat reports whether the animation loops.
func (a *Animation) Repeat() bool { return a.repeat }

// SetRepeat changes whether the animation loops.
func (a *Animation) SetRepeat(repeat bool) { a.repeat = repeat }

// Frames returns the number of frames.
func (a *Animation) Frames() int { return len(a.frames) }
