// Package headless runs games without a window: frames are driven from a
// script of input events and presented frames are recorded.
package headless

import (
	"errors"
	"sync"
	"time"

	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

// Event is a scripted platform event.
type Event struct {
	Key     input.Key
	Pressed bool
	Close   bool
	Resize  bool
	Width   int
	Height  int
}

// Press returns a key-down event.
func Press(k input.Key) Event { return Event{Key: k, Pressed: true} }

// Release returns a key-up event.
func Release(k input.Key) Event { return Event{Key: k} }

// CloseWindow returns a close request.
func CloseWindow() Event { return Event{Close: true} }

// Resize returns a resize event.
func Resize(w, h int) Event { return Event{Resize: true, Width: w, Height: h} }

// Engine implements render.Engine by running frames in a tight loop.
type Engine struct {
	// Frames limits the number of frames; 0 runs until the game quits.
	Frames int

	width, height int
	title         string
	resizable     bool
	events        map[int][]Event
	ran           int
}

// NewEngine creates an engine that runs at most frames frames.
func NewEngine(frames int) *Engine {
	return &Engine{Frames: frames, events: make(map[int][]Event)}
}

// At schedules events to be delivered before the given frame (0-based).
func (e *Engine) At(frame int, events ...Event) *Engine {
	e.events[frame] = append(e.events[frame], events...)
	return e
}

// SetWindowSize implements render.Engine.
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle implements render.Engine.
func (e *Engine) SetWindowTitle(title string) { e.title = title }

// SetWindowResizable implements render.Engine.
func (e *Engine) SetWindowResizable(resizable bool) { e.resizable = resizable }

// Title returns the window title set by the game.
func (e *Engine) Title() string { return e.title }

// FramesRun returns how many frames completed.
func (e *Engine) FramesRun() int { return e.ran }

// RunGame implements render.Engine.
func (e *Engine) RunGame(g render.Game) error {
	g.Layout(e.width, e.height)
	for i := 0; e.Frames <= 0 || i < e.Frames; i++ {
		for _, ev := range e.events[i] {
			switch {
			case ev.Close:
				g.CloseRequested()
			case ev.Resize:
				e.width, e.height = ev.Width, ev.Height
				g.Layout(ev.Width, ev.Height)
			default:
				g.KeyEvent(ev.Key, ev.Pressed)
			}
		}
		if err := g.Update(); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}
		e.ran++
	}
	return nil
}

// Surface records every presented frame.
type Surface struct {
	// Reject, when set, is consulted for each frame; a non-nil error drops it.
	Reject func(frame render.Frame) error

	mu     sync.Mutex
	frames []render.Frame
}

// Submit implements render.Surface.
func (s *Surface) Submit(frame render.Frame) error {
	if s.Reject != nil {
		if err := s.Reject(frame); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.frames = append(s.frames, frame)
	s.mu.Unlock()
	return nil
}

// Frames returns the recorded frames.
func (s *Surface) Frames() []render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]render.Frame(nil), s.frames...)
}

// StepClock advances by a fixed step every time it is read.
type StepClock struct {
	Step time.Duration
	now  time.Time
}

// NewStepClock creates a clock that advances by step per reading.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{Step: step, now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current time and advances the clock.
func (c *StepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}
