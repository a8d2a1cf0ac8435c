// Package render defines the backend-independent rendering and platform ports
// and a command queue that records frames for backends to replay.
package render

import (
	"math"
	"sync"

	"chosenoffset.com/barn/internal/graphics"
)

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CmdClear CommandKind = iota
	CmdRect
	CmdSprite
	CmdText
)

// Command is one recorded draw call. Coordinates are already shifted by the
// queue's camera offset.
type Command struct {
	Kind    CommandKind
	Color   graphics.Color
	X, Y    float64
	W, H    float64
	Mode    FillMode
	Texture Texture
	Src     graphics.Rect
	Dst     graphics.Rect
	Options SpriteOptions
	Font    Font
	Text    string
}

// Frame is the list of commands recorded between two presents.
type Frame struct {
	Seq      uint64
	Commands []Command
}

// Queue implements Renderer by recording commands and publishing them to a
// Surface on Present.
type Queue struct {
	surface Surface
	cmds    []Command
	seq     uint64
	camX    float64
	camY    float64
}

// NewQueue creates a queue that presents to surface.
func NewQueue(surface Surface) *Queue {
	return &Queue{surface: surface}
}

// SetCamera implements Renderer. The offset is rounded to whole pixels so
// rects and sprites at the same world position line up.
func (q *Queue) SetCamera(x, y float64) {
	q.camX, q.camY = math.Round(x), math.Round(y)
}

// Camera returns the current camera offset.
func (q *Queue) Camera() (x, y float64) {
	return q.camX, q.camY
}

// Clear implements Renderer.
func (q *Queue) Clear(c graphics.Color) {
	q.cmds = append(q.cmds, Command{Kind: CmdClear, Color: c})
}

// DrawRect implements Renderer.
func (q *Queue) DrawRect(x, y, w, h float64, c graphics.Color, mode FillMode) {
	q.cmds = append(q.cmds, Command{
		Kind:  CmdRect,
		Color: c,
		X:     x - q.camX,
		Y:     y - q.camY,
		W:     w,
		H:     h,
		Mode:  mode,
	})
}

// DrawSprite implements Renderer.
func (q *Queue) DrawSprite(tex Texture, src, dst graphics.Rect) {
	q.DrawSpriteEx(tex, src, dst, SpriteOptions{})
}

// DrawSpriteEx implements Renderer.
func (q *Queue) DrawSpriteEx(tex Texture, src, dst graphics.Rect, opts SpriteOptions) {
	if tex == nil {
		return
	}
	q.cmds = append(q.cmds, Command{
		Kind:    CmdSprite,
		Texture: tex,
		Src:     src,
		Dst:     dst.Offset(-int(q.camX), -int(q.camY)),
		Options: opts,
	})
}

// DrawText implements Renderer. Text is drawn in screen space.
func (q *Queue) DrawText(text string, font Font, x, y float64, c graphics.Color) {
	if font == nil || text == "" {
		return
	}
	q.cmds = append(q.cmds, Command{Kind: CmdText, Text: text, Font: font, X: x, Y: y, Color: c})
}

// Pending returns the number of commands recorded since the last Present.
func (q *Queue) Pending() int {
	return len(q.cmds)
}

// Present publishes the recorded commands as a frame and starts a new one
// with the camera back at the origin. The recorded commands are dropped even
// if the surface rejects the frame.
func (q *Queue) Present() error {
	q.camX, q.camY = 0, 0
	q.seq++
	frame := Frame{Seq: q.seq, Commands: q.cmds}
	q.cmds = make([]Command, 0, len(frame.Commands))
	return q.surface.Submit(frame)
}

// FrameSlot holds the most recently presented frame. It is safe for use from
// the update and draw goroutines of a backend.
type FrameSlot struct {
	mu    sync.Mutex
	frame Frame
	ok    bool
}

// Submit implements Surface.
func (s *FrameSlot) Submit(frame Frame) error {
	s.mu.Lock()
	s.frame = frame
	s.ok = true
	s.mu.Unlock()
	return nil
}

// Latest returns the last submitted frame.
func (s *FrameSlot) Latest() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame, s.ok
}
