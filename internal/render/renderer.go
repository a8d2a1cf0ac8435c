package render

import (
	"errors"

	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
)

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("render: quit requested")

// FillMode selects between outlined and filled rectangles.
type FillMode int

const (
	// Line draws a one pixel outline.
	Line FillMode = iota
	// Fill draws a solid rectangle.
	Fill
)

// Texture is an opaque handle to a loaded image owned by a backend.
type Texture interface {
	// Size returns the texture size in pixels.
	Size() (width, height int)
}

// Font is an opaque handle to a loaded font face owned by a backend.
type Font interface {
	// Measure returns the size of the rendered text in pixels.
	Measure(text string) (width, height float64)
}

// SpriteOptions adjusts how a sprite is drawn.
type SpriteOptions struct {
	// Angle rotates the sprite clockwise in degrees around the centre of dst.
	Angle float64
	// FlipH and FlipV mirror the sprite inside dst.
	FlipH, FlipV bool
	// Tint multiplies the texture colour. The zero value means no tint.
	Tint graphics.Color
}

// Renderer is the draw surface game states issue draw intents against.
// Rendering backends consume the recorded frame; game code never sees
// backend-specific types.
type Renderer interface {
	// Clear fills the whole frame with c.
	Clear(c graphics.Color)

	// DrawRect draws an outlined or filled rectangle.
	DrawRect(x, y, w, h float64, c graphics.Color, mode FillMode)

	// DrawSprite copies src of the texture into dst. An empty src uses the
	// whole texture.
	DrawSprite(tex Texture, src, dst graphics.Rect)

	// DrawSpriteEx is DrawSprite with rotation, flipping and tint.
	DrawSpriteEx(tex Texture, src, dst graphics.Rect, opts SpriteOptions)

	// DrawText draws text with its top-left corner at (x, y). Text is not
	// moved by the camera.
	DrawText(text string, font Font, x, y float64, c graphics.Color)

	// SetCamera sets the world position drawn at the top-left of the screen
	// for the rest of the frame. Positions snap to whole pixels.
	SetCamera(x, y float64)

	// Present hands the finished frame to the backend.
	Present() error
}

// ResourceLoader loads backend resources from disk.
type ResourceLoader interface {
	LoadTexture(path string) (Texture, error)
	LoadFont(details graphics.FontDetails) (Font, error)
}

// Surface receives presented frames. Backends replay the latest frame on
// their own draw callback.
type Surface interface {
	Submit(frame Frame) error
}

// Game is the interface the engine drives. Key events and close requests are
// delivered before the Update call of the frame they belong to.
type Game interface {
	// KeyEvent reports a key transition.
	KeyEvent(key input.Key, pressed bool)

	// CloseRequested reports that the user asked to close the window.
	CloseRequested()

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)

	// Update runs one frame. Returning ErrQuit ends the loop without error.
	Update() error
}

// Engine represents the platform layer that owns the window and event pump.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
