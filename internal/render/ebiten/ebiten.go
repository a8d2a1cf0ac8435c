package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

// EbitenTexture wraps an ebiten.Image to implement render.Texture.
type EbitenTexture struct {
	img *ebiten.Image
}

// Size returns the width and height of the texture.
func (t *EbitenTexture) Size() (width, height int) {
	return t.img.Bounds().Dx(), t.img.Bounds().Dy()
}

// EbitenFont wraps a text/v2 face to implement render.Font.
type EbitenFont struct {
	face *text.GoTextFace
}

// Measure returns the size of the rendered text.
func (f *EbitenFont) Measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.face.Size*1.2)
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct {
	sources map[string]*text.GoTextFaceSource
}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() *EbitenResourceLoader {
	return &EbitenResourceLoader{sources: make(map[string]*text.GoTextFaceSource)}
}

// LoadTexture loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadTexture(path string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenTexture{img: img}, nil
}

// LoadFont loads a font face. Faces of the same file share one parsed source;
// an empty path uses Go Regular.
func (l *EbitenResourceLoader) LoadFont(details graphics.FontDetails) (render.Font, error) {
	src, ok := l.sources[details.Path]
	if !ok {
		data := goregular.TTF
		if details.Path != "" {
			var err error
			if data, err = os.ReadFile(details.Path); err != nil {
				return nil, err
			}
		}
		var err error
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %w", err)
		}
		l.sources[details.Path] = src
	}
	size := float64(details.Size)
	if size <= 0 {
		size = 16
	}
	return &EbitenFont{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// EbitenSurface keeps the latest presented frame and replays it onto the
// screen in Draw.
type EbitenSurface struct {
	render.FrameSlot
}

// NewSurface creates an empty surface.
func NewSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Draw replays the latest frame onto screen.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	frame, ok := s.Latest()
	if !ok {
		return
	}
	for i := range frame.Commands {
		drawCommand(screen, &frame.Commands[i])
	}
}

func drawCommand(screen *ebiten.Image, c *render.Command) {
	switch c.Kind {
	case render.CmdClear:
		screen.Fill(c.Color)
	case render.CmdRect:
		x, y, w, h := float32(c.X), float32(c.Y), float32(c.W), float32(c.H)
		if c.Mode == render.Fill {
			vector.DrawFilledRect(screen, x, y, w, h, c.Color, false)
		} else {
			vector.StrokeRect(screen, x, y, w, h, 1, c.Color, false)
		}
	case render.CmdSprite:
		drawSprite(screen, c)
	case render.CmdText:
		f, ok := c.Font.(*EbitenFont)
		if !ok {
			return
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(c.X, c.Y)
		op.ColorScale.ScaleWithColor(c.Color)
		text.Draw(screen, c.Text, f.face, op)
	}
}

func drawSprite(screen *ebiten.Image, c *render.Command) {
	tex, ok := c.Texture.(*EbitenTexture)
	if !ok || c.Dst.Empty() {
		return
	}
	img := tex.img
	if !c.Src.Empty() {
		img = img.SubImage(c.Src.Image()).(*ebiten.Image)
	}
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}

	sx := float64(c.Dst.W) / float64(sw)
	sy := float64(c.Dst.H) / float64(sh)
	if c.Options.FlipH {
		sx = -sx
	}
	if c.Options.FlipV {
		sy = -sy
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	// Scale, flip and rotate around the source centre, then move to dst.
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Scale(sx, sy)
	if c.Options.Angle != 0 {
		op.GeoM.Rotate(c.Options.Angle * math.Pi / 180)
	}
	op.GeoM.Translate(float64(c.Dst.X)+float64(c.Dst.W)/2, float64(c.Dst.Y)+float64(c.Dst.H)/2)
	if c.Options.Tint != (graphics.Color{}) {
		op.ColorScale.ScaleWithColor(c.Options.Tint)
	}
	screen.DrawImage(img, op)
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	surface *EbitenSurface
	tps     int
}

// NewEngine creates a new Ebiten-based engine that draws surface and runs
// tps updates per second.
func NewEngine(surface *EbitenSurface, tps int) *EbitenEngine {
	return &EbitenEngine{surface: surface, tps: tps}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game. Closing the window is
// reported to the game instead of ending the loop directly.
func (e *EbitenEngine) RunGame(game render.Game) error {
	if e.tps > 0 {
		ebiten.SetTPS(e.tps)
	}
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(&gameAdapter{game: game, surface: e.surface})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game    render.Game
	surface *EbitenSurface
	keys    []ebiten.Key
	// held counts the physical keys down per input.Key, so left and right
	// modifiers release only when both are up.
	held map[input.Key]int
}

// Update implements ebiten.Game. Key transitions since the last tick are
// delivered before the game's frame runs.
func (a *gameAdapter) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.game.CloseRequested()
	}

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.keyEvent(k, true)
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.keyEvent(k, false)
	}

	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// keyEvent forwards a physical key transition. A key id shared by several
// physical keys is pressed on the first press and released on the last release.
func (a *gameAdapter) keyEvent(k ebiten.Key, pressed bool) {
	key, ok := fromEbitenKey(k)
	if !ok {
		return
	}
	if a.held == nil {
		a.held = make(map[input.Key]int)
	}

	n := a.held[key]
	if pressed {
		a.held[key] = n + 1
		if n == 0 {
			a.game.KeyEvent(key, true)
		}
		return
	}
	if n > 1 {
		a.held[key] = n - 1
		return
	}
	delete(a.held, key)
	a.game.KeyEvent(key, false)
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.surface.Draw(screen)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

var ebitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD, ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH, ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP, ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT, ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Key0, ebiten.KeyDigit1: input.Key1, ebiten.KeyDigit2: input.Key2,
	ebiten.KeyDigit3: input.Key3, ebiten.KeyDigit4: input.Key4, ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6, ebiten.KeyDigit7: input.Key7, ebiten.KeyDigit8: input.Key8,
	ebiten.KeyDigit9: input.Key9,

	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyShiftLeft:    input.KeyShift,
	ebiten.KeyShiftRight:   input.KeyShift,
	ebiten.KeyControlLeft:  input.KeyControl,
	ebiten.KeyControlRight: input.KeyControl,
	ebiten.KeyAltLeft:      input.KeyAlt,
	ebiten.KeyAltRight:     input.KeyAlt,
}

// fromEbitenKey converts an ebiten.Key to an input.Key.
func fromEbitenKey(k ebiten.Key) (input.Key, bool) {
	key, ok := ebitenKeys[k]
	return key, ok
}
