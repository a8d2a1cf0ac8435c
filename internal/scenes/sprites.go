package scenes

import (
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/placeholders"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register("sprites", "Sprite animation", func(p Params) engine.State { return newSprites(p) })
}

// DebugBoySheet is the sprite sheet used by the sprites scene.
const DebugBoySheet = placeholders.SheetPath

// Clip names of the debug boy sheet.
const (
	ClipIdle      = "idle"
	ClipWalkUp    = "walk_up"
	ClipWalkDown  = "walk_down"
	ClipWalkLeft  = "walk_left"
	ClipWalkRight = "walk_right"
)

const spriteScale = 4

// Sprites plays the clip matching the held arrow key.
type Sprites struct {
	params  Params
	texture render.Texture
	sprite  *graphics.Sprite
}

func newSprites(p Params) *Sprites {
	return &Sprites{params: p}
}

// Name implements engine.State.
func (s *Sprites) Name() string { return "sprites" }

// OnEnter implements engine.State.
func (s *Sprites) OnEnter(ctx *engine.Context) error {
	sheet, err := ctx.LoadSheet(DebugBoySheet)
	if err != nil {
		return err
	}
	tex, err := ctx.LoadTexture(sheet.Config.ImagePath)
	if err != nil {
		return err
	}

	w, h := ctx.ScreenSize()
	sw, sh := sheet.Config.TileWidth*spriteScale, sheet.Config.TileHeight*spriteScale
	dst := graphics.R((w-sw)/2, (h-sh)/2, sw, sh)
	sprite, err := sheet.NewSprite(ClipIdle, dst)
	if err != nil {
		return err
	}
	sprite.Play(ClipIdle, true)

	s.texture = tex
	s.sprite = sprite
	return nil
}

// Active returns the playing clip.
func (s *Sprites) Active() string {
	name, _ := s.sprite.Active()
	return name
}

// Update implements engine.State.
func (s *Sprites) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	if next := backToMenu(ctx, s.params); next != nil {
		return next, nil
	}

	in := ctx.Input()
	clip := ClipIdle
	switch {
	case in.IsPressed(input.KeyUp):
		clip = ClipWalkUp
	case in.IsPressed(input.KeyDown):
		clip = ClipWalkDown
	case in.IsPressed(input.KeyLeft):
		clip = ClipWalkLeft
	case in.IsPressed(input.KeyRight):
		clip = ClipWalkRight
	}
	if active, _ := s.sprite.Active(); active != clip {
		if a, ok := s.sprite.Animation(clip); ok {
			a.Reset()
		}
		s.sprite.Play(clip, true)
	}
	s.sprite.Tick(dt)
	return nil, nil
}

// Render implements engine.State.
func (s *Sprites) Render(ctx *engine.Context, r render.Renderer) {
	r.Clear(graphics.Sky)
	r.DrawSprite(s.texture, s.sprite.CurrentSrc(), s.sprite.CurrentDst())
}

// OnExit implements engine.State.
func (s *Sprites) OnExit(ctx *engine.Context) {}
