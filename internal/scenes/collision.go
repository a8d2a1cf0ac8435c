package scenes

import (
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/geom"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register("collision", "Box collision", func(p Params) engine.State { return newCollision(p) })
}

// PlayerSpeed is the player speed in pixels per second.
const PlayerSpeed = 200

// TileKind tells whether a tile blocks movement.
type TileKind int

const (
	TileGround TileKind = iota
	TileWater
	TileIntangible
)

// Tile is a rectangle of the collision scene.
type Tile struct {
	Box  geom.BoundingBox2D
	Kind TileKind
}

// Collision moves a box with the arrow keys and stops it against solid tiles.
type Collision struct {
	params Params
	player geom.BoundingBox2D
	tiles  []Tile
}

func newCollision(p Params) *Collision {
	return &Collision{params: p}
}

// Name implements engine.State.
func (c *Collision) Name() string { return "collision" }

// OnEnter implements engine.State.
func (c *Collision) OnEnter(ctx *engine.Context) error {
	c.player = geom.NewBox(0, 0, 50, 50)
	c.tiles = []Tile{
		{Box: geom.NewBox(200, 200, 100, 100), Kind: TileGround},
		{Box: geom.NewBox(300, 300, 100, 100), Kind: TileGround},
		{Box: geom.NewBox(500, 100, 80, 80), Kind: TileIntangible},
	}
	return nil
}

// Player returns the player's box.
func (c *Collision) Player() geom.BoundingBox2D { return c.player }

// Update implements engine.State.
func (c *Collision) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	if next := backToMenu(ctx, c.params); next != nil {
		return next, nil
	}

	in := ctx.Input()
	delta := dt * PlayerSpeed
	var vel geom.Vector2
	if in.IsPressed(input.KeyDown) {
		vel.Y += delta
	}
	if in.IsPressed(input.KeyUp) {
		vel.Y -= delta
	}
	if in.IsPressed(input.KeyRight) {
		vel.X += delta
	}
	if in.IsPressed(input.KeyLeft) {
		vel.X -= delta
	}

	solid := make([]geom.BoundingBox2D, 0, len(c.tiles))
	for _, t := range c.tiles {
		if t.Kind != TileIntangible {
			solid = append(solid, t.Box)
		}
	}
	c.player.ResolveAgainst(solid, vel)
	return nil, nil
}

// Camera returns the top-left world position shown on screen. It follows the
// player once the player passes the screen centre and never scrolls past the
// origin.
func (c *Collision) Camera(ctx *engine.Context) geom.Vector2 {
	w, h := ctx.ScreenSize()
	center := c.player.Center()
	return geom.Vec(max(0, center.X-float64(w)/2), max(0, center.Y-float64(h)/2))
}

// Render implements engine.State.
func (c *Collision) Render(ctx *engine.Context, r render.Renderer) {
	r.Clear(graphics.Black)
	cam := c.Camera(ctx)
	r.SetCamera(cam.X, cam.Y)
	drawBox(r, c.player, graphics.Blue, render.Fill)
	for _, t := range c.tiles {
		col := graphics.Green
		if t.Kind == TileIntangible {
			col = graphics.Gray
		}
		drawBox(r, t.Box, col, render.Line)
	}
}

// OnExit implements engine.State.
func (c *Collision) OnExit(ctx *engine.Context) {}

func drawBox(r render.Renderer, b geom.BoundingBox2D, c graphics.Color, mode render.FillMode) {
	r.DrawRect(b.Origin.X, b.Origin.Y, float64(b.Width), float64(b.Height), c, mode)
}
