package scenes

import (
	"math"
	"math/rand"

	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/geom"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/placeholders"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register("snow", "Snowy evening", func(p Params) engine.State { return newSnow(p) })
}

// Snow scene textures, relative to the asset root.
const (
	GradientTexture = placeholders.GradientPath
	MoonTexture     = placeholders.MoonPath
	CloudTexture    = placeholders.CloudPath
	GroundTexture   = placeholders.GroundPath
)

const (
	snowSpacing     = 200.0
	snowMinVariance = 25
	snowMaxVariance = 50
	cloudSpeed      = 12.0 // px/s
	cloudWrapAt     = 500.0
	cloudWrapBy     = 1024.0
)

// Flake is one snowflake.
type Flake struct {
	Pos   geom.Vector2
	Speed float64
}

// SnowLayer is a grid of flakes falling in one direction. Flakes leaving the
// screen re-enter on the opposite side.
type SnowLayer struct {
	Flakes []Flake
	Dir    geom.Vector2
	Color  graphics.Color
	Size   float64
	width  float64
	height float64
}

// NewSnowLayer places one flake per spacing cell covering a width x height
// screen, jittered by rng. Flake speeds are speed times 1 to 4.
func NewSnowLayer(rng *rand.Rand, dir geom.Vector2, color graphics.Color, speed, size float64, offset geom.Vector2, width, height float64) *SnowLayer {
	l := &SnowLayer{Dir: dir, Color: color, Size: size, width: width, height: height}
	cols := int(math.Ceil(width / snowSpacing))
	rows := int(math.Ceil(height / snowSpacing))
	for x := 0; x <= cols; x++ {
		for y := 0; y <= rows; y++ {
			xv := float64(snowMinVariance+rng.Intn(snowMaxVariance-snowMinVariance)) + offset.X
			yv := float64(snowMinVariance+rng.Intn(snowMaxVariance-snowMinVariance)) + offset.Y
			l.Flakes = append(l.Flakes, Flake{
				Pos:   geom.Vec(float64(x)*snowSpacing+xv, float64(y)*snowSpacing+yv),
				Speed: speed * float64(1+rng.Intn(4)),
			})
		}
	}
	return l
}

// Update moves every flake by dt seconds.
func (l *SnowLayer) Update(dt float64) {
	for i := range l.Flakes {
		f := &l.Flakes[i]
		f.Pos = f.Pos.Add(l.Dir.Scale(dt * f.Speed))
		if f.Pos.Y > l.height+4 {
			f.Pos.Y -= l.height
		}
		if f.Pos.X > l.width+4 {
			f.Pos.X -= l.width
		}
		if f.Pos.X < -4 {
			f.Pos.X += l.width
		}
	}
}

// Snow draws a night sky with drifting clouds and three snow layers.
type Snow struct {
	params Params
	layers []*SnowLayer
	clouds [2]float64

	gradient, moon, cloud, ground render.Texture
}

func newSnow(p Params) *Snow {
	return &Snow{params: p}
}

// Name implements engine.State.
func (s *Snow) Name() string { return "snow" }

// OnEnter implements engine.State.
func (s *Snow) OnEnter(ctx *engine.Context) error {
	var err error
	for _, t := range []struct {
		dst  *render.Texture
		path string
	}{
		{&s.gradient, GradientTexture},
		{&s.moon, MoonTexture},
		{&s.cloud, CloudTexture},
		{&s.ground, GroundTexture},
	} {
		if *t.dst, err = ctx.LoadTexture(t.path); err != nil {
			return err
		}
	}

	w, h := ctx.ScreenSize()
	width, height := float64(w), float64(h)
	rng := rand.New(rand.NewSource(s.params.Seed))
	down := geom.Vec(1, 1).Normalize()
	across := geom.Vec(-1, 1).Normalize()
	s.layers = []*SnowLayer{
		NewSnowLayer(rng, across, graphics.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, 15, 2, geom.Vec(0.4, -45.7), width, height),
		NewSnowLayer(rng, down, graphics.Color{R: 0.75, G: 0.75, B: 0.75, A: 1}, 30, 2, geom.Vec(-37.4, -4), width, height),
		NewSnowLayer(rng, down, graphics.White, 45, 3, geom.Vec(15, 10), width, height),
	}
	s.clouds = [2]float64{-256, 256}
	return nil
}

// Update implements engine.State.
func (s *Snow) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	if next := backToMenu(ctx, s.params); next != nil {
		return next, nil
	}
	for _, l := range s.layers {
		l.Update(dt)
	}
	for i := range s.clouds {
		s.clouds[i] += cloudSpeed * dt
		if s.clouds[i] >= cloudWrapAt {
			s.clouds[i] -= cloudWrapBy
		}
	}
	return nil, nil
}

// Render implements engine.State.
func (s *Snow) Render(ctx *engine.Context, r render.Renderer) {
	w, h := ctx.ScreenSize()
	r.Clear(graphics.Black)
	r.DrawSprite(s.gradient, graphics.Rect{}, graphics.R(0, 0, w, h))
	r.DrawSpriteEx(s.moon, graphics.Rect{}, graphics.R(w-132, 48, 64, 64), render.SpriteOptions{
		Tint: graphics.FromRGB(200, 200, 200),
	})

	haze := graphics.White.WithAlpha(50.0 / 255)
	r.DrawSpriteEx(s.cloud, graphics.Rect{}, graphics.R(int(s.clouds[0]), 30, 512, 64), render.SpriteOptions{Tint: haze})
	r.DrawSpriteEx(s.cloud, graphics.Rect{}, graphics.R(int(s.clouds[1]), 70, 512, 64), render.SpriteOptions{Tint: haze, FlipH: true})

	for _, l := range s.layers {
		for _, f := range l.Flakes {
			r.DrawRect(f.Pos.X, f.Pos.Y, l.Size, l.Size, l.Color, render.Fill)
		}
	}
	r.DrawSprite(s.ground, graphics.Rect{}, graphics.R(0, h-38, w, 32))
}

// OnExit implements engine.State.
func (s *Snow) OnExit(ctx *engine.Context) {}
