package scenes

import (
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register("hello", "Hello world", func(p Params) engine.State { return &Hello{params: p} })
}

// HelloText is the message drawn by the hello scene.
const HelloText = "Hello World!"

// Hello draws a centred greeting.
type Hello struct {
	params Params
	font   render.Font
}

// Name implements engine.State.
func (h *Hello) Name() string { return "hello" }

// OnEnter implements engine.State.
func (h *Hello) OnEnter(ctx *engine.Context) error {
	font, err := ctx.LoadFont(graphics.FontDetails{Size: 32})
	if err != nil {
		return err
	}
	h.font = font
	return nil
}

// Update implements engine.State.
func (h *Hello) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	return backToMenu(ctx, h.params), nil
}

// Render implements engine.State.
func (h *Hello) Render(ctx *engine.Context, r render.Renderer) {
	r.Clear(graphics.Sky)
	w, hh := ctx.ScreenSize()
	tw, th := h.font.Measure(HelloText)
	r.DrawText(HelloText, h.font, (float64(w)-tw)/2, (float64(hh)-th)/2, graphics.Black)
}

// OnExit implements engine.State.
func (h *Hello) OnExit(ctx *engine.Context) {}
