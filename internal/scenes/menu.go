package scenes

import (
	"fmt"

	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register(MenuName, "Scene menu", func(p Params) engine.State { return newMenu(p) })
}

// Menu lists the other scenes. Up and Down move the cursor and Enter opens
// the selected scene.
type Menu struct {
	params Params
	items  []Info
	cursor int
	font   render.Font
}

func newMenu(p Params) *Menu {
	return &Menu{params: p}
}

// Name implements engine.State.
func (m *Menu) Name() string { return MenuName }

// OnEnter implements engine.State.
func (m *Menu) OnEnter(ctx *engine.Context) error {
	m.items = m.items[:0]
	for _, info := range List() {
		if info.Name != MenuName {
			m.items = append(m.items, info)
		}
	}
	m.cursor = 0

	font, err := ctx.LoadFont(graphics.FontDetails{Size: 20})
	if err != nil {
		return err
	}
	m.font = font
	return nil
}

// Update implements engine.State.
func (m *Menu) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	if len(m.items) == 0 {
		return nil, nil
	}
	in := ctx.Input()
	switch {
	case in.IsJustPressed(input.KeyUp):
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
	case in.IsJustPressed(input.KeyDown):
		m.cursor = (m.cursor + 1) % len(m.items)
	case in.IsJustPressed(input.KeyEnter):
		return Create(m.items[m.cursor].Name, m.params)
	}
	return nil, nil
}

// Selected returns the highlighted scene.
func (m *Menu) Selected() (Info, bool) {
	if len(m.items) == 0 {
		return Info{}, false
	}
	return m.items[m.cursor], true
}

// Render implements engine.State.
func (m *Menu) Render(ctx *engine.Context, r render.Renderer) {
	r.Clear(graphics.Night)
	r.DrawText("barn", m.font, 40, 30, graphics.White)

	for i, item := range m.items {
		c, prefix := graphics.Gray, "  "
		if i == m.cursor {
			c, prefix = graphics.Yellow, "> "
		}
		r.DrawText(fmt.Sprintf("%s%-10s %s", prefix, item.Name, item.Title), m.font, 40, float64(90+i*32), c)
	}

	_, h := ctx.ScreenSize()
	r.DrawText("enter: open   tab: back to menu   esc: quit", m.font, 40, float64(h-40), graphics.Gray)
}

// OnExit implements engine.State.
func (m *Menu) OnExit(ctx *engine.Context) {}
