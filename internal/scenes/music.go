package scenes

import (
	"fmt"
	"math"

	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/placeholders"
	"chosenoffset.com/barn/internal/render"
)

func init() {
	Register("music", "Music playback", func(p Params) engine.State { return newMusic(p) })
}

// Music track loaded by the music scene.
const (
	ThemeSound = "theme"
	ThemePath  = placeholders.ThemePath
)

const volumeStep = 0.1

// Music loops a track. Space pauses and resumes, Up and Down change the
// volume and S stops and rewinds.
type Music struct {
	params Params
	font   render.Font
	volume float64
}

func newMusic(p Params) *Music {
	return &Music{params: p}
}

// Name implements engine.State.
func (m *Music) Name() string { return "music" }

// OnEnter implements engine.State.
func (m *Music) OnEnter(ctx *engine.Context) error {
	font, err := ctx.LoadFont(graphics.FontDetails{Size: 24})
	if err != nil {
		return err
	}
	m.font = font

	if err := ctx.LoadSound(ThemeSound, ThemePath, true); err != nil {
		return err
	}
	m.volume = 1
	ctx.SetVolume(ThemeSound, m.volume)
	return ctx.PlaySound(ThemeSound)
}

// Volume returns the track volume.
func (m *Music) Volume() float64 { return m.volume }

// Update implements engine.State.
func (m *Music) Update(ctx *engine.Context, dt float64) (engine.State, error) {
	if next := backToMenu(ctx, m.params); next != nil {
		return next, nil
	}

	in := ctx.Input()
	switch {
	case in.IsJustPressed(input.KeySpace):
		if ctx.IsPlaying(ThemeSound) {
			ctx.PauseSound(ThemeSound)
		} else {
			ctx.ResumeSound(ThemeSound)
		}
	case in.IsJustPressed(input.KeyUp):
		m.setVolume(ctx, m.volume+volumeStep)
	case in.IsJustPressed(input.KeyDown):
		m.setVolume(ctx, m.volume-volumeStep)
	case in.IsJustPressed(input.KeyS):
		if err := ctx.StopSound(ThemeSound); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (m *Music) setVolume(ctx *engine.Context, v float64) {
	m.volume = math.Round(math.Max(0, math.Min(1, v))*10) / 10
	ctx.SetVolume(ThemeSound, m.volume)
}

// Render implements engine.State.
func (m *Music) Render(ctx *engine.Context, r render.Renderer) {
	r.Clear(graphics.Sky)
	status := "paused"
	if ctx.IsPlaying(ThemeSound) {
		status = "playing"
	}
	r.DrawText(fmt.Sprintf("%s  volume %.0f%%", status, m.volume*100), m.font, 40, 40, graphics.Black)
	r.DrawText("space: pause/resume   up/down: volume   s: stop", m.font, 40, 80, graphics.Black)
}

// OnExit implements engine.State.
func (m *Music) OnExit(ctx *engine.Context) {
	if err := ctx.StopSound(ThemeSound); err != nil {
		ctx.Logger().Warn("failed to stop music", "err", err)
	}
}
