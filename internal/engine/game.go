// Package engine runs the game loop: it owns the current state, computes the
// frame timestep, feeds input into the keyboard and drives state transitions
// and presentation.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/audio"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

// Clock supplies wall-clock timestamps to the loop.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Backend bundles the platform collaborators a game runs on.
type Backend struct {
	Name    string
	Engine  render.Engine
	Loader  render.ResourceLoader
	Surface render.Surface
	Audio   audio.Backend
}

// Options configures a Game.
type Options struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	QuitKey   input.Key
	AssetRoot string
	Volume    float64
	Clock     Clock
	Logger    *log.Logger
}

// Game owns the current state and the per-run resources.
type Game struct {
	backend Backend
	opts    Options
	log     *log.Logger
	clock   Clock

	keyboard *input.Keyboard
	audio    *audio.Manager
	queue    *render.Queue
	ctx      *Context

	state   State
	running bool
	started bool
	last    time.Time
	frame   uint64

	shutdown sync.Once
	closeErr error
}

// New creates a game on the given backend.
func New(backend Backend, opts Options) (*Game, error) {
	if backend.Engine == nil || backend.Loader == nil || backend.Surface == nil || backend.Audio == nil {
		return nil, fmt.Errorf("backend %q is incomplete", backend.Name)
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.QuitKey == input.KeyUnknown {
		opts.QuitKey = input.KeyEscape
	}

	g := &Game{
		backend:  backend,
		opts:     opts,
		log:      opts.Logger,
		clock:    opts.Clock,
		keyboard: input.NewKeyboard(),
		audio:    audio.NewManager(backend.Audio, opts.Volume),
		queue:    render.NewQueue(backend.Surface),
	}
	g.ctx = newContext(g.keyboard, g.audio, backend.Loader, opts.AssetRoot, g.log, g.Quit)
	g.ctx.width, g.ctx.height = opts.Width, opts.Height
	return g, nil
}

// Context returns the context passed to states.
func (g *Game) Context() *Context { return g.ctx }

// Frame returns the number of completed frames.
func (g *Game) Frame() uint64 { return g.frame }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Run enters initial and blocks until the loop stops. Per-run resources are
// released on every return path.
func (g *Game) Run(initial State) (err error) {
	defer func() {
		if cerr := g.Shutdown(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if initial == nil {
		return errors.New("engine: initial state is nil")
	}
	if g.state != nil {
		return errors.New("engine: game already started")
	}

	eng := g.backend.Engine
	eng.SetWindowTitle(g.opts.Title)
	eng.SetWindowSize(g.opts.Width, g.opts.Height)
	eng.SetWindowResizable(g.opts.Resizable)

	if err := initial.OnEnter(g.ctx); err != nil {
		return fmt.Errorf("enter state %s: %w", initial.Name(), err)
	}
	g.state = initial
	g.running = true

	g.log.Info("starting game loop", "backend", g.backend.Name, "state", initial.Name())
	if err := eng.RunGame(g); err != nil && !errors.Is(err, render.ErrQuit) {
		return fmt.Errorf("game loop: %w", err)
	}
	g.log.Info("game loop stopped", "frames", g.frame, "state", g.state.Name())
	return nil
}

// Quit stops the loop before the next frame.
func (g *Game) Quit() {
	g.running = false
}

// Shutdown releases the audio manager and its backend. It is safe to call
// more than once and from a signal handler goroutine.
func (g *Game) Shutdown() error {
	g.shutdown.Do(func() {
		g.closeErr = g.audio.Close()
		if g.closeErr != nil {
			g.log.Error("audio shutdown failed", "err", g.closeErr)
		}
	})
	return g.closeErr
}

// KeyEvent implements render.Game.
func (g *Game) KeyEvent(key input.Key, pressed bool) {
	g.keyboard.SetKey(key, pressed)
	if pressed && key == g.opts.QuitKey {
		g.log.Debug("quit key pressed", "key", key)
		g.Quit()
	}
}

// CloseRequested implements render.Game.
func (g *Game) CloseRequested() {
	g.log.Debug("close requested")
	g.Quit()
}

// Layout implements render.Game. The logical size follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ctx.width || outsideHeight != g.ctx.height {
		g.log.Debug("resize", "width", outsideWidth, "height", outsideHeight)
		g.ctx.width, g.ctx.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Update implements render.Game and runs one frame: update the current
// state, apply a requested transition, render the (possibly new) state,
// present, and snapshot the keyboard.
func (g *Game) Update() error {
	if !g.running || g.state == nil {
		return render.ErrQuit
	}

	dt := g.timestep()

	next, err := g.state.Update(g.ctx, dt)
	if err != nil {
		return fmt.Errorf("update state %s: %w", g.state.Name(), err)
	}
	if next != nil {
		if err := g.transition(next); err != nil {
			return err
		}
	}

	g.state.Render(g.ctx, g.queue)
	if err := g.queue.Present(); err != nil {
		g.log.Warn("skipping frame presentation", "frame", g.frame, "err", err)
	}

	g.keyboard.Update()
	g.frame++
	return nil
}

// timestep returns the seconds since the previous frame; 0 on the first.
func (g *Game) timestep() float64 {
	now := g.clock.Now()
	if !g.started {
		g.started = true
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

func (g *Game) transition(next State) error {
	prev := g.state
	prev.OnExit(g.ctx)
	if err := next.OnEnter(g.ctx); err != nil {
		return fmt.Errorf("enter state %s: %w", next.Name(), err)
	}
	g.state = next
	g.log.Info("state transition", "from", prev.Name(), "to", next.Name(), "frame", g.frame)
	return nil
}
