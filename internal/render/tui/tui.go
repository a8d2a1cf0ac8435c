// Package tui runs the engine inside a terminal with Bubble Tea. Frames are
// rasterised to coloured cells and key presses are turned into held keys.
package tui

import (
	"errors"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

// DefaultKeyHold is how long a key stays down after its last press when the
// terminal sends no repeat.
const DefaultKeyHold = 150 * time.Millisecond

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

func tickCmd(tps int) tea.Cmd {
	interval := time.Second / time.Duration(tps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Surface keeps the latest presented frame for the terminal view.
type Surface struct {
	render.FrameSlot
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Engine implements render.Engine on a terminal.
type Engine struct {
	surface   *Surface
	tps       int
	keyHold   time.Duration
	width     int
	height    int
	title     string
	resizable bool
	opts      []tea.ProgramOption
}

// NewEngine creates a terminal engine that draws surface and runs tps frames
// per second. A key is released once keyHold passes without a repeat.
func NewEngine(surface *Surface, tps int, keyHold time.Duration) *Engine {
	if tps <= 0 {
		tps = 60
	}
	if keyHold <= 0 {
		keyHold = DefaultKeyHold
	}
	return &Engine{
		surface: surface,
		tps:     tps,
		keyHold: keyHold,
		opts:    []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// SetWindowSize sets the logical screen size frames are drawn for.
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

// SetWindowTitle sets the terminal title.
func (e *Engine) SetWindowTitle(title string) { e.title = title }

// SetWindowResizable is recorded only; the terminal decides the grid size.
func (e *Engine) SetWindowResizable(resizable bool) { e.resizable = resizable }

// RunGame runs the Bubble Tea program until the game quits or fails.
func (e *Engine) RunGame(game render.Game) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 24
	}
	m := newModel(game, e.surface, e)
	m.canvas.Resize(cols, rows)

	if _, err := tea.NewProgram(m, e.opts...).Run(); err != nil {
		return err
	}
	return m.err
}

type model struct {
	game    render.Game
	surface *Surface
	keys    KeyMap
	canvas  *Canvas
	tps     int
	keyHold time.Duration
	title   string
	held    map[input.Key]time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newModel(game render.Game, surface *Surface, e *Engine) *model {
	w, h := game.Layout(e.width, e.height)
	canvas := NewCanvas(0, 0)
	canvas.SetLogicalSize(w, h)
	return &model{
		game:    game,
		surface: surface,
		keys:    DefaultKeyMap(),
		canvas:  canvas,
		tps:     e.tps,
		keyHold: e.keyHold,
		title:   e.title,
		held:    make(map[input.Key]time.Time),
		now:     time.Now,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tps)}
	if m.title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.title))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m, m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	if m.done {
		return
	}
	if key.Matches(msg, m.keys.Close) {
		m.game.CloseRequested()
		return
	}
	k, ok := m.keys.Lookup(msg)
	if !ok {
		return
	}
	if _, down := m.held[k]; !down {
		m.game.KeyEvent(k, true)
	}
	m.held[k] = m.now()
}

// releaseStale releases every key whose last press is older than the hold
// window. Keys are released in declaration order.
func (m *model) releaseStale(now time.Time) {
	var stale []input.Key
	for k, at := range m.held {
		if now.Sub(at) > m.keyHold {
			stale = append(stale, k)
		}
	}
	slices.Sort(stale)
	for _, k := range stale {
		delete(m.held, k)
		m.game.KeyEvent(k, false)
	}
}

func (m *model) handleTick(now time.Time) tea.Cmd {
	if m.done {
		return nil
	}
	m.releaseStale(now)
	if err := m.game.Update(); err != nil {
		m.done = true
		if !errors.Is(err, render.ErrQuit) {
			m.err = err
		}
		return tea.Quit
	}
	if frame, ok := m.surface.Latest(); ok {
		m.canvas.Draw(frame)
	}
	return tickCmd(m.tps)
}

// View implements tea.Model.
func (m *model) View() string {
	if m.done {
		return ""
	}
	return m.canvas.String()
}
