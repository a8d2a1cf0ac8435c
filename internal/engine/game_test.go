package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/audio"
	"chosenoffset.com/barn/internal/graphics"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
	"chosenoffset.com/barn/internal/render/headless"
)

type fakeTexture struct{ path string }

func (fakeTexture) Size() (int, int) { return 32, 32 }

type fakeFont struct{ size int }

func (f fakeFont) Measure(text string) (float64, float64) {
	return float64(len(text) * f.size), float64(f.size)
}

// fakeLoader serves textures and fonts for known paths and counts loads.
type fakeLoader struct {
	known map[string]bool
	loads map[string]int
}

func newFakeLoader(paths ...string) *fakeLoader {
	l := &fakeLoader{known: make(map[string]bool), loads: make(map[string]int)}
	for _, p := range paths {
		l.known[p] = true
	}
	return l
}

func (l *fakeLoader) LoadTexture(path string) (render.Texture, error) {
	l.loads[path]++
	if !l.known[path] {
		return nil, fs.ErrNotExist
	}
	return fakeTexture{path: path}, nil
}

func (l *fakeLoader) LoadFont(d graphics.FontDetails) (render.Font, error) {
	l.loads[d.Path]++
	if d.Path != "" && !l.known[d.Path] {
		return nil, fs.ErrNotExist
	}
	return fakeFont{size: d.Size}, nil
}

type countingAudio struct {
	audio.SilentBackend
	closed int
}

func (a *countingAudio) Close() error {
	a.closed++
	return nil
}

type harness struct {
	engine  *headless.Engine
	surface *headless.Surface
	loader  *fakeLoader
	audio   *countingAudio
	game    *Game
}

func newHarness(t *testing.T, frames int) *harness {
	t.Helper()
	h := &harness{
		engine:  headless.NewEngine(frames),
		surface: &headless.Surface{},
		loader:  newFakeLoader("images/player.png"),
		audio:   &countingAudio{},
	}
	g, err := New(Backend{
		Name:    "test",
		Engine:  h.engine,
		Loader:  h.loader,
		Surface: h.surface,
		Audio:   h.audio,
	}, Options{
		Title:  "test",
		Width:  320,
		Height: 240,
		Clock:  headless.NewStepClock(20 * time.Millisecond),
		Logger: log.New(io.Discard),
	})
	if err != nil {
		t.Fatal(err)
	}
	h.game = g
	return h
}

// recorder is a state that logs every callback into a shared journal.
type recorder struct {
	name    string
	journal *[]string
	dts     []float64
	next    func(frame int) State
	enterFn func(ctx *Context) error
	updates int
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) OnEnter(ctx *Context) error {
	*r.journal = append(*r.journal, r.name+".enter")
	r.updates = 0
	if r.enterFn != nil {
		return r.enterFn(ctx)
	}
	return nil
}

func (r *recorder) Update(ctx *Context, dt float64) (State, error) {
	*r.journal = append(*r.journal, r.name+".update")
	r.dts = append(r.dts, dt)
	r.updates++
	if r.next != nil {
		return r.next(r.updates), nil
	}
	return nil, nil
}

func (r *recorder) Render(ctx *Context, rd render.Renderer) {
	*r.journal = append(*r.journal, r.name+".render")
	rd.Clear(graphics.Black)
}

func (r *recorder) OnExit(ctx *Context) {
	*r.journal = append(*r.journal, r.name+".exit")
}

func TestFirstFrameTimestepIsZero(t *testing.T) {
	h := newHarness(t, 4)
	var journal []string
	s := &recorder{name: "a", journal: &journal}

	if err := h.game.Run(s); err != nil {
		t.Fatal(err)
	}

	if len(s.dts) != 4 {
		t.Fatalf("got %d updates, want 4", len(s.dts))
	}
	if s.dts[0] != 0 {
		t.Errorf("first dt = %v, want exactly 0", s.dts[0])
	}
	for i, dt := range s.dts[1:] {
		if dt != 0.02 {
			t.Errorf("dt[%d] = %v, want 0.02", i+1, dt)
		}
	}
}

func TestTransitionRendersNewStateSameFrame(t *testing.T) {
	h := newHarness(t, 3)
	var journal []string
	b := &recorder{name: "b", journal: &journal}
	a := &recorder{name: "a", journal: &journal, next: func(n int) State {
		if n == 2 {
			return b
		}
		return nil
	}}

	if err := h.game.Run(a); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"a.enter",
		"a.update", "a.render",
		"a.update", "a.exit", "b.enter", "b.render",
		"b.update", "b.render",
	}
	if fmt.Sprint(journal) != fmt.Sprint(want) {
		t.Errorf("journal =\n%v\nwant\n%v", journal, want)
	}
	if h.game.State() != b {
		t.Error("current state should be b")
	}
	if got := len(h.surface.Frames()); got != 3 {
		t.Errorf("presented %d frames, want 3", got)
	}
}

func TestReenteredStateStartsFresh(t *testing.T) {
	h := newHarness(t, 5)
	var journal []string
	var a, b *recorder
	bounced := false
	a = &recorder{name: "a", journal: &journal, next: func(n int) State {
		if n == 1 && !bounced {
			bounced = true
			return b
		}
		return nil
	}}
	b = &recorder{name: "b", journal: &journal, next: func(n int) State {
		if n == 1 {
			return a
		}
		return nil
	}}

	if err := h.game.Run(a); err != nil {
		t.Fatal(err)
	}
	// a re-entered on frame 1 and updated on frames 2..4.
	if a.updates != 3 {
		t.Errorf("a.updates = %d, want 3 after re-entry", a.updates)
	}
}

func TestInitialEnterFailureIsFatal(t *testing.T) {
	h := newHarness(t, 10)
	var journal []string
	s := &recorder{name: "broken", journal: &journal, enterFn: func(ctx *Context) error {
		_, err := ctx.LoadTexture("images/missing.png")
		return err
	}}

	err := h.game.Run(s)
	var rle *ResourceLoadError
	if !errors.As(err, &rle) {
		t.Fatalf("Run() = %v, want ResourceLoadError", err)
	}
	if rle.Kind != "texture" || rle.Path != "images/missing.png" {
		t.Errorf("unexpected error details %+v", rle)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error should wrap the loader cause")
	}
	if h.engine.FramesRun() != 0 {
		t.Error("loop must not start")
	}
	if h.audio.closed != 1 {
		t.Errorf("audio closed %d times, want 1", h.audio.closed)
	}
}

func TestTransitionEnterFailureStopsLoop(t *testing.T) {
	h := newHarness(t, 10)
	var journal []string
	bad := &recorder{name: "bad", journal: &journal, enterFn: func(*Context) error {
		return errors.New("no assets")
	}}
	a := &recorder{name: "a", journal: &journal, next: func(int) State { return bad }}

	err := h.game.Run(a)
	if err == nil {
		t.Fatal("expected error")
	}
	if h.engine.FramesRun() != 0 {
		t.Errorf("FramesRun() = %d, want 0", h.engine.FramesRun())
	}
}

func TestQuitKeyStopsBeforeNextFrame(t *testing.T) {
	h := newHarness(t, 100)
	h.engine.At(3, headless.Press(input.KeyEscape))
	var journal []string
	s := &recorder{name: "a", journal: &journal}

	if err := h.game.Run(s); err != nil {
		t.Fatal(err)
	}
	if h.game.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", h.game.Frame())
	}
}

func TestCloseRequestStopsLoop(t *testing.T) {
	h := newHarness(t, 100)
	h.engine.At(5, headless.CloseWindow())
	var journal []string

	if err := h.game.Run(&recorder{name: "a", journal: &journal}); err != nil {
		t.Fatal(err)
	}
	if h.game.Frame() != 5 {
		t.Errorf("Frame() = %d, want 5", h.game.Frame())
	}
	if h.audio.closed != 1 {
		t.Error("audio backend should be released on exit")
	}
}

type edgeWatcher struct {
	recorder
	seen []bool
}

func (w *edgeWatcher) Update(ctx *Context, dt float64) (State, error) {
	w.seen = append(w.seen, ctx.Input().IsJustPressed(input.KeySpace))
	return nil, nil
}

func TestKeyEdgeVisibleForOneFrame(t *testing.T) {
	h := newHarness(t, 4)
	h.engine.At(1, headless.Press(input.KeySpace))
	var journal []string
	w := &edgeWatcher{recorder: recorder{name: "w", journal: &journal}}

	if err := h.game.Run(w); err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, false, false}
	if fmt.Sprint(w.seen) != fmt.Sprint(want) {
		t.Errorf("just pressed per frame = %v, want %v", w.seen, want)
	}
}

func TestPresentFailureSkipsFrame(t *testing.T) {
	h := newHarness(t, 3)
	h.surface.Reject = func(f render.Frame) error {
		if f.Seq == 2 {
			return errors.New("acquire timeout")
		}
		return nil
	}
	var journal []string

	if err := h.game.Run(&recorder{name: "a", journal: &journal}); err != nil {
		t.Fatalf("presentation failure must not stop the loop: %v", err)
	}
	if h.game.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", h.game.Frame())
	}
	if got := len(h.surface.Frames()); got != 2 {
		t.Errorf("presented %d frames, want 2", got)
	}
}

func TestResizeUpdatesScreenSize(t *testing.T) {
	h := newHarness(t, 2)
	h.engine.At(1, headless.Resize(800, 600))
	var journal []string

	if err := h.game.Run(&recorder{name: "a", journal: &journal}); err != nil {
		t.Fatal(err)
	}
	if w, hh := h.game.Context().ScreenSize(); w != 800 || hh != 600 {
		t.Errorf("ScreenSize() = %dx%d, want 800x600", w, hh)
	}
}

func TestRunRejectsNilState(t *testing.T) {
	h := newHarness(t, 1)
	if err := h.game.Run(nil); err == nil {
		t.Error("expected error for nil state")
	}
	if err := h.game.Shutdown(); err != nil {
		t.Errorf("repeated Shutdown() = %v", err)
	}
}
