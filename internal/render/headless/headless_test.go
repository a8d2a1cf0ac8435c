package headless

import (
	"errors"
	"testing"
	"time"

	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render"
)

type scriptedGame struct {
	log     []string
	updates int
	quitAt  int
}

func (g *scriptedGame) KeyEvent(k input.Key, pressed bool) {
	if pressed {
		g.log = append(g.log, "down:"+k.String())
	} else {
		g.log = append(g.log, "up:"+k.String())
	}
}

func (g *scriptedGame) CloseRequested() { g.log = append(g.log, "close") }

func (g *scriptedGame) Layout(w, h int) (int, int) { return w, h }

func (g *scriptedGame) Update() error {
	g.updates++
	g.log = append(g.log, "update")
	if g.quitAt > 0 && g.updates == g.quitAt {
		return render.ErrQuit
	}
	return nil
}

func TestEngineDeliversEventsBeforeUpdate(t *testing.T) {
	e := NewEngine(3).At(1, Press(input.KeySpace)).At(2, Release(input.KeySpace), CloseWindow())
	g := &scriptedGame{}

	if err := e.RunGame(g); err != nil {
		t.Fatal(err)
	}

	want := []string{"update", "down:space", "update", "up:space", "close", "update"}
	if len(g.log) != len(want) {
		t.Fatalf("log = %v, want %v", g.log, want)
	}
	for i := range want {
		if g.log[i] != want[i] {
			t.Fatalf("log = %v, want %v", g.log, want)
		}
	}
	if e.FramesRun() != 3 {
		t.Errorf("FramesRun() = %d, want 3", e.FramesRun())
	}
}

func TestEngineStopsOnQuit(t *testing.T) {
	e := NewEngine(0)
	g := &scriptedGame{quitAt: 4}
	if err := e.RunGame(g); err != nil {
		t.Fatal(err)
	}
	if g.updates != 4 {
		t.Errorf("updates = %d, want 4", g.updates)
	}
}

func TestSurfaceReject(t *testing.T) {
	boom := errors.New("lost")
	s := &Surface{Reject: func(f render.Frame) error {
		if f.Seq == 2 {
			return boom
		}
		return nil
	}}
	for seq := uint64(1); seq <= 3; seq++ {
		err := s.Submit(render.Frame{Seq: seq})
		if seq == 2 && !errors.Is(err, boom) {
			t.Errorf("Submit(2) = %v", err)
		}
	}
	if got := len(s.Frames()); got != 2 {
		t.Errorf("recorded %d frames, want 2", got)
	}
}

func TestStepClock(t *testing.T) {
	c := NewStepClock(16 * time.Millisecond)
	a := c.Now()
	b := c.Now()
	if b.Sub(a) != 16*time.Millisecond {
		t.Errorf("step = %v", b.Sub(a))
	}
}
