package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeBackend struct {
	opened map[string]*SilentTrack
	fail   error
	closed int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{opened: make(map[string]*SilentTrack)}
}

func (b *fakeBackend) Open(path string, loop bool) (Track, error) {
	if b.fail != nil {
		return nil, b.fail
	}
	t := &SilentTrack{Loop: loop}
	b.opened[path] = t
	return t, nil
}

func (b *fakeBackend) Close() error {
	b.closed++
	return nil
}

func TestManagerLoadIsIdempotent(t *testing.T) {
	b := newFakeBackend()
	m := NewManager(b, 0.5)

	if err := m.Load("theme", "a.wav", true); err != nil {
		t.Fatal(err)
	}
	if err := m.Load("theme", "b.wav", false); err != nil {
		t.Fatal(err)
	}

	if len(b.opened) != 1 {
		t.Fatalf("backend opened %d files, want 1", len(b.opened))
	}
	tr := b.opened["a.wav"]
	if !tr.Loop {
		t.Error("expected looping track")
	}
	if tr.IsPlaying() {
		t.Error("tracks load paused")
	}
	if tr.Volume() != 0.5 {
		t.Errorf("initial volume = %v, want 0.5", tr.Volume())
	}
}

func TestManagerControls(t *testing.T) {
	b := newFakeBackend()
	m := NewManager(b, 1)
	if err := m.Load("jump", "jump.wav", false); err != nil {
		t.Fatal(err)
	}
	tr := b.opened["jump.wav"]

	if err := m.Play("jump"); err != nil {
		t.Fatal(err)
	}
	if !m.IsPlaying("jump") {
		t.Error("expected playing after Play")
	}

	m.Pause("jump")
	if m.IsPlaying("jump") {
		t.Error("expected paused")
	}
	m.Resume("jump")
	if !m.IsPlaying("jump") {
		t.Error("expected playing after Resume")
	}

	if err := m.Stop("jump"); err != nil {
		t.Fatal(err)
	}
	if m.IsPlaying("jump") || tr.Rewinds() != 1 {
		t.Errorf("Stop should pause and rewind, playing=%v rewinds=%d", m.IsPlaying("jump"), tr.Rewinds())
	}

	m.SetVolume("jump", 3)
	if tr.Volume() != 1 {
		t.Errorf("volume = %v, want clamped to 1", tr.Volume())
	}
	m.SetVolume("jump", -1)
	if tr.Volume() != 0 {
		t.Errorf("volume = %v, want clamped to 0", tr.Volume())
	}
}

func TestManagerScalesByMasterVolume(t *testing.T) {
	b := newFakeBackend()
	m := NewManager(b, 0.25)
	if err := m.Load("theme", "theme.wav", true); err != nil {
		t.Fatal(err)
	}
	tr := b.opened["theme.wav"]

	tests := []struct {
		set       float64
		wantTrack float64
		wantOwn   float64
	}{
		{1, 0.25, 1},
		{0.5, 0.125, 0.5},
		{2, 0.25, 1},
		{-1, 0, 0},
	}
	for _, tt := range tests {
		m.SetVolume("theme", tt.set)
		if got := tr.Volume(); got != tt.wantTrack {
			t.Errorf("SetVolume(%v): track volume = %v, want %v", tt.set, got, tt.wantTrack)
		}
		if got := m.Volume("theme"); got != tt.wantOwn {
			t.Errorf("SetVolume(%v): Volume() = %v, want %v", tt.set, got, tt.wantOwn)
		}
	}
	if m.MasterVolume() != 0.25 {
		t.Errorf("MasterVolume() = %v", m.MasterVolume())
	}
}

func TestManagerUnknownNames(t *testing.T) {
	m := NewManager(newFakeBackend(), 1)

	if err := m.Play("ghost"); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Play(ghost) = %v, want ErrUnknownSound", err)
	}
	m.Pause("ghost")
	m.Resume("ghost")
	m.SetVolume("ghost", 0.3)
	if err := m.Stop("ghost"); err != nil {
		t.Errorf("Stop(ghost) = %v", err)
	}
	if m.IsPlaying("ghost") || m.Loaded("ghost") || m.Volume("ghost") != 0 {
		t.Error("unknown sound should not report state")
	}
}

func TestManagerLoadError(t *testing.T) {
	want := errors.New("decode failed")
	b := newFakeBackend()
	b.fail = want
	m := NewManager(b, 1)

	if err := m.Load("x", "x.ogg", false); !errors.Is(err, want) {
		t.Fatalf("Load() = %v, want wrapped %v", err, want)
	}
	if m.Loaded("x") {
		t.Error("failed load must not be cached")
	}
}

func TestManagerClose(t *testing.T) {
	b := newFakeBackend()
	m := NewManager(b, 1)
	for _, n := range []string{"a", "b"} {
		if err := m.Load(n, n+".wav", false); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if b.closed != 1 {
		t.Errorf("backend closed %d times, want 1", b.closed)
	}
	for path, tr := range b.opened {
		if !tr.Closed() {
			t.Errorf("track %s not closed", path)
		}
	}
	if err := m.Load("c", "c.wav", false); err == nil {
		t.Error("Load after Close should fail")
	}
}

func TestSilentBackend(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "tone.wav")
	if err := os.WriteFile(good, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.wav")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewSilentBackend()
	if _, err := b.Open(good, true); err != nil {
		t.Errorf("Open(good) = %v", err)
	}
	for _, p := range []string{empty, dir, filepath.Join(dir, "missing.wav")} {
		if _, err := b.Open(p, false); err == nil {
			t.Errorf("Open(%s) should fail", p)
		}
	}
}
