// Package audio manages named sounds and music on top of a playback backend.
package audio

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSound is returned when playing a name that was never loaded.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Track is a single loaded sound owned by a backend.
type Track interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
	Close() error
}

// Backend decodes files into tracks.
type Backend interface {
	// Open loads the file at path. Looping tracks restart when they end.
	Open(path string, loop bool) (Track, error)
	// Close releases the backend. It is safe to call more than once.
	Close() error
}

type entry struct {
	path   string
	track  Track
	volume float64 // before the master volume
}

// Manager owns named tracks. Tracks are loaded paused. Every track plays at
// its own volume scaled by the master volume.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	tracks  map[string]*entry
	volume  float64
	closed  bool
}

// NewManager creates a manager over backend with the given master volume.
func NewManager(backend Backend, volume float64) *Manager {
	return &Manager{
		backend: backend,
		tracks:  make(map[string]*entry),
		volume:  clampVolume(volume),
	}
}

// Load opens path under name. Loading a name that already exists is a no-op.
func (m *Manager) Load(name, path string, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.New("audio: manager closed")
	}
	if _, ok := m.tracks[name]; ok {
		return nil
	}
	track, err := m.backend.Open(path, loop)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	e := &entry{path: path, track: track, volume: 1}
	track.SetVolume(e.volume * m.volume)
	m.tracks[name] = e
	return nil
}

// Loaded reports whether name has been loaded.
func (m *Manager) Loaded(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.tracks[name]
	return ok
}

// Names returns the loaded names in sorted order.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.tracks))
	for name := range m.tracks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Play starts or continues the named track.
func (m *Manager) Play(name string) error {
	e, ok := m.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	e.track.Play()
	return nil
}

// Pause pauses the named track. Unknown names are ignored.
func (m *Manager) Pause(name string) {
	if e, ok := m.lookup(name); ok {
		e.track.Pause()
	}
}

// Resume continues a paused track. Unknown names are ignored.
func (m *Manager) Resume(name string) {
	if e, ok := m.lookup(name); ok && !e.track.IsPlaying() {
		e.track.Play()
	}
}

// Stop pauses the named track and rewinds it to the start.
func (m *Manager) Stop(name string) error {
	e, ok := m.lookup(name)
	if !ok {
		return nil
	}
	e.track.Pause()
	if err := e.track.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", name, err)
	}
	return nil
}

// SetVolume sets the volume of the named track, clamped to [0, 1]. The
// track plays at volume times the master volume.
func (m *Manager) SetVolume(name string, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.tracks[name]; ok {
		e.volume = clampVolume(volume)
		e.track.SetVolume(e.volume * m.volume)
	}
}

// Volume returns the volume set for the named track, or 0 if it is unknown.
func (m *Manager) Volume(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.tracks[name]; ok {
		return e.volume
	}
	return 0
}

// MasterVolume returns the volume every track is scaled by.
func (m *Manager) MasterVolume() float64 {
	return m.volume
}

// IsPlaying reports whether the named track is playing.
func (m *Manager) IsPlaying(name string) bool {
	e, ok := m.lookup(name)
	return ok && e.track.IsPlaying()
}

// Close releases every track and the backend.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for name, e := range m.tracks {
		if err := e.track.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", name, err))
		}
	}
	clear(m.tracks)
	if err := m.backend.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (m *Manager) lookup(name string) (*entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.tracks[name]
	return e, ok
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
