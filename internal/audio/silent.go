package audio

import (
	"errors"
	"fmt"
	"os"
)

// SilentBackend checks that files exist but produces no sound. It is used by
// backends without an audio device.
type SilentBackend struct{}

// NewSilentBackend creates a silent backend.
func NewSilentBackend() *SilentBackend {
	return &SilentBackend{}
}

// Open implements Backend.
func (b *SilentBackend) Open(path string, loop bool) (Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return nil, errors.New("empty audio file")
	}
	return &SilentTrack{Loop: loop, volume: 1}, nil
}

// Close implements Backend.
func (b *SilentBackend) Close() error { return nil }

// SilentTrack records playback state without producing sound.
type SilentTrack struct {
	Loop    bool
	playing bool
	volume  float64
	rewinds int
	closed  bool
}

// Play implements Track.
func (t *SilentTrack) Play() { t.playing = true }

// Pause implements Track.
func (t *SilentTrack) Pause() { t.playing = false }

// Rewind implements Track.
func (t *SilentTrack) Rewind() error {
	t.rewinds++
	return nil
}

// SetVolume implements Track.
func (t *SilentTrack) SetVolume(v float64) { t.volume = v }

// IsPlaying implements Track.
func (t *SilentTrack) IsPlaying() bool { return t.playing }

// Close implements Track.
func (t *SilentTrack) Close() error {
	t.closed = true
	t.playing = false
	return nil
}

// Volume returns the last volume set.
func (t *SilentTrack) Volume() float64 { return t.volume }

// Rewinds returns how many times the track was rewound.
func (t *SilentTrack) Rewinds() int { return t.rewinds }

// Closed reports whether Close was called.
func (t *SilentTrack) Closed() bool { return t.closed }
