// Package ebiten plays audio through ebiten's audio context.
package ebiten

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"chosenoffset.com/barn/internal/audio"
)

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = 44100

// EbitenAudioBackend implements audio.Backend. Files are read fully into
// memory and decoded by extension (.mp3, .wav, .ogg).
type EbitenAudioBackend struct {
	ctx *eaudio.Context

	mu      sync.Mutex
	players []*eaudio.Player
	closed  bool
}

// NewBackend creates a backend on the process-wide audio context. Ebiten
// allows a single context per process, so an existing context is reused and
// sampleRate must match it.
func NewBackend(sampleRate int) (*EbitenAudioBackend, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz, requested %d Hz", ctx.SampleRate(), sampleRate)
	}
	return &EbitenAudioBackend{ctx: ctx}, nil
}

// Open implements audio.Backend.
func (b *EbitenAudioBackend) Open(path string, loop bool) (audio.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, length, err := b.decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = eaudio.NewInfiniteLoop(stream, length)
	}
	player, err := b.ctx.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		player.Close()
		return nil, fmt.Errorf("audio backend closed")
	}
	b.players = append(b.players, player)
	return &track{player: player}, nil
}

func (b *EbitenAudioBackend) decode(path string, r io.ReadSeeker) (io.ReadSeeker, int64, error) {
	rate := b.ctx.SampleRate()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode mp3: %w", err)
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode wav: %w", err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode ogg: %w", err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

// Close stops and releases every player. The audio context itself lives for
// the rest of the process.
func (b *EbitenAudioBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, p := range b.players {
		p.Pause()
		p.Close()
	}
	b.players = nil
	return nil
}

// track adapts an ebiten player to audio.Track.
type track struct {
	player *eaudio.Player
}

func (t *track) Play() { t.player.Play() }

func (t *track) Pause() { t.player.Pause() }

func (t *track) Rewind() error { return t.player.SetPosition(0) }

func (t *track) SetVolume(volume float64) { t.player.SetVolume(volume) }

func (t *track) IsPlaying() bool { return t.player.IsPlaying() }

func (t *track) Close() error { return t.player.Close() }
