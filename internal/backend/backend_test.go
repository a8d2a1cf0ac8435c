package backend

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/config"
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/input"
	"chosenoffset.com/barn/internal/render/headless"
	"chosenoffset.com/barn/internal/render/tui"
)

func TestOpenSelectsBackend(t *testing.T) {
	logger := log.New(io.Discard)
	tests := []struct {
		name  string
		check func(t *testing.T, b engine.Backend)
	}{
		{config.BackendHeadless, func(t *testing.T, b engine.Backend) {
			if _, ok := b.Engine.(*headless.Engine); !ok {
				t.Errorf("engine = %T", b.Engine)
			}
		}},
		{config.BackendTUI, func(t *testing.T, b engine.Backend) {
			if _, ok := b.Engine.(*tui.Engine); !ok {
				t.Errorf("engine = %T", b.Engine)
			}
			if _, ok := b.Surface.(*tui.Surface); !ok {
				t.Errorf("surface = %T", b.Surface)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Backend = tt.name
			b, err := Open(cfg, logger)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if b.Name != tt.name || b.Loader == nil || b.Audio == nil || b.Surface == nil {
				t.Fatalf("incomplete backend %+v", b)
			}
			tt.check(t, b)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "vga"
	_, err := Open(cfg, nil)

	var initErr *engine.BackendInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("Open() error = %v, want *BackendInitError", err)
	}
	if initErr.Component != "backend" {
		t.Errorf("Component = %q", initErr.Component)
	}
}

func TestGameOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendHeadless
	cfg.QuitKey = "q"
	cfg.Headless.Step = config.Duration(10 * time.Millisecond)

	opts, err := GameOptions(cfg, nil)
	if err != nil {
		t.Fatalf("GameOptions() error = %v", err)
	}
	if opts.QuitKey != input.KeyQ || opts.Width != 800 || opts.AssetRoot != "assets" {
		t.Errorf("opts = %+v", opts)
	}
	clock, ok := opts.Clock.(*headless.StepClock)
	if !ok || clock.Step != 10*time.Millisecond {
		t.Errorf("clock = %#v", opts.Clock)
	}

	cfg.QuitKey = "meta"
	if _, err := GameOptions(cfg, nil); err == nil {
		t.Error("expected an error for an unknown quit key")
	}
}
