package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/input"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	want := Default()
	cfg.Source, want.Source = "", ""
	if cfg != want {
		t.Errorf("embedded defaults = %+v\nwant %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestParseKeepsMissingDefaults(t *testing.T) {
	cfg, err := Parse([]byte("backend: tui\nterminal:\n  key_hold: 250ms\nwindow:\n  width: 320\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Backend != BackendTUI {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if got := cfg.Terminal.KeyHold.D(); got != 250*time.Millisecond {
		t.Errorf("KeyHold = %v", got)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 600 {
		t.Errorf("Window = %dx%d, want 320x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want default 60", cfg.TPS)
	}
}

func TestParseRejectsBadDuration(t *testing.T) {
	if _, err := Parse([]byte("headless:\n  step: soon\n")); err == nil {
		t.Fatal("expected an error for an invalid duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }, `unknown backend "sdl"`},
		{"unknown quit key", func(c *Config) { c.QuitKey = "hyper" }, "quit_key"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"volume too high", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"no frames", func(c *Config) { c.Headless.Frames = 0 }, "headless.frames"},
		{"no tps", func(c *Config) { c.TPS = -1 }, "tps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	cfg := Default()
	cfg.QuitKey = "Q"
	cfg.Log.Level = "debug"

	key, err := cfg.QuitKeyID()
	if err != nil || key != input.KeyQ {
		t.Errorf("QuitKeyID() = %v, %v", key, err)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	cfg.Log.Level = "nonsense"
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() fallback = %v", cfg.LogLevel())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, want embedded", cfg.Source)
	}

	userPath := filepath.Join(home, ".barn", "configs", FileName)
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Source != userPath || cfg.TPS != 30 {
		t.Errorf("Load() = source %q tps %d, want user file", cfg.Source, cfg.TPS)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(custom, []byte("backend: headless\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.Source != custom || cfg.Backend != BackendHeadless || cfg.TPS != 60 {
		t.Errorf("Load(custom) = %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "key_hold: 150ms") {
		t.Errorf("durations not written as strings:\n%s", data)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	for _, field := range []string{`"key_hold"`, `"sample_rate"`, `"headless"`, `"barn configuration"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("schema missing %s", field)
		}
	}
}
