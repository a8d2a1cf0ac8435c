// Package config loads the engine configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/barn/internal/input"
)

// Backend names.
const (
	BackendEbiten   = "ebiten"
	BackendTUI      = "tui"
	BackendHeadless = "headless"
)

// Backends lists every supported backend name.
var Backends = []string{BackendEbiten, BackendTUI, BackendHeadless}

// Config is the full engine configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window" json:"window"`
	Backend  string         `yaml:"backend" json:"backend" jsonschema:"enum=ebiten,enum=tui,enum=headless,description=Platform backend"`
	TPS      int            `yaml:"tps" json:"tps" jsonschema:"minimum=1,description=Frames per second"`
	QuitKey  string         `yaml:"quit_key" json:"quit_key" jsonschema:"description=Key that stops the game loop"`
	Seed     int64          `yaml:"seed" json:"seed" jsonschema:"description=Random seed for scenes; 0 picks one from the clock"`
	Assets   AssetsConfig   `yaml:"assets" json:"assets"`
	Log      LogConfig      `yaml:"log" json:"log"`
	Audio    AudioConfig    `yaml:"audio" json:"audio"`
	Terminal TerminalConfig `yaml:"terminal" json:"terminal"`
	Headless HeadlessConfig `yaml:"headless" json:"headless"`

	// Source is the file the configuration was read from, or "embedded".
	Source string `yaml:"-" json:"-"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Title     string `yaml:"title" json:"title"`
	Width     int    `yaml:"width" json:"width" jsonschema:"minimum=1"`
	Height    int    `yaml:"height" json:"height" jsonschema:"minimum=1"`
	Resizable bool   `yaml:"resizable" json:"resizable"`
}

// AssetsConfig locates game assets.
type AssetsConfig struct {
	Root string `yaml:"root" json:"root" jsonschema:"description=Directory relative asset paths resolve against"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
}

// AudioConfig configures audio playback.
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate" json:"sample_rate" jsonschema:"minimum=1"`
	Volume     float64 `yaml:"volume" json:"volume" jsonschema:"minimum=0,maximum=1"`
}

// TerminalConfig configures the terminal backend.
type TerminalConfig struct {
	KeyHold Duration `yaml:"key_hold" json:"key_hold" jsonschema:"description=How long a key stays down without a repeat"`
}

// HeadlessConfig configures the headless backend.
type HeadlessConfig struct {
	Frames int      `yaml:"frames" json:"frames" jsonschema:"minimum=1,description=Frames to run before stopping"`
	Step   Duration `yaml:"step" json:"step" jsonschema:"description=Simulated time between frames"`
}

// Duration is a time.Duration written as a Go duration string ("150ms").
type Duration time.Duration

// D returns d as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// String implements fmt.Stringer.
func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// JSONSchema describes Duration as a string.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration such as 150ms or 1.5s",
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "barn",
			Width:  800,
			Height: 600,
		},
		Backend: BackendEbiten,
		TPS:     60,
		QuitKey: "escape",
		Assets:  AssetsConfig{Root: "assets"},
		Log:     LogConfig{Level: "info"},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     1,
		},
		Terminal: TerminalConfig{KeyHold: Duration(150 * time.Millisecond)},
		Headless: HeadlessConfig{
			Frames: 600,
			Step:   Duration(16 * time.Millisecond),
		},
		Source: "default",
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if !validBackend(c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, err := c.QuitKeyID(); err != nil {
		errs = append(errs, fmt.Errorf("quit_key: %w", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	if c.Terminal.KeyHold <= 0 {
		errs = append(errs, fmt.Errorf("terminal.key_hold must be positive, got %s", c.Terminal.KeyHold))
	}
	if c.Headless.Frames <= 0 {
		errs = append(errs, fmt.Errorf("headless.frames must be positive, got %d", c.Headless.Frames))
	}
	if c.Headless.Step <= 0 {
		errs = append(errs, fmt.Errorf("headless.step must be positive, got %s", c.Headless.Step))
	}
	return errors.Join(errs...)
}

// QuitKeyID parses QuitKey.
func (c Config) QuitKeyID() (input.Key, error) {
	return input.ParseKey(c.QuitKey)
}

// LogLevel parses Log.Level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
