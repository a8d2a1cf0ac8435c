// barn runs the example scenes of the barn 2D engine.
//
// Usage:
//
//	barn run [scene]     - Run a scene (default: menu)
//	barn list            - List available scenes
//	barn assets          - List assets and report missing ones
//	barn config show     - Print the effective configuration
//	barn config schema   - Print the configuration JSON Schema
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.barn/configs, ./configs)
//	--backend <name>     - ebiten, tui or headless
//	--assets <dir>       - Asset root directory
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
//	--frames <n>         - Frames to run on the headless backend
//	--seed <value>       - RNG seed for scenes (0 = time based)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"

	"chosenoffset.com/barn/internal/config"
)

var (
	flagConfig   string
	flagBackend  string
	flagAssets   string
	flagLogLevel string
	flagLogFile  string
	flagFrames   int
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

var rootCmd = &cobra.Command{
	Use:   "barn",
	Short: "barn - a small 2D game engine",
	Long: `barn runs game states on a desktop window, a terminal or a headless
loop. The bundled scenes show collision, sprite animation, text and audio.

Examples:
  barn run
  barn run snow --backend tui
  barn run collision --backend headless --frames 120
  barn config show`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.StringVar(&flagBackend, "backend", "", "Backend: ebiten, tui or headless")
	pf.StringVar(&flagAssets, "assets", "", "Asset root directory")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.IntVar(&flagFrames, "frames", 0, "Frames to run on the headless backend")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("assets") {
		cfg.Assets.Root = flagAssets
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("frames") {
		cfg.Headless.Frames = flagFrames
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", cfg.Source, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. The terminal backend owns the screen,
// so its logs go to --log-file or nowhere.
func newLogger(cfg config.Config) (*log.Logger, error) {
	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		closer.Bind(func() { f.Close() })
		w = f
	case cfg.Backend == config.BackendTUI:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "barn",
		Level:           cfg.LogLevel(),
	}), nil
}
