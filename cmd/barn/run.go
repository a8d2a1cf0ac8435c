package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xlab/closer"

	"chosenoffset.com/barn/internal/assets"
	"chosenoffset.com/barn/internal/backend"
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/placeholders"
	"chosenoffset.com/barn/internal/scenes"
)

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Run a scene",
	Long: `Run the named scene, or the scene menu when no name is given.

Controls:
  Arrows     - Move / select
  Enter      - Open the selected scene (menu)
  Tab        - Back to the menu
  Esc        - Quit (see quit_key)

Examples:
  barn run
  barn run sprites
  barn run music --backend ebiten`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	name := scenes.MenuName
	if len(args) == 1 {
		name = args[0]
	}
	if !scenes.Exists(name) {
		return fmt.Errorf("unknown scene %q, run 'barn list' to see available scenes", name)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", cfg.Source, "backend", cfg.Backend)
	if missing := assets.Missing(cfg.Assets.Root, placeholders.Paths); len(missing) > 0 {
		logger.Warn("scene assets missing, run genassets", "root", cfg.Assets.Root, "missing", missing)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, err := backend.Open(cfg, logger)
	if err != nil {
		return err
	}
	opts, err := backend.GameOptions(cfg, logger)
	if err != nil {
		return err
	}
	game, err := engine.New(b, opts)
	if err != nil {
		return err
	}
	closer.Bind(func() {
		if err := game.Shutdown(); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	})

	state, err := scenes.Create(name, scenes.Params{Seed: seed})
	if err != nil {
		return err
	}
	return game.Run(state)
}
