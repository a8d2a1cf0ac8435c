// Package backend assembles the platform pieces an engine.Game runs on.
package backend

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/barn/internal/audio"
	ebitenaudio "chosenoffset.com/barn/internal/audio/ebiten"
	"chosenoffset.com/barn/internal/config"
	"chosenoffset.com/barn/internal/engine"
	"chosenoffset.com/barn/internal/render/ebiten"
	"chosenoffset.com/barn/internal/render/headless"
	"chosenoffset.com/barn/internal/render/softload"
	"chosenoffset.com/barn/internal/render/tui"
)

// Open builds the backend named by cfg.Backend. Failures are returned as
// *engine.BackendInitError.
func Open(cfg config.Config, logger *log.Logger) (engine.Backend, error) {
	var (
		b   engine.Backend
		err error
	)
	switch cfg.Backend {
	case config.BackendEbiten:
		b, err = openEbiten(cfg)
	case config.BackendTUI:
		b = openTUI(cfg)
	case config.BackendHeadless:
		b = openHeadless(cfg)
	default:
		err = &engine.BackendInitError{Component: "backend", Err: fmt.Errorf("unknown backend %q", cfg.Backend)}
	}
	if err != nil {
		return engine.Backend{}, err
	}
	if logger != nil {
		logger.Debug("backend ready", "name", b.Name, "tps", cfg.TPS)
	}
	return b, nil
}

// GameOptions derives the engine options from cfg. The headless backend
// gets a step clock so runs are reproducible.
func GameOptions(cfg config.Config, logger *log.Logger) (engine.Options, error) {
	quit, err := cfg.QuitKeyID()
	if err != nil {
		return engine.Options{}, fmt.Errorf("quit key: %w", err)
	}
	opts := engine.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		QuitKey:   quit,
		AssetRoot: cfg.Assets.Root,
		Volume:    cfg.Audio.Volume,
		Logger:    logger,
	}
	if cfg.Backend == config.BackendHeadless {
		opts.Clock = headless.NewStepClock(cfg.Headless.Step.D())
	}
	return opts, nil
}

func openEbiten(cfg config.Config) (engine.Backend, error) {
	snd, err := ebitenaudio.NewBackend(cfg.Audio.SampleRate)
	if err != nil {
		return engine.Backend{}, &engine.BackendInitError{Component: "audio", Err: err}
	}
	surface := ebiten.NewSurface()
	return engine.Backend{
		Name:    config.BackendEbiten,
		Engine:  ebiten.NewEngine(surface, cfg.TPS),
		Loader:  ebiten.NewResourceLoader(),
		Surface: surface,
		Audio:   snd,
	}, nil
}

func openTUI(cfg config.Config) engine.Backend {
	surface := tui.NewSurface()
	return engine.Backend{
		Name:    config.BackendTUI,
		Engine:  tui.NewEngine(surface, cfg.TPS, cfg.Terminal.KeyHold.D()),
		Loader:  softload.NewLoader(),
		Surface: surface,
		Audio:   audio.NewSilentBackend(),
	}
}

func openHeadless(cfg config.Config) engine.Backend {
	return engine.Backend{
		Name:    config.BackendHeadless,
		Engine:  headless.NewEngine(cfg.Headless.Frames),
		Loader:  softload.NewLoader(),
		Surface: &headless.Surface{},
		Audio:   audio.NewSilentBackend(),
	}
}
