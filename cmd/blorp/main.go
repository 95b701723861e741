package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"

	"chosenoffset.com/blorp/internal/game"
	"chosenoffset.com/blorp/internal/logging"
	"chosenoffset.com/blorp/internal/render"
	ebitenrender "chosenoffset.com/blorp/internal/render/ebiten"
	"chosenoffset.com/blorp/internal/simulation"
	"chosenoffset.com/blorp/internal/world/assets"
)

func main() {
	defaults := simulation.DefaultConfig()

	flags := pflag.NewFlagSet("blorp", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "config file (json, yaml or toml)")
	flags.String("log-level", defaults.Log.Level, "log level: debug, info, warn or error")
	flags.Bool("debug", defaults.Debug.Overlay, "show the debug overlay")
	_ = flags.Parse(os.Args[1:])

	v := simulation.NewViper()
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("debug.overlay", flags.Lookup("debug"))

	cfg, err := simulation.LoadWith(v, *configPath)
	if err != nil {
		// No config means no log settings yet
		logger := logging.New(defaults.Log, os.Stderr)
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := logging.New(cfg.Log, os.Stderr)
	logger.Info().
		Str("config", *configPath).
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Int("tps", cfg.Window.TPS).
		Msg("Starting Blorp")

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	sprites, err := assets.Load(cfg.Assets, loader, logging.Component(logger, "assets"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load sprites")
	}
	if missing := sprites.Missing(); len(missing) > 0 {
		logger.Warn().
			Int("count", len(missing)).
			Msg("Some sprites are missing, run genplaceholders to create stand-ins")
	}

	g := game.New(cfg, sprites, inputMgr, renderer, logging.Component(logger, "game"))

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetCursorHidden(cfg.Window.HideCursor)
	engine.SetTPS(cfg.Window.TPS)
	engine.SetWindowClosingHandled(true)

	if err := engine.RunGame(g); err != nil && !errors.Is(err, render.ErrTerminated) {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
	logger.Info().Uint64("ticks", g.Ticks).Msg("Bye")
}
