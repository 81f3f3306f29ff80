package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"echoes/internal/app"
	"echoes/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// 1. Window Setup
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)
	// an unfocused window keeps running; only minimizing pauses the screen
	ebiten.SetRunnableOnUnfocused(true)

	// 2. Initialize Game
	game := app.Build(cfg, logger)
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "assets", assetSource(cfg))

	// 3. Run Loop
	err = ebiten.RunGame(game)
	game.Dispose()
	if err != nil {
		logger.Error("game stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("bye")
}

func assetSource(cfg config.Config) string {
	if cfg.AssetDir != "" {
		return cfg.AssetDir
	}
	return "embedded"
}
