package app

import (
	"io/fs"
	"log/slog"
	"os"

	"echoes/internal/assets"
	"echoes/internal/config"
	"echoes/internal/platform"
	"echoes/internal/screen"
	"echoes/internal/screens"
)

// Build wires the host for cfg: asset root, live input and the menu as the
// first screen.
func Build(cfg config.Config, logger *slog.Logger) *Host {
	loader := assets.NewLoader(assetRoot(cfg), logger)
	return New(Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
		Debug:  cfg.Debug,
	}, platform.NewEbiten(), loader, logger, func() screen.Screen {
		return screens.NewMenu()
	})
}

func assetRoot(cfg config.Config) fs.FS {
	if cfg.AssetDir != "" {
		return os.DirFS(cfg.AssetDir)
	}
	return assets.Embedded()
}
