//go:build android || ios

// Package mobile is the ebitenmobile bind target.
package mobile

import (
	"log/slog"
	"os"

	"echoes/internal/app"
	"echoes/internal/config"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	cfg := config.Default()
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		logger = slog.Default()
	}
	mobile.SetGame(app.Build(cfg, logger), nil)
}

// Dummy forces gomobile to export the package.
func Dummy() {}
