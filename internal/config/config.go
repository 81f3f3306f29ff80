package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Window defaults (desktop launcher size)
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "Echoes"
	DefaultTPS    = 60
)

// AssetDirEnv overrides the embedded asset root with a directory on disk.
const AssetDirEnv = "ECHOES_ASSETS"

type Config struct {
	Width     int
	Height    int
	Title     string
	TPS       int
	Resizable bool
	LogLevel  string
	// AssetDir is empty when the embedded assets should be used.
	AssetDir string
	Debug    bool
}

func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Title:     DefaultTitle,
		TPS:       DefaultTPS,
		Resizable: true,
		LogLevel:  "info",
	}
}

// Parse builds a Config from defaults, the environment and args, in that
// order of precedence (args win).
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if dir := strings.TrimSpace(os.Getenv(AssetDirEnv)); dir != "" {
		cfg.AssetDir = dir
	}

	fs := flag.NewFlagSet("echoes", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "update ticks per second")
	fs.BoolVar(&cfg.Resizable, "resizable", cfg.Resizable, "allow resizing the window")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "asset directory (default: embedded, or $"+AssetDirEnv+")")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "draw the debug overlay")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid tps %d", c.TPS))
	}
	if _, err := ResolveLogLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}
