package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv(AssetDirEnv, "")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("want defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.Width != 640 || cfg.Height != 480 || cfg.TPS != 60 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseFlags(t *testing.T) {
	t.Setenv(AssetDirEnv, "")
	cfg, err := Parse([]string{"-width", "1024", "-height=768", "-log-level", "debug", "-debug", "-assets", "/tmp/a"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Fatalf("want 1024x768, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.LogLevel != "debug" || !cfg.Debug || cfg.AssetDir != "/tmp/a" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseAssetDirFromEnv(t *testing.T) {
	t.Setenv(AssetDirEnv, " /srv/echoes ")
	cfg, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AssetDir != "/srv/echoes" {
		t.Fatalf("want env asset dir, got %q", cfg.AssetDir)
	}

	cfg, err = Parse([]string{"-assets", "./local"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.AssetDir != "./local" {
		t.Fatalf("flag should win over env, got %q", cfg.AssetDir)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Setenv(AssetDirEnv, "")
	cases := map[string][]string{
		"zero width":   {"-width", "0"},
		"negative tps": {"-tps", "-1"},
		"bad level":    {"-log-level", "trace"},
		"extra args":   {"menu"},
		"unknown flag": {"-fullscreen"},
	}
	for name, args := range cases {
		if _, err := Parse(args, io.Discard); err == nil {
			t.Fatalf("%s: want error, got nil", name)
		}
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "-log-level") {
		t.Fatalf("usage should list flags, got %q", out.String())
	}
}

func TestResolveLogLevel(t *testing.T) {
	want := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, lvl := range want {
		got, err := ResolveLogLevel(in)
		if err != nil || got != lvl {
			t.Fatalf("%s: want %v, got %v (%v)", in, lvl, got, err)
		}
	}
	if _, err := ResolveLogLevel("INFO"); err == nil {
		t.Fatalf("level names are case sensitive")
	}
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "screen", "menu")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "screen=menu") {
		t.Fatalf("unexpected log output %q", out)
	}
}
