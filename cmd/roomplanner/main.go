package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/roomplanner"
)

const (
	screenWidth  = 1024
	screenHeight = 720
)

func main() {
	var (
		configPath string
		seed       uint64
		mode       string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.Uint64Var(&seed, "seed", 0, "Factory seed (0 keeps the configured seed)")
	flag.StringVar(&mode, "mode", "", "Initial camera mode: fixed or explore")
	flag.StringVar(&logLevel, "log-level", "", "Log level override")
	flag.Parse()

	cfg, err := roomplanner.LoadConfig(configPath)
	if err != nil {
		roomplanner.Log.WithError(err).Fatal("loading config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if mode != "" {
		cfg.Camera.Mode = mode
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		roomplanner.Log.WithError(err).Fatal("invalid flags")
	}
	roomplanner.ConfigureLogging(cfg.Log)

	roomplanner.Log.WithField("seed", cfg.Seed).Info("starting room planner")

	game := NewGame(roomplanner.NewEditor(cfg), screenWidth, screenHeight)
	if err := game.Start(); err != nil {
		roomplanner.Log.WithError(err).Fatal("starting editor")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Room Planner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		roomplanner.Log.WithError(err).Fatal("run loop")
	}
}
