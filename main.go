package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gravityshift/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configDir := flag.String("config", ".", "directory containing gravityshift.yaml")
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level prefab in prefabs/ (overrides game.yaml)")
	skipMenu := flag.Bool("skip-menu", false, "start the round without the main menu")
	logLevel := flag.String("log-level", "", "zerolog level (trace, debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	// Flags only win when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "level":
			cfg.Level = *levelName
		case "skip-menu":
			cfg.SkipMainMenu = *skipMenu
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
		switch {
		case *baseMonitor:
			ebiten.SetMonitor(monitors[0])
		case cfg.Window.Monitor > 0 && cfg.Window.Monitor < len(monitors):
			ebiten.SetMonitor(monitors[cfg.Window.Monitor])
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
