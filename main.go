package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	levelPath := flag.String("level", "storage.yaml", "level file to load at startup and write on save")
	debug := flag.Bool("debug", false, "draw hitbox and triggerbox outlines")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml when it changes on disk")
	jsonLogs := flag.Bool("json-logs", false, "emit JSON logs instead of console output")
	logLevel := flag.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(*logLevel, *jsonLogs)
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(logger, Options{
		LevelPath: *levelPath,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(game.title)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

func newLogger(levelName string, jsonLogs bool) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if jsonLogs {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncoderConfig.ConsoleSeparator = "  "
		cfg.DisableCaller = true
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
