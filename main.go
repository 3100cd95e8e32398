package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jumble/apps/go-server/internal/config"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
	"github.com/robalobadob/jumble/apps/go-server/internal/history"
	"github.com/robalobadob/jumble/apps/go-server/internal/httpserver"
	"github.com/robalobadob/jumble/apps/go-server/internal/jumble"
	"github.com/robalobadob/jumble/apps/go-server/internal/store"
	"github.com/robalobadob/jumble/apps/go-server/internal/words"
)

func main() {
	cfg, err := config.Load()
	setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	dict, err := loadWords(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	engine := jumble.New(dict)

	hist, err := history.Open(cfg.HistoryDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open history database")
	}
	defer hist.Close()

	mem := store.NewMemoryStore()
	svc := game.NewService(engine, mem,
		game.WithRecorder(hist),
		game.WithDailySalt(cfg.DailySalt),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go mem.RunSweeper(ctx, cfg.SessionTTL, cfg.SessionSweepInterval)

	srv := httpserver.New(
		httpserver.Deps{Engine: engine, Games: svc, Sessions: mem, History: hist},
		httpserver.Options{
			ClientOrigin:     cfg.ClientOrigin,
			RequestTimeout:   cfg.RequestTimeout,
			DefaultLength:    cfg.GameWordLength,
			DefaultMinLength: cfg.GameMinLength,
			RateLimitRPS:     cfg.RateLimitRPS,
			RateLimitBurst:   cfg.RateLimitBurst,
		},
	)

	log.Info().
		Str("port", cfg.Port).
		Int("words", dict.Len()).
		Dur("session_ttl", cfg.SessionTTL).
		Msg("starting go-server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func loadWords(path string) (*words.Dictionary, error) {
	if path == "" {
		return words.LoadDefault()
	}
	return words.LoadFile(path)
}
