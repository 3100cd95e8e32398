// Package config reads server settings from the environment.
//
// A .env file in the working directory is loaded first when present; real
// environment variables win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of the server.
type Config struct {
	Port           string
	LogLevel       string
	LogFormat      string // "json" or "console"
	ClientOrigin   string // single CORS origin
	RequestTimeout time.Duration

	WordsFile      string // empty means the embedded list
	GameWordLength int
	GameMinLength  int
	DailySalt      string

	SessionTTL           time.Duration // 0 disables expiry
	SessionSweepInterval time.Duration
	HistoryDSN           string

	RateLimitRPS   int
	RateLimitBurst int
}

// Load reads .env (if any) and the environment, then validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	c := Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),

		WordsFile:      os.Getenv("WORDS_FILE"),
		GameWordLength: getEnvInt("GAME_WORD_LENGTH", 6),
		GameMinLength:  getEnvInt("GAME_MIN_LENGTH", 3),
		DailySalt:      getEnv("DAILY_SALT", "jumble"),

		SessionTTL:           getEnvDuration("SESSION_TTL", 0),
		SessionSweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		HistoryDSN:           os.Getenv("HISTORY_DSN"),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
	return c, c.Validate()
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Port == "":
		return fmt.Errorf("PORT must not be empty")
	case c.LogFormat != "json" && c.LogFormat != "console":
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	case c.GameWordLength < 3:
		return fmt.Errorf("GAME_WORD_LENGTH must be at least 3, got %d", c.GameWordLength)
	case c.GameMinLength < 1 || c.GameMinLength > c.GameWordLength:
		return fmt.Errorf("GAME_MIN_LENGTH must be between 1 and %d, got %d", c.GameWordLength, c.GameMinLength)
	case c.SessionTTL < 0:
		return fmt.Errorf("SESSION_TTL must not be negative")
	case c.SessionTTL > 0 && c.SessionSweepInterval <= 0:
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_TTL is set")
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	case c.RequestTimeout <= 0:
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Dur("default", fallback).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}
