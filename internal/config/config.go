package config

import (
	"errors"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var ErrMissingAPIKey = errors.New("RGAPI_KEY is required")

type Config struct {
	RiotAPIKey string

	// quick search target, empty when unset
	DefaultName   string
	DefaultRegion domain.Region

	MatchCount      int
	ConcurrentFetch bool

	LogLevel string
	LogFile  string
}

func Load() (*Config, error) {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	cfg := &Config{
		RiotAPIKey:      getEnv("RGAPI_KEY", os.Getenv("RIOT_API_KEY")),
		DefaultName:     strings.TrimSpace(getEnv("WATCHER_NAME", "")),
		DefaultRegion:   domain.ParseRegion(getEnv("WATCHER_REGION", "")),
		MatchCount:      getEnvInt("WATCHER_MATCH_COUNT", constants.DefaultMatchCount),
		ConcurrentFetch: getEnvBool("WATCHER_CONCURRENT_FETCH", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("WATCHER_LOG_FILE", ""),
	}

	if cfg.RiotAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	switch {
	case cfg.MatchCount < 1:
		cfg.MatchCount = 1
	case cfg.MatchCount > constants.MaxMatchCount:
		cfg.MatchCount = constants.MaxMatchCount
	}

	return cfg, nil
}

// HasQuickSearch reports whether a default summoner was configured.
func (c *Config) HasQuickSearch() bool {
	return c.DefaultName != ""
}

func (c *Config) LogSummary(logger zerolog.Logger) {
	logger.Info().
		Str("default_name", c.DefaultName).
		Str("default_region", c.DefaultRegion.Code()).
		Int("match_count", c.MatchCount).
		Bool("concurrent_fetch", c.ConcurrentFetch).
		Str("log_level", c.LogLevel).
		Msg("configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

var Module = fx.Provide(Load)
