package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	RiotAPIKey      string
	DBPath          string
	LeaderboardPath string
	ServerPort      string
	LogLevel        string
	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
}

// Load reads configuration from the environment (a .env file is honored when
// present). A missing Riot credential is a startup error: the process must
// refuse to serve rather than fail per request.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:      getEnv("RIOT_API_KEY", ""),
		DBPath:          getEnv("DB_PATH", "soloboom.db"),
		LeaderboardPath: getEnv("LEADERBOARD_PATH", "data/leaderboard-profiles.json"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SessionTTL:      getDuration("SESSION_TTL", 24*time.Hour),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("leaderboard_path", cfg.LeaderboardPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("session_ttl", cfg.SessionTTL).
		Dur("upstream_timeout", cfg.UpstreamTimeout).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
