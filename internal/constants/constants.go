package constants

import "time"

const (
	// DefaultMatchCount is the match-history length when the caller does
	// not specify one.
	DefaultMatchCount = 10

	// MaxMatchCount caps the fan-out regardless of the caller-supplied
	// bound.
	MaxMatchCount = 20

	// MatchFetchConcurrency bounds parallel match-detail lookups.
	MatchFetchConcurrency = 10
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SessionTokenLength = 32
)
