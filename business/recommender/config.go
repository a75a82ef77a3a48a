package recommender

import "time"

type Config struct {
	// Workers bounds concurrent product evaluations; 1 means sequential.
	Workers int

	// DefaultLimit caps ranked results when the caller gives none.
	DefaultLimit int

	// CacheTTL bounds how long a ranked response stays in the cache.
	CacheTTL time.Duration
}

const (
	defaultWorkers  = 4
	defaultLimit    = 10
	defaultCacheTTL = 5 * time.Minute
)

func DefaultConfig() Config {
	return Config{
		Workers:      defaultWorkers,
		DefaultLimit: defaultLimit,
		CacheTTL:     defaultCacheTTL,
	}
}
