package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// PostgresURL enables the postgres credential store when set; the
	// in-memory store is used otherwise.
	PostgresURL string

	Redis RedisConfig

	// ResetTokenSigningKey signs single-use reset tokens minted during the
	// modern reset flow.
	ResetTokenSigningKey string
	ResetTokenTTL        time.Duration

	// Default password policy applied when a legacy backend supplies none.
	MinPasswordLength      int
	RequireNonAlphanumeric bool
}

// RedisConfig holds connection settings for the optional redis-backed reset
// token store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PASSGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	signingKey := os.Getenv("PASSGATE_RESET_TOKEN_SIGNING_KEY")
	if signingKey == "" {
		// Development fallback. Production deployments set their own key.
		signingKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:                   addr,
		PostgresURL:            os.Getenv("PASSGATE_POSTGRES_URL"),
		Redis:                  redisFromEnv(),
		ResetTokenSigningKey:   signingKey,
		ResetTokenTTL:          durationEnv("PASSGATE_RESET_TOKEN_TTL", 15*time.Minute),
		MinPasswordLength:      intEnv("PASSGATE_MIN_PASSWORD_LENGTH", 8),
		RequireNonAlphanumeric: os.Getenv("PASSGATE_REQUIRE_NON_ALPHANUMERIC") == "true",
	}
}

func redisFromEnv() RedisConfig {
	return RedisConfig{
		URL:          os.Getenv("PASSGATE_REDIS_URL"),
		PoolSize:     intEnv("PASSGATE_REDIS_POOL_SIZE", 10),
		MinIdleConns: intEnv("PASSGATE_REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  durationEnv("PASSGATE_REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  durationEnv("PASSGATE_REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: durationEnv("PASSGATE_REDIS_WRITE_TIMEOUT", 3*time.Second),
	}
}

func intEnv(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
