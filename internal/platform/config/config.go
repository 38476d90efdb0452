package config

import (
	"os"
	"strconv"
	"time"
)

// Store backends for normalized profiles.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr         string
	StrictBureau bool
	ProfileStore string
	ProfileTTL   time.Duration
	Logging      LoggingConfig
	Redis        RedisConfig
	Database     DatabaseConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// RedisConfig configures the Redis profile cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig configures the PostgreSQL snapshot store.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// DefaultProfileTTL bounds how long a normalized profile is served from the store.
var DefaultProfileTTL = 5 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CREDITGUARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	profileStore := os.Getenv("PROFILE_STORE")
	if profileStore == "" {
		profileStore = StoreMemory
	}

	return Server{
		Addr:         addr,
		StrictBureau: os.Getenv("STRICT_BUREAU") == "true",
		ProfileStore: profileStore,
		ProfileTTL:   durationEnv("PROFILE_CACHE_TTL", DefaultProfileTTL),
		Logging: LoggingConfig{
			Level:  stringEnv("LOG_LEVEL", "info"),
			Format: stringEnv("LOG_FORMAT", "text"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     intEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: intEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: intEnv("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns: intEnv("DATABASE_MAX_IDLE_CONNS", 5),
		},
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// durationEnv accepts Go duration strings ("90s", "5m"); invalid values keep the default.
func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
