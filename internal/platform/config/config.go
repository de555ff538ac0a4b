// Package config loads the service configuration from the environment,
// with optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the service reads at startup.
type Config struct {
	Port string

	// DatabaseDSN is the Postgres DSN. Assembled from the DB_* variables
	// unless DATABASE_URL overrides it outright.
	DatabaseDSN   string
	RunMigrations bool

	RedisAddr     string
	RedisPassword string

	JWTSecret     string
	JWTExpiration time.Duration

	AllowedOrigins []string

	// AuthRateLimit caps register/login attempts per client and window.
	// Zero disables the limiter.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads the configuration. A missing .env file is not an error;
// container environments set variables directly.
func Load() *Config {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "phonebook"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    dsn,
		RunMigrations:  getEnv("RUN_MIGRATIONS", "") == "true",
		RedisAddr:      getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		AuthRateLimit:  getInt("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: getDuration("AUTH_RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func parseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
