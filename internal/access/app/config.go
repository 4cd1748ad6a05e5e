package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BootstrapToken string // Optional: token required to perform bootstrap
	SeedFile       string // Optional: YAML seed applied when the store is empty

	Issuer      string        // Optional: expected "iss" of bearer tokens (empty skips the check)
	Audience    string        // Optional: expected "aud" of bearer tokens (default: access)
	JWKSURL     string        // JWKS endpoint of the login service
	JWKSFile    string        // JWKS file, used when no URL is set
	JWKSRefresh time.Duration // How often the JWKS is reloaded (default: 15m)

	CacheMaxEntries int64         // Resolved-access cache size (default: 10000)
	CacheTTL        time.Duration // Resolved-access cache TTL (default: 5m)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./access.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	LogFile              string        // Optional: also write logs to this rotated file
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"), // Optional: if set, required to perform bootstrap
		SeedFile:       os.Getenv("ACCESS_SEED_FILE"),

		Issuer:      os.Getenv("AUTH_ISSUER"),
		Audience:    getEnvOrDefault("AUTH_AUDIENCE", "access"),
		JWKSURL:     os.Getenv("AUTH_JWKS_URL"),
		JWKSFile:    os.Getenv("AUTH_JWKS_FILE"),
		JWKSRefresh: getEnvDurationOrDefault("AUTH_JWKS_REFRESH", 15*time.Minute),

		CacheMaxEntries: int64(getEnvIntOrDefault("ACCESS_CACHE_MAX_ENTRIES", 10_000)),
		CacheTTL:        getEnvDurationOrDefault("ACCESS_CACHE_TTL", 5*time.Minute),

		DatabaseFile:         getEnvOrDefault("ACCESS_DATABASE_FILE", "access.db"),
		PepperFile:           getEnvOrDefault("ACCESS_PEPPER_FILE", "pepper"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		LogFile:              os.Getenv("LOG_FILE"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.JWKSURL == "" && c.JWKSFile == "" {
		errs = append(errs, errors.New("one of AUTH_JWKS_URL or AUTH_JWKS_FILE is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.CacheMaxEntries <= 0 {
		errs = append(errs, errors.New("ACCESS_CACHE_MAX_ENTRIES must be positive"))
	}
	if c.JWKSRefresh <= 0 || c.HousekeepingInterval <= 0 {
		errs = append(errs, errors.New("AUTH_JWKS_REFRESH and HOUSEKEEPING_INTERVAL must be positive"))
	}
	if c.DatabaseFile == "" || c.PepperFile == "" {
		errs = append(errs, errors.New("ACCESS_DATABASE_FILE and ACCESS_PEPPER_FILE must not be empty"))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
