// Package config loads the spool service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	Inventory InventoryConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
	// SummaryTimeout bounds GET /api/summary, which reads every active spool.
	SummaryTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AuthConfig holds API key authentication configuration. Keys listed with a
// leading "-" are kept but disabled.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	// LogsTTL expires audit entries; zero keeps them forever.
	LogsTTL time.Duration

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// InventoryConfig holds summary and seeding configuration.
type InventoryConfig struct {
	// SummaryCacheTTL of zero disables summary caching.
	SummaryCacheTTL time.Duration
	ListCeiling     int
	SeedFile        string
}

// defaultCORSOrigins are always allowed so a local UI works out of the box.
var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// Load reads the configuration from the environment. Unparseable values fall
// back to their defaults; Validate reports settings that cannot work together.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    appendList(defaultCORSOrigins, os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			SummaryTimeout: getEnvDuration("SUMMARY_TIMEOUT", time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "spool_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Inventory: InventoryConfig{
			SummaryCacheTTL: getEnvDuration("SUMMARY_CACHE_TTL", 10*time.Second),
			ListCeiling:     getEnvPositiveInt("INVENTORY_LIST_CEILING", 1000),
			SeedFile:        getEnv("INVENTORY_SEED_FILE", ""),
		},
	}
}

// Validate returns every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	port, err := strconv.Atoi(c.Server.Port)
	check(err == nil && port > 0 && port < 65536, "PORT %q is not a valid port", c.Server.Port)
	check(c.Server.RateLimit >= 0, "RATE_LIMIT must not be negative")
	check(c.Server.RateLimit == 0 || c.Server.RateWindow > 0, "RATE_WINDOW must be positive when RATE_LIMIT is set")
	check(c.Server.RequestTimeout >= 0, "REQUEST_TIMEOUT must not be negative")
	check(c.Server.SummaryTimeout >= 0, "SUMMARY_TIMEOUT must not be negative")
	check(!c.Auth.Enabled || c.Auth.activeKeys() > 0, "AUTH_ENABLED requires at least one enabled key in API_KEYS")
	check(c.Database.URI != "", "MONGODB_URI must be set")
	check(c.Database.DatabaseName != "", "MONGODB_DATABASE must be set")
	check(c.Database.LogsTTL >= 0, "MONGODB_LOGS_TTL must not be negative")
	check(c.Database.CircuitBreakerFailureThreshold > 0, "CIRCUIT_BREAKER_FAILURE_THRESHOLD must be positive")
	check(c.Database.CircuitBreakerSuccessThreshold > 0, "CIRCUIT_BREAKER_SUCCESS_THRESHOLD must be positive")
	check(c.Inventory.SummaryCacheTTL >= 0, "SUMMARY_CACHE_TTL must not be negative")

	return errors.Join(errs...)
}

func (a AuthConfig) activeKeys() int {
	n := 0
	for _, enabled := range a.APIKeys {
		if enabled {
			n++
		}
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

// getEnvParsed returns parse(value) for key, or defaultValue when the
// variable is unset or does not parse.
func getEnvParsed[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	parsed, err := parse(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	return getEnvParsed(key, defaultValue, strconv.Atoi)
}

func getEnvPositiveInt(key string, defaultValue int) int {
	if i := getEnvInt(key, defaultValue); i > 0 {
		return i
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	return getEnvParsed(key, defaultValue, strconv.ParseBool)
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnvParsed(key, defaultValue, time.ParseDuration)
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseAPIKeys(s string) map[string]bool {
	keys := splitList(s)
	if len(keys) == 0 {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if disabled, ok := strings.CutPrefix(k, "-"); ok {
			if disabled != "" {
				result[disabled] = false
			}
			continue
		}
		result[k] = true
	}
	return result
}

func appendList(base []string, extra string) []string {
	out := append([]string(nil), base...)
	for _, v := range splitList(extra) {
		dup := false
		for _, have := range out {
			dup = dup || have == v
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}
