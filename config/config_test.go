package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Server.SummaryTimeout)
	assert.Equal(t, defaultCORSOrigins, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Auth.APIKeys)
	assert.Equal(t, "spool_service", cfg.Database.DatabaseName)
	assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
	assert.Equal(t, 10*time.Second, cfg.Inventory.SummaryCacheTTL)
	assert.Equal(t, 1000, cfg.Inventory.ListCeiling)
	assert.Empty(t, cfg.Inventory.SeedFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	env := map[string]string{
		"PORT":                   "9090",
		"RATE_LIMIT":             "50",
		"RATE_WINDOW":            "30s",
		"REQUEST_TIMEOUT":        "5s",
		"SUMMARY_TIMEOUT":        "2m",
		"LOG_LEVEL":              "debug",
		"LOG_PRETTY":             "true",
		"AUTH_ENABLED":           "true",
		"API_KEYS":               " farm , desk ,-old-laptop, ",
		"MONGODB_DATABASE":       "filaments",
		"SUMMARY_CACHE_TTL":      "0s",
		"INVENTORY_LIST_CEILING": "250",
		"INVENTORY_SEED_FILE":    "/etc/spools/seed.yaml",
		"CORS_ORIGINS":           "https://spools.example.com, http://localhost:3000",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.SummaryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"farm": true, "desk": true, "old-laptop": false}, cfg.Auth.APIKeys)
	assert.Equal(t, "filaments", cfg.Database.DatabaseName)
	assert.Zero(t, cfg.Inventory.SummaryCacheTTL)
	assert.Equal(t, 250, cfg.Inventory.ListCeiling)
	assert.Equal(t, "/etc/spools/seed.yaml", cfg.Inventory.SeedFile)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://spools.example.com"}, cfg.Server.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_UnparseableValuesKeepDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("AUTH_ENABLED", "sure")
	t.Setenv("RATE_WINDOW", "a minute")
	t.Setenv("INVENTORY_LIST_CEILING", "-3")
	t.Setenv("LOG_LEVEL", "   ")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 1000, cfg.Inventory.ListCeiling)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "rate limiting off", mutate: func(c *Config) { c.Server.RateLimit, c.Server.RateWindow = 0, 0 }},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = "70000" },
			wantErr: []string{`PORT "70000"`},
		},
		{
			name:    "auth without keys",
			mutate:  func(c *Config) { c.Auth = AuthConfig{Enabled: true, APIKeys: map[string]bool{"old": false}} },
			wantErr: []string{"AUTH_ENABLED"},
		},
		{
			name: "several problems at once",
			mutate: func(c *Config) {
				c.Server.RateWindow = 0
				c.Database.URI = ""
				c.Database.CircuitBreakerFailureThreshold = 0
			},
			wantErr: []string{"RATE_WINDOW", "MONGODB_URI", "CIRCUIT_BREAKER_FAILURE_THRESHOLD"},
		},
		{
			name:    "negative cache ttl",
			mutate:  func(c *Config) { c.Inventory.SummaryCacheTTL = -time.Second },
			wantErr: []string{"SUMMARY_CACHE_TTL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
