package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "catalog.yaml", cfg.CatalogFile)
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"STORE_DRIVER":     "Postgres",
		"DATABASE_URL":     "postgres://localhost/storefront",
		"HTTP_PORT":        "9000",
		"JWT_TTL":          "30m",
		"SHUTDOWN_TIMEOUT": "5s",
		"CORS_ORIGINS":     "https://shop.example.com, http://localhost:3000,",
		"CATALOG_FILE":     "/etc/storefront/products.yaml",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://shop.example.com", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "/etc/storefront/products.yaml", cfg.CatalogFile)
}

func TestFromLookup_EmptyCatalogFile(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{"CATALOG_FILE": ""}))
	require.NoError(t, err)
	assert.Empty(t, cfg.CatalogFile)
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"spanner without database", map[string]string{"STORE_DRIVER": "spanner"}, "SPANNER_DATABASE"},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}, "DATABASE_URL"},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}, "unknown STORE_DRIVER"},
		{"production default secret", map[string]string{"APP_ENV": "production"}, "JWT_SECRET"},
		{"bad ttl", map[string]string{"JWT_TTL": "soon"}, "JWT_TTL"},
		{"negative ttl", map[string]string{"JWT_TTL": "-1h"}, "JWT_TTL"},
		{"bad shutdown", map[string]string{"SHUTDOWN_TIMEOUT": "x"}, "SHUTDOWN_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
