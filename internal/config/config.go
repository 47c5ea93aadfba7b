// Package config loads runtime settings from the environment, reading a .env
// file first when one is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSpanner  = "spanner"
	DriverPostgres = "postgres"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "dev-secret-change-me"

// Config holds every setting the server and CLI read.
type Config struct {
	AppEnv          string
	HTTPPort        string
	GRPCPort        string
	StoreDriver     string
	SpannerDatabase string
	DatabaseURL     string
	CatalogFile     string
	JWTSecret       string
	JWTTTL          time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (if any) and then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function and validates it.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	jwtTTL, err := time.ParseDuration(get("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	shutdown, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	// An explicitly empty CATALOG_FILE starts the memory store with no products.
	catalogFile := "catalog.yaml"
	if v, ok := lookup("CATALOG_FILE"); ok {
		catalogFile = strings.TrimSpace(v)
	}

	cfg := &Config{
		AppEnv:          get("APP_ENV", "development"),
		HTTPPort:        get("HTTP_PORT", "8080"),
		GRPCPort:        get("GRPC_PORT", "9090"),
		StoreDriver:     strings.ToLower(get("STORE_DRIVER", DriverMemory)),
		SpannerDatabase: get("SPANNER_DATABASE", ""),
		DatabaseURL:     get("DATABASE_URL", ""),
		CatalogFile:     catalogFile,
		JWTSecret:       get("JWT_SECRET", devJWTSecret),
		JWTTTL:          jwtTTL,
		LogLevel:        get("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdown,
		CORSOrigins:     splitList(get("CORS_ORIGINS", "http://localhost:5173")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverMemory:
	case DriverSpanner:
		if c.SpannerDatabase == "" {
			errs = append(errs, errors.New("SPANNER_DATABASE is required when STORE_DRIVER=spanner"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q (want memory, spanner or postgres)", c.StoreDriver))
	}

	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
