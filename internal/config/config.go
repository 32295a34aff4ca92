// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the
// application, including the storage-backend discriminator that selects the
// active content repository variant for the lifetime of the process.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend identifies a content repository variant. The choice is made
// once at startup; changing it requires a new process.
type Backend string

const (
	// BackendMemory serves from in-process collections seeded with
	// fixtures. Writes do not survive a restart and do not propagate
	// across instances.
	BackendMemory Backend = "memory"
	// BackendLocal persists to a JSON document on local disk.
	BackendLocal Backend = "local"
	// BackendPostgres persists to PostgreSQL.
	BackendPostgres Backend = "postgres"
	// BackendDocument persists JSON documents to a Redis-protocol server.
	BackendDocument Backend = "document"
)

// defaultAdminPassword is the development fallback admin secret.
const defaultAdminPassword = "admin123"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Origins allowed to call the API from a browser.
	CORSAllowedOrigins []string

	// Active content repository variant
	StorageBackend Backend

	// Local file store
	LocalDataDir string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible document store + cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Admin secret. AdminPasswordHash, when set, takes precedence over
	// the plain password and is compared with bcrypt.
	AdminPassword     string
	AdminPasswordHash string
	// AdminTOTPSecret enables the optional TOTP second factor when set.
	AdminTOTPSecret string

	// S3-compatible object storage for uploaded photo payloads (optional).
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from the environment (and a .env file when
// present), applying defaults for development where appropriate. Returns
// an error if critical values are missing in production mode.
func Load() (*Config, error) {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		CORSAllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),

		StorageBackend: Backend(envOrDefault("STORAGE_BACKEND", string(BackendMemory))),
		LocalDataDir:   envOrDefault("LOCAL_DATA_DIR", "./data"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "photofolio"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "photofolio"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AdminPassword:     envOrDefault("ADMIN_PASSWORD", defaultAdminPassword),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTOTPSecret:   os.Getenv("ADMIN_TOTP_SECRET"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "photofolio-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendLocal, BackendPostgres, BackendDocument:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be one of memory, local, postgres, document (got %q)", cfg.StorageBackend)
	}

	if cfg.Env == "production" {
		if cfg.StorageBackend == BackendPostgres && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminPassword == defaultAdminPassword && cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// splitList parses a comma-separated environment value into a slice,
// trimming whitespace and dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
