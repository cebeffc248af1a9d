// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides token validation settings for middleware.
type JWTConfig interface {
	GetJWTSecret() string
}

// TokenIssuerConfig provides settings needed to issue login tokens.
type TokenIssuerConfig interface {
	JWTConfig
	GetTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// ObjectStorageConfig provides settings for the S3-compatible backup store.
type ObjectStorageConfig interface {
	GetStorageEndpoint() string
	GetStorageAccessKey() string
	GetStorageSecretKey() string
	GetStorageUseSSL() bool
	GetStorageBucket() string
	GetStoragePublicBaseURL() string
}

// MediaConfig provides settings for the upload pipeline.
type MediaConfig interface {
	GetMediaDir() string
	GetMaxUploadBytes() int64
}

// PagingConfig provides the fixed page size for venue listings.
type PagingConfig interface {
	GetPageSize() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	DatabaseURL          string
	JWTSecret            string
	TokenTTL             time.Duration
	PageSize             int
	MediaDir             string
	MaxUploadBytes       int64
	CORSAllowAll         bool
	CORSOrigins          []string
	StorageEndpoint      string
	StorageAccessKey     string
	StorageSecretKey     string
	StorageUseSSL        bool
	StorageBucket        string
	StoragePublicBaseURL string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig / TokenIssuerConfig implementation
func (c *Config) GetJWTSecret() string       { return c.JWTSecret }
func (c *Config) GetTokenTTL() time.Duration { return c.TokenTTL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// ObjectStorageConfig implementation
func (c *Config) GetStorageEndpoint() string      { return c.StorageEndpoint }
func (c *Config) GetStorageAccessKey() string     { return c.StorageAccessKey }
func (c *Config) GetStorageSecretKey() string     { return c.StorageSecretKey }
func (c *Config) GetStorageUseSSL() bool          { return c.StorageUseSSL }
func (c *Config) GetStorageBucket() string        { return c.StorageBucket }
func (c *Config) GetStoragePublicBaseURL() string { return c.StoragePublicBaseURL }

// MediaConfig implementation
func (c *Config) GetMediaDir() string      { return c.MediaDir }
func (c *Config) GetMaxUploadBytes() int64 { return c.MaxUploadBytes }

// PagingConfig implementation
func (c *Config) GetPageSize() int { return c.PageSize }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		TokenTTL:             mustDuration(getEnv("JWT_TTL", "24h")),
		PageSize:             mustInt(getEnv("PAGE_SIZE", "5")),
		MediaDir:             getEnv("MEDIA_DIR", "assets/images"),
		MaxUploadBytes:       mustInt64(getEnv("MAX_UPLOAD_BYTES", "5000000")),
		CORSAllowAll:         strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true"),
		CORSOrigins:          splitCSV(getEnv("CORS_ORIGINS", "")),
		StorageEndpoint:      getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey:     getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:     getEnv("STORAGE_SECRET_KEY", ""),
		StorageUseSSL:        strings.EqualFold(getEnv("STORAGE_USE_SSL", "false"), "true"),
		StorageBucket:        getEnv("STORAGE_BUCKET", "venue-pictures"),
		StoragePublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.StorageEndpoint == "" {
		return nil, fmt.Errorf("STORAGE_ENDPOINT is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be a positive duration")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	if cfg.MaxUploadBytes < 1 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
