package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/freassets/curator/pkg/formatting"
	"github.com/freassets/curator/pkg/middleware"
	"github.com/freassets/curator/pkg/pagination"
)

const (
	EnvAPIBasePath          = "CURATOR_API_BASE_PATH"
	EnvAPIMaxUploadSize     = "CURATOR_API_MAX_UPLOAD_SIZE"
	EnvAPIIngestConcurrency = "CURATOR_API_INGEST_CONCURRENCY"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "CURATOR_CORS_ENABLED",
	Origins:          "CURATOR_CORS_ORIGINS",
	AllowedMethods:   "CURATOR_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "CURATOR_CORS_ALLOWED_HEADERS",
	AllowCredentials: "CURATOR_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "CURATOR_CORS_MAX_AGE",
}

var authEnv = &middleware.AuthEnv{
	Enabled:  "CURATOR_AUTH_ENABLED",
	Issuer:   "CURATOR_AUTH_ISSUER",
	ClientID: "CURATOR_AUTH_CLIENT_ID",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "CURATOR_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "CURATOR_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, upload, CORS, auth, and pagination settings.
type APIConfig struct {
	BasePath          string                `toml:"base_path"`
	MaxUploadSize     string                `toml:"max_upload_size"`
	IngestConcurrency int                   `toml:"ingest_concurrency"`
	CORS              middleware.CORSConfig `toml:"cors"`
	Auth              middleware.AuthConfig `toml:"auth"`
	Pagination        pagination.Config     `toml:"pagination"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 50 * 1024 * 1024 // 50MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, auth, and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.IngestConcurrency != 0 {
		c.IngestConcurrency = overlay.IngestConcurrency
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
	if c.IngestConcurrency == 0 {
		c.IngestConcurrency = 4
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv(EnvAPIIngestConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.IngestConcurrency = n
		}
	}
}
