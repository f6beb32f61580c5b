package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
)

// Load reads and parses a configuration file from the given path
func Load(path string) (*Config, error) {
	file, err := os.Open(path) //#nosec G304 -- Path is user-provided config file
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file)
}

// LoadFromReader parses configuration from an io.Reader, applies
// defaults, and validates the result
func LoadFromReader(r io.Reader) (*Config, error) {
	var cfg Config

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, appErrors.WrapWithContext(err, "parse config")
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return appErrors.ErrMissingBaseURL
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" {
		return appErrors.FormatError("base_url", c.BaseURL, "absolute http(s) URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return appErrors.FormatError("base_url", c.BaseURL, "http or https scheme")
	}

	if strings.TrimSpace(c.TokenEnv) == "" {
		return appErrors.EmptyFieldError("token_env")
	}

	if c.TimeoutSeconds < 0 {
		return appErrors.InvalidFieldError("timeout_seconds", fmt.Sprintf("%d", c.TimeoutSeconds))
	}

	return nil
}

// ResolveToken reads the private token from the configured environment variable
func (c *Config) ResolveToken() (string, error) {
	token := os.Getenv(c.TokenEnv)
	if token == "" {
		return "", fmt.Errorf("%w: set %s", appErrors.ErrMissingToken, c.TokenEnv)
	}
	return token, nil
}
