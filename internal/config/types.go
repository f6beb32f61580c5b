// Package config handles loading and validation of the client configuration file.
package config

import "time"

// Config is the YAML configuration for the client and CLI
type Config struct {
	// BaseURL is the root of the GitLab instance, e.g. https://gitlab.example.com
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable holding the private token
	TokenEnv string `yaml:"token_env"`

	// Insecure disables TLS certificate verification
	Insecure bool `yaml:"insecure"`

	// DownloadDir is where archive downloads land when no directory is
	// given on the command line. Empty means the system temp directory.
	DownloadDir string `yaml:"download_dir"`

	// TimeoutSeconds bounds each API request. Zero selects the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
