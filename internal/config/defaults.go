package config

// Configuration defaults applied when the file omits a value
const (
	// DefaultTokenEnv is the environment variable consulted for the token
	DefaultTokenEnv = "GITLAB_TOKEN"

	// DefaultTimeoutSeconds bounds each API request
	DefaultTimeoutSeconds = 30
)

// applyDefaults fills in zero-valued fields
func applyDefaults(cfg *Config) {
	if cfg.TokenEnv == "" {
		cfg.TokenEnv = DefaultTokenEnv
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
