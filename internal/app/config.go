package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory; empty means built-in defaults

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and fills in defaults. Unknown logging
// vocabulary is rejected here rather than silently mapped to a default.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.HealthcheckPort < 0 {
		return nil, errors.New("HealthcheckPort must not be negative")
	}

	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	format, err := parseLogFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogFormat = format

	return &cfg, nil
}
