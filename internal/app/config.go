package app

import (
	"errors"
	"fmt"

	"github.com/vk/wrapperflow/internal/loader"
)

// Output formats of the workflow summary.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkflowPath string // .xml or .hcl document
	Format       string // auto, xml or hcl
	Output       string // text or json

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkflowPath == "" {
		return nil, errors.New("WorkflowPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = loader.FormatAuto.String()
	}
	if _, err := loader.ParseFormat(cfg.Format); err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}
	switch cfg.Output {
	case "":
		cfg.Output = OutputText
	case OutputText, OutputJSON:
	default:
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", cfg.Output, OutputText, OutputJSON)
	}
	return &cfg, nil
}

// DocumentFormat returns the configured document format.
func (c *Config) DocumentFormat() loader.Format {
	f, err := loader.ParseFormat(c.Format)
	if err != nil {
		return loader.FormatAuto
	}
	return f
}
