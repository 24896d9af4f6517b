package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the keys accepted in a -config file.
type fileConfig struct {
	Workflow  string `toml:"workflow"`
	Format    string `toml:"format"`
	Output    string `toml:"output"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// settings are the values the CLI resolves before building app.Config.
type settings struct {
	workflow  string
	format    string
	output    string
	logLevel  string
	logFormat string
}

func defaultSettings() settings {
	return settings{
		format:    "auto",
		output:    "text",
		logLevel:  "info",
		logFormat: "text",
	}
}

// applyFile overlays the keys defined in the TOML file at path.
func (s *settings) applyFile(path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("workflow") {
		s.workflow = strings.TrimSpace(raw.Workflow)
	}
	if meta.IsDefined("format") {
		s.format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("output") {
		s.output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("log_level") {
		s.logLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		s.logFormat = strings.TrimSpace(raw.LogFormat)
	}
	return nil
}
