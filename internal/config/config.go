package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "dialsim.yaml"

// OutputMode selects how the turn trace is rendered.
type OutputMode string

const (
	OutputAuto  OutputMode = "auto"
	OutputPlain OutputMode = "plain"
	OutputColor OutputMode = "color"
	OutputJSON  OutputMode = "json"
)

// Config holds the CLI settings that can come from a file or from flags.
type Config struct {
	LogLevel    string     `mapstructure:"log_level"`
	Output      OutputMode `mapstructure:"output"`
	MetricsFile string     `mapstructure:"metrics_file"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Output:   OutputAuto,
	}
}

// Load reads a YAML config file on top of the defaults.
// A missing file is only an error when the caller asked for it explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode merges YAML content into cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg.Validate()
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Output {
	case OutputAuto, OutputPlain, OutputColor, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output mode %q (want auto, plain, color or json)", c.Output)
	}
}
