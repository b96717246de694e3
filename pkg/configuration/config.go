package configuration

import (
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultRegion = "us-east-1"

type Config struct {
	AWS *AWS
	DNS *DNS
}

type AWS struct {
	Region string `toml:"region"`
}

type DNS struct {
	// DeleteHook is an optional command template executed after each
	// deleted record, with {{.name}} and {{.target}} available.
	DeleteHook string `toml:"delete-hook"`
}

func (c *Config) GetRegion() string {
	if c.AWS != nil && c.AWS.Region != "" {
		return c.AWS.Region
	}

	if region := os.Getenv("AWS_REGION"); region != "" {
		return region
	}

	return DefaultRegion
}

// New loads a config from a TOML file. An empty path yields the
// defaults, so running without a config file is fine.
func New(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
