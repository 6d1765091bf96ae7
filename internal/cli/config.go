package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".invoicectl.yaml"

// Config is read from .invoicectl.yaml; flags override individual fields.
type Config struct {
	BaseURL      string        `yaml:"base_url"`
	ActingUserID string        `yaml:"acting_user_id"`
	Timeout      time.Duration `yaml:"timeout"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL: "http://127.0.0.1:4000",
		Timeout: 5 * time.Minute,
	}
}

// LoadConfig reads path, falling back to defaults when it does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
