package config

import (
	"errors"
	"fmt"
	"os"

	"awattar-dashboard/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// DataFile is the aWATTar JSON dump the dashboard reads.
	DataFile string `yaml:"data_file"`

	Server ServerConfig `yaml:"server"`

	// Tariffs overrides the three built-in flat rates when present.
	Tariffs []TariffConfig `yaml:"tariffs"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type TariffConfig struct {
	Name          string  `yaml:"name"`
	PriceCtPerKWh float64 `yaml:"price_ct_per_kwh"`
}

// Default returns the configuration used when no file is given: the dump in
// the working directory, port 8080, the three deployment tariffs.
func Default() *Config {
	return &Config{
		DataFile: "strompreise_2024_2025.json",
		Server:   ServerConfig{Port: 8080},
	}
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config but does not default or validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.DataFile == "" {
		c.DataFile = def.DataFile
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataFile == "" {
		return errors.New("data_file is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	for i, t := range c.Tariffs {
		if t.Name == "" {
			return fmt.Errorf("tariffs[%d].name is required", i)
		}
		if t.PriceCtPerKWh <= 0 {
			return fmt.Errorf("tariffs[%d].price_ct_per_kwh must be positive", i)
		}
	}
	return nil
}

// TariffLines converts the configured tariffs to model values, falling back
// to the deployment defaults when none are configured.
func (c *Config) TariffLines() []model.TariffLine {
	if len(c.Tariffs) == 0 {
		return model.DefaultTariffs()
	}
	out := make([]model.TariffLine, 0, len(c.Tariffs))
	for _, t := range c.Tariffs {
		out = append(out, model.TariffLine{Name: t.Name, PriceCtPerKWh: t.PriceCtPerKWh})
	}
	return out
}
