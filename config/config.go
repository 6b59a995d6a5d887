package config

import (
	"os"
	"runtime"
	"time"

	E "github.com/sagernet/sing/common/exceptions"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the file form of every setting the command line also accepts.
type Config struct {
	Quadgrams  string      `yaml:"quadgrams"`
	Dictionary string      `yaml:"dictionary"`
	Seed       uint64      `yaml:"seed"` // 0 seeds from the clock
	Log        LogConfig   `yaml:"log"`
	Crack      CrackConfig `yaml:"crack"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	NoColor bool   `yaml:"noColor"`
}

type CrackConfig struct {
	Restarts   int           `yaml:"restarts"`
	Patience   int           `yaml:"patience"`
	Parallel   int           `yaml:"parallel"` // -1 uses every CPU
	TopN       int           `yaml:"topN"`
	MaxRuntime time.Duration `yaml:"maxRuntime"`
	ShowKey    bool          `yaml:"showKey"`
	Progress   bool          `yaml:"progress"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Quadgrams:  "english_quadgrams.txt",
		Dictionary: "dictionary.txt",
		Log: LogConfig{
			Level: "info",
		},
		Crack: CrackConfig{
			Restarts: 25,
			Patience: 1000,
			Parallel: 1,
			TopN:     1,
		},
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, E.Cause(err, "read config")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, E.Cause(err, "parse config ", path)
	}

	if err := config.Validate(); err != nil {
		return nil, E.Cause(err, "invalid config ", path)
	}

	return config, nil
}

// Validate rejects impossible values and fills in those left empty.
func (c *Config) Validate() error {
	if c.Quadgrams == "" {
		return E.New("quadgrams is required")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return E.Cause(err, "log.level")
	}

	if c.Crack.Restarts < 0 {
		return E.New("crack.restarts must not be negative")
	}
	if c.Crack.Restarts == 0 {
		c.Crack.Restarts = 25
	}
	if c.Crack.Patience < 0 {
		return E.New("crack.patience must not be negative")
	}
	if c.Crack.Patience == 0 {
		c.Crack.Patience = 1000
	}
	if c.Crack.Parallel < 0 {
		c.Crack.Parallel = runtime.NumCPU()
	}
	if c.Crack.Parallel == 0 {
		c.Crack.Parallel = 1
	}
	if c.Crack.TopN < 1 {
		c.Crack.TopN = 1
	}
	if c.Crack.MaxRuntime < 0 {
		return E.New("crack.maxRuntime must not be negative")
	}

	return nil
}

// SaveConfig writes c as YAML.
func SaveConfig(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return E.Cause(err, "marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return E.Cause(err, "write config")
	}

	return nil
}
