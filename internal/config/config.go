package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultThinkDelay = time.Second

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string        `yaml:"log-file" env:"LOG_FILE"`
	ThinkDelay  time.Duration `yaml:"think-delay" env:"THINK_DELAY"`
	ClearScreen bool          `yaml:"clear-screen" env:"CLEAR_SCREEN"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the YAML file at path, environment variables take precedence.
// think-delay and clear-screen start from their defaults so that an explicit zero value in the file is kept.
func Load(path string) (*Config, error) {
	config := &Config{
		ThinkDelay:  defaultThinkDelay,
		ClearScreen: true,
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
