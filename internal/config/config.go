package config

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// WorkingDir holds one <lang>/<lang>.aff|.dic pair per language plus
	// the custom dictionary file.
	WorkingDir      string        `json:"working_dir" env:"SPELLCHECK_WORKING_DIR"`
	Languages       []string      `json:"languages" env:"SPELLCHECK_LANGUAGES"`
	MaxSuggestions  int           `json:"max_suggestions" env:"SPELLCHECK_MAX_SUGGESTIONS"`
	Watch           bool          `json:"watch" env:"SPELLCHECK_WATCH"`
	Listen          string        `json:"listen" env:"SPELLCHECK_LISTEN"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	Log             LogConfig     `json:"log"`
}

type LogConfig struct {
	Level string `json:"level" env:"SPELLCHECK_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		MaxSuggestions:  9,
		Listen:          "127.0.0.1:8923",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the JSON config file and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path is required")
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// FromEnv builds a config from environment variables alone.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 9
	}
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:8923"
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
}
