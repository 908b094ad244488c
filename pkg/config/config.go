// Package config loads the process-wide TOML configuration shared by the
// symspellctl and symspellsrv commands, following the load-then-override
// precedence the teacher corrector used for its environment variables
// (env wins over file, file wins over built-in default).
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the top-level process configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Redis  RedisConfig  `toml:"redis"`
	HTTP   HTTPConfig   `toml:"http"`
	Log    LogConfig    `toml:"log"`
}

// EngineConfig mirrors the knobs spec.md §6 recognizes at construction.
type EngineConfig struct {
	MaxDictionaryEditDistance int    `toml:"max_dictionary_edit_distance"`
	PrefixLength              int    `toml:"prefix_length"`
	CountThreshold            int    `toml:"count_threshold"`
	DictionaryPath            string `toml:"dictionary_path"`
}

// RedisConfig configures the custom-dictionary backing store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// HTTPConfig configures symspellsrv's listen address.
type HTTPConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures the shared logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default matches the teacher's hardcoded defaults (cmd/main.go,
// cmd/server/main.go), promoted here to a loadable, overridable config.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			MaxDictionaryEditDistance: 2,
			PrefixLength:              7,
			CountThreshold:            1,
			DictionaryPath:            "en.txt",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			DB:   0,
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads path (if non-empty and present) on top of Default, then
// applies environment-variable overrides, matching the teacher's
// getenv/getEnvInt helpers.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DICTIONARY_PATH"); v != "" {
		cfg.Engine.DictionaryPath = v
	}
	if v := os.Getenv("MAX_EDIT_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxDictionaryEditDistance = n
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
