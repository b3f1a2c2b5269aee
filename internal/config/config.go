// internal/config/config.go
//
// Configuration for the gabble command.
//
// Precedence (lowest to highest):
//   1. Built-in defaults.
//   2. Optional YAML file (--config / GABBLE_CONFIG).
//   3. Environment variables, after loading a local .env file if present.
//
// Environment variables:
//   LOG_LEVEL, LOG_FORMAT
//   GAME_ANSWER, GAME_STRICT_FEEDBACK, DAILY_SALT
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE, WORDS_URL, WORDS_CACHE
//   PORT, CLIENT_ORIGIN, JWT_SECRET, JWT_EXPIRES_HOURS

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/gabble/internal/words"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Game    GameConfig    `yaml:"game"`
	Words   WordsConfig   `yaml:"words"`
	Server  ServerConfig  `yaml:"server"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// GameConfig controls answer selection and feedback scoring.
type GameConfig struct {
	Answer         string `yaml:"answer"`
	StrictFeedback bool   `yaml:"strict_feedback"`
	DailySalt      string `yaml:"daily_salt"`
}

// WordsConfig selects the dictionary source.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
	URL         string `yaml:"url"`
	Cache       string `yaml:"cache"`
}

// ServerConfig holds HTTP API configuration.
type ServerConfig struct {
	Port         string        `yaml:"port"`
	ClientOrigin string        `yaml:"client_origin"`
	TokenSecret  string        `yaml:"token_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Game:    GameConfig{DailySalt: "local_dev_salt"},
		Server: ServerConfig{
			Port:         "5175",
			ClientOrigin: "http://localhost:5173",
			TokenSecret:  "dev_secret_change_me",
			TokenTTL:     24 * time.Hour,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (skipped when path is empty) and the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)

	c.Game.Answer = getEnv("GAME_ANSWER", c.Game.Answer)
	c.Game.StrictFeedback = getEnvBool("GAME_STRICT_FEEDBACK", c.Game.StrictFeedback)
	c.Game.DailySalt = getEnv("DAILY_SALT", c.Game.DailySalt)

	c.Words.AnswersFile = getEnv("WORDS_ANSWERS_FILE", c.Words.AnswersFile)
	c.Words.AllowedFile = getEnv("WORDS_ALLOWED_FILE", c.Words.AllowedFile)
	c.Words.URL = getEnv("WORDS_URL", c.Words.URL)
	c.Words.Cache = getEnv("WORDS_CACHE", c.Words.Cache)

	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.ClientOrigin = getEnv("CLIENT_ORIGIN", c.Server.ClientOrigin)
	c.Server.TokenSecret = getEnv("JWT_SECRET", c.Server.TokenSecret)
	if h := getEnvInt("JWT_EXPIRES_HOURS", 0); h > 0 {
		c.Server.TokenTTL = time.Duration(h) * time.Hour
	}
}

// WordsOptions converts the words section for words.Open.
// A URL of "default" selects words.DefaultURL.
func (c *Config) WordsOptions() words.Options {
	url := c.Words.URL
	if url == "default" {
		url = words.DefaultURL
	}
	return words.Options{
		AnswersFile: c.Words.AnswersFile,
		AllowedFile: c.Words.AllowedFile,
		URL:         url,
		CacheDSN:    c.Words.Cache,
	}
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt returns k parsed as an integer or def.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvBool returns k parsed as a bool or def.
func getEnvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
