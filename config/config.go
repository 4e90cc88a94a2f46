// Package config reads the settings of the bracket manager from the environment
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDBPath  = "bracket.db"
	DefaultSeeder  = "jitter"
	DefaultScoring = "indifferent"
)

type Config struct {
	DBPath   string
	Seeder   string // rating, jitter or random
	Scoring  string // indifferent or ranked
	LogLevel logrus.Level
}

// Load reads the given .env files, if present, and then the environment.
// Without files, .env in the working directory is tried. Variables already set in the environment win
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return nil, fmt.Errorf("Unable to load env files: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	c := &Config{
		DBPath:  get("BRACKET_DB_PATH", DefaultDBPath),
		Seeder:  strings.ToLower(get("BRACKET_SEEDER", DefaultSeeder)),
		Scoring: strings.ToLower(get("BRACKET_SCORING", DefaultScoring)),
	}

	switch c.Seeder {
	case "rating", "jitter", "random":
	default:
		return nil, fmt.Errorf("invalid BRACKET_SEEDER %q", c.Seeder)
	}
	switch c.Scoring {
	case "indifferent", "ranked":
	default:
		return nil, fmt.Errorf("invalid BRACKET_SCORING %q", c.Scoring)
	}

	level, err := logrus.ParseLevel(get("BRACKET_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid BRACKET_LOG_LEVEL: %w", err)
	}
	c.LogLevel = level
	return c, nil
}

// Logger creates a logger at the configured level
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func get(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
