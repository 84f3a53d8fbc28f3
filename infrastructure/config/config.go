package config

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultCartURL   = "http://localhost:8080/cart"
	defaultTimeoutMs = 30000
)

// Config holds browser and logging configuration
type Config struct {
	CartURL             string
	Headless            bool
	SlowMoMs            float64
	TimeoutMs           float64 // driver default timeout for every page call
	NavigationTimeoutMs float64
	LogLevel            logrus.Level

	envFileErr error
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	// .env file is optional, the miss is reported once a logger exists
	envFileErr := godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.envFileErr = envFileErr
	return cfg, nil
}

// FromEnv builds configuration from the current environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		CartURL:             getEnv("CART_URL", defaultCartURL),
		Headless:            true,
		TimeoutMs:           defaultTimeoutMs,
		NavigationTimeoutMs: defaultTimeoutMs,
		LogLevel:            logrus.InfoLevel,
	}

	var err error
	if cfg.Headless, err = getBool("BROWSER_HEADLESS", cfg.Headless); err != nil {
		return nil, err
	}
	if cfg.SlowMoMs, err = getFloat("BROWSER_SLOW_MO_MS", cfg.SlowMoMs); err != nil {
		return nil, err
	}
	if cfg.TimeoutMs, err = getFloat("BROWSER_TIMEOUT_MS", cfg.TimeoutMs); err != nil {
		return nil, err
	}
	if cfg.NavigationTimeoutMs, err = getFloat("NAVIGATION_TIMEOUT_MS", cfg.NavigationTimeoutMs); err != nil {
		return nil, err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// NewLogger - creates a logger with the configured level writing to out
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if c.envFileErr != nil {
		logger.WithError(c.envFileErr).Debug(".env file not found, using environment variables")
	}
	return logger
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return f, nil
}
