// Package config loads pagewindow service settings from the environment and
// an optional YAML file.
//
// Precedence, lowest to highest: built-in defaults, the YAML file named by
// PAGEWINDOW_CONFIG, then individual environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Sternrassler/pagewindow/pkg/logging"
	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "PAGEWINDOW_CONFIG"
	EnvPort       = "PORT"
	EnvRedisURL   = "REDIS_URL"
	EnvRedisDB    = "REDIS_DB"
	EnvCacheTTL   = "CACHE_TTL"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogPretty  = "LOG_PRETTY"
	EnvSiblings   = "PAGEWINDOW_SIBLINGS"
	EnvBoundaries = "PAGEWINDOW_BOUNDARIES"
	EnvMaxTotal   = "PAGEWINDOW_MAX_TOTAL"
)

// DefaultMaxTotal caps the page count a single request may ask for.
const DefaultMaxTotal = 100000

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds service settings.
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// RedisURL is the host:port of the range cache. Empty disables caching.
	RedisURL string `yaml:"redis_url"`

	// RedisDB selects the Redis logical database.
	RedisDB int `yaml:"redis_db"`

	// CacheTTL is how long computed ranges stay cached.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogPretty enables console log output instead of JSON.
	LogPretty bool `yaml:"log_pretty"`

	// Siblings is the default sibling count for requests that omit it.
	Siblings int `yaml:"siblings"`

	// Boundaries is the default boundary count for requests that omit it.
	Boundaries int `yaml:"boundaries"`

	// MaxTotal is the largest total page count a request may supply.
	MaxTotal int `yaml:"max_total"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:       "8080",
		RedisURL:   "localhost:6379",
		RedisDB:    0,
		CacheTTL:   5 * time.Minute,
		LogLevel:   string(logging.LevelInfo),
		LogPretty:  false,
		Siblings:   pagination.DefaultSiblings,
		Boundaries: pagination.DefaultBoundaries,
		MaxTotal:   DefaultMaxTotal,
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment. lookupEnv is usually os.LookupEnv.
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookupEnv(EnvConfigFile); ok && path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.mergeEnv(lookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays fields present in the YAML file at path.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvPort); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookupEnv(EnvRedisURL); ok {
		c.RedisURL = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	var err error
	if c.RedisDB, err = envInt(lookupEnv, EnvRedisDB, c.RedisDB); err != nil {
		return err
	}
	if c.Siblings, err = envInt(lookupEnv, EnvSiblings, c.Siblings); err != nil {
		return err
	}
	if c.Boundaries, err = envInt(lookupEnv, EnvBoundaries, c.Boundaries); err != nil {
		return err
	}
	if c.MaxTotal, err = envInt(lookupEnv, EnvMaxTotal, c.MaxTotal); err != nil {
		return err
	}

	if v, ok := lookupEnv(EnvCacheTTL); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvCacheTTL, err)
		}
		c.CacheTTL = ttl
	}
	if v, ok := lookupEnv(EnvLogPretty); ok && v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvLogPretty, err)
		}
		c.LogPretty = pretty
	}
	return nil
}

func envInt(lookupEnv func(string) (string, bool), key string, fallback int) (int, error) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("%w: redis_db must be >= 0, got %d", ErrInvalidConfig, c.RedisDB)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl must be >= 0, got %s", ErrInvalidConfig, c.CacheTTL)
	}
	if c.Siblings < 0 {
		return fmt.Errorf("%w: siblings must be >= 0, got %d", ErrInvalidConfig, c.Siblings)
	}
	if c.Boundaries < 0 {
		return fmt.Errorf("%w: boundaries must be >= 0, got %d", ErrInvalidConfig, c.Boundaries)
	}
	if c.MaxTotal < 1 {
		return fmt.Errorf("%w: max_total must be >= 1, got %d", ErrInvalidConfig, c.MaxTotal)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Logging returns the logger configuration derived from c.
func (c Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.LogLevel)
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Pretty = c.LogPretty
	return cfg
}
