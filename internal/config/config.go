package config

import (
	"errors"
	"os"
	"strconv"
)

const (
	DefaultAddr          = "127.0.0.1:8080"
	DefaultEngine        = "whisper"
	DefaultMaxBytes      = 50_000_000
	DefaultQueueCapacity = 8
)

type Config struct {
	Addr          string
	Engine        string
	ModelPath     string
	MaxBytes      int
	QueueCapacity int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load builds a Config from the environment with defaults. CLI flags
// are bound on top of these values, so flags win over env.
func Load() Config {
	return Config{
		Addr:          getenv("SCRIBED_ADDR", DefaultAddr),
		Engine:        getenv("SCRIBED_ENGINE", DefaultEngine),
		ModelPath:     getenv("SCRIBED_MODEL_PATH", ""),
		MaxBytes:      getenvInt("SCRIBED_MAX_BYTES", DefaultMaxBytes),
		QueueCapacity: getenvInt("SCRIBED_QUEUE_CAPACITY", DefaultQueueCapacity),
	}
}

// Validate rejects configurations the server must not start with.
func (c Config) Validate() error {
	if c.ModelPath == "" {
		return errors.New("model path is required")
	}
	if c.MaxBytes <= 0 {
		return errors.New("max bytes must be positive")
	}
	if c.QueueCapacity <= 0 {
		return errors.New("queue capacity must be positive")
	}
	return nil
}
