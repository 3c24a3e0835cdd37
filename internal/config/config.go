package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	RateLimit       float64
	RateBurst       int
	LogLevel        string
	ShutdownTimeout time.Duration
	StaticDir       string
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		RateLimit:       5,
		RateBurst:       10,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("RING_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.TLSCert = getenv("RING_TLS_CERT")
	cfg.TLSKey = getenv("RING_TLS_KEY")
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("RING_TLS_CERT and RING_TLS_KEY must be set together")
	}

	if v := getenv("RING_RATE_LIMIT"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("invalid RING_RATE_LIMIT %q", v)
		}
		cfg.RateLimit = r
	}
	if v := getenv("RING_RATE_BURST"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil || b <= 0 {
			return Config{}, fmt.Errorf("invalid RING_RATE_BURST %q", v)
		}
		cfg.RateBurst = b
	}

	if v := getenv("RING_LOG_LEVEL"); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return Config{}, fmt.Errorf("invalid RING_LOG_LEVEL %q", v)
		}
	}

	if v := getenv("RING_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RING_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	cfg.StaticDir = getenv("RING_STATIC_DIR")
	return cfg, nil
}

func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}
