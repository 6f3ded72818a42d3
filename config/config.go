package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultDSN keeps the session database in process memory. Every pooled
// connection sees the same database through the shared cache.
const DefaultDSN = "file:cgpa?mode=memory&cache=shared"

type Config struct {
	Port              int
	Secret            string
	DSN               string
	TokenTTL          time.Duration
	SessionIdle       time.Duration
	GradeScaleFile    string
	PercentageFormula string
	LogLevel          string
	LogFormat         string
}

// LoadEnv reads .env files into the process environment. Missing files are
// not an error.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return errors.Wrapf(err, "load %s", name)
		}
	}
	return nil
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:              8000,
		Secret:            os.Getenv("SECRET"),
		DSN:               getenv("DB_DSN", DefaultDSN),
		TokenTTL:          24 * time.Hour,
		SessionIdle:       24 * time.Hour,
		GradeScaleFile:    os.Getenv("GRADE_SCALE_FILE"),
		PercentageFormula: os.Getenv("PERCENTAGE_FORMULA"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "text"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, errors.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	var err error
	if cfg.TokenTTL, err = duration("TOKEN_TTL", cfg.TokenTTL); err != nil {
		return cfg, err
	}
	if cfg.SessionIdle, err = duration("SESSION_IDLE", cfg.SessionIdle); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.Secret == "" {
		return errors.New("SECRET variable is not set")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback, errors.Errorf("invalid %s %q", key, v)
	}
	return d, nil
}
