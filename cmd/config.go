package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

type Config struct {
	HTTP HTTPConfig
	DB   DBConfig
	Log  LogConfig
	Jobs JobsConfig
	API  APIConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig describes the PostgreSQL connection. URL, when set, takes precedence
// over the individual fields.
type DBConfig struct {
	URL             string        `env:"DATABASE_URL"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME" envDefault:"harvesthub"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN returns a key=value connection string. A postgres:// URL is converted
// with pq.ParseURL.
func (c DBConfig) DSN() (string, error) {
	if c.URL != "" {
		dsn, err := pq.ParseURL(c.URL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	), nil
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// JobsConfig holds six-field cron schedules (seconds first) and retention windows.
type JobsConfig struct {
	NotificationSchedule  string        `env:"JOBS_NOTIFICATION_SCHEDULE" envDefault:"0 0 3 * * *"`
	NotificationRetention time.Duration `env:"JOBS_NOTIFICATION_RETENTION" envDefault:"720h"`
	ErrorLogSchedule      string        `env:"JOBS_ERROR_LOG_SCHEDULE" envDefault:"0 30 3 * * *"`
	ErrorLogRetention     time.Duration `env:"JOBS_ERROR_LOG_RETENTION" envDefault:"2160h"`
}

type APIConfig struct {
	ValidateRequests bool `env:"API_VALIDATE_REQUESTS" envDefault:"true"`
}

// LoadConfig reads dotenvPath when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Jobs.NotificationRetention <= 0 {
		errs = append(errs, errors.New("JOBS_NOTIFICATION_RETENTION must be positive"))
	}
	if c.Jobs.ErrorLogRetention <= 0 {
		errs = append(errs, errors.New("JOBS_ERROR_LOG_RETENTION must be positive"))
	}
	return errors.Join(errs...)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
