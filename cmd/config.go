package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the service settings read from the environment.
type Config struct {
	HTTPPort int

	DBHost            string
	DBPort            int
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool

	LogLevel  slog.Level
	LogFormat string

	TaxRate         decimal.Decimal
	DefaultCurrency string

	// AdminAPIToken guards staff endpoints when set.
	AdminAPIToken string
}

// LoadConfig reads every setting through lookup, which reports whether the key is
// set (os.LookupEnv in production). Unset keys take their defaults; all malformed
// values are reported together.
func LoadConfig(lookup func(key string) (string, bool)) (Config, error) {
	r := reader{lookup: lookup}

	config := Config{
		HTTPPort:          r.port("HTTP_PORT", 8080),
		DBHost:            r.str("DB_HOST", "localhost"),
		DBPort:            r.port("DB_PORT", 5432),
		DBUser:            r.str("DB_USER", ""),
		DBPassword:        r.str("DB_PASSWORD", ""),
		DBName:            r.str("DB_NAME", ""),
		DBSslMode:         r.str("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    r.positive("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    r.positive("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: r.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		DBAutoMigrate:     r.boolean("DB_AUTO_MIGRATE", true),
		LogLevel:          r.level("LOG_LEVEL", slog.LevelInfo),
		LogFormat:         r.oneOf("LOG_FORMAT", "json", "json", "text"),
		TaxRate:           r.rate("TAX_RATE", decimal.RequireFromString("0.08")),
		DefaultCurrency:   r.str("DEFAULT_CURRENCY", "USD"),
		AdminAPIToken:     r.str("ADMIN_API_TOKEN", ""),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

type reader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (r *reader) raw(key string) (string, bool) {
	value, ok := r.lookup(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func (r *reader) fail(key, value string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s=%q: %w", key, value, err))
}

func (r *reader) str(key, fallback string) string {
	if value, ok := r.raw(key); ok {
		return value
	}
	return fallback
}

func (r *reader) port(key string, fallback int) int {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		r.fail(key, value, errors.New("must be a port number between 1 and 65535"))
		return fallback
	}
	return port
}

func (r *reader) positive(key string, fallback int) int {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		r.fail(key, value, errors.New("must be a positive integer"))
		return fallback
	}
	return n
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		r.fail(key, value, errors.New("must be a positive duration such as 5m"))
		return fallback
	}
	return d
}

func (r *reader) boolean(key string, fallback bool) bool {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return b
}

func (r *reader) level(key string, fallback slog.Level) slog.Level {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		r.fail(key, value, err)
		return fallback
	}
	return level
}

func (r *reader) oneOf(key, fallback string, allowed ...string) string {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	r.fail(key, value, fmt.Errorf("must be one of %v", allowed))
	return fallback
}

func (r *reader) rate(key string, fallback decimal.Decimal) decimal.Decimal {
	value, ok := r.raw(key)
	if !ok {
		return fallback
	}
	rate, err := decimal.NewFromString(value)
	if err != nil || rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		r.fail(key, value, errors.New("must be a decimal in [0, 1)"))
		return fallback
	}
	return rate
}
