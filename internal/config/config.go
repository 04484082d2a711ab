package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds everything the entry points need. Values come from the
// process environment, optionally seeded from a .env file.
type Config struct {
	Environment     string
	Port            string
	LogLevel        string
	DBDriver        string
	DatabaseURL     string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	AutoMigrate     bool
	RequestTimeout  time.Duration
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	DefaultLocale   string
	LinkLength      int
}

// Load reads .env (when present) and the environment. A missing .env file
// is not an error outside of it being logged.
func Load(envFiles ...string) (*Config, error) {
	return LoadWithOverrides(nil, envFiles...)
}

// LoadWithOverrides is Load with explicit values, such as command-line flags,
// taking precedence over the environment before validation runs. Empty
// values are ignored.
func LoadWithOverrides(overrides map[string]string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := newViper()
	for key, value := range overrides {
		if value != "" {
			v.Set(key, value)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GO_ENV", "development")
	v.SetDefault("PORT", "4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("MAX_BODY_BYTES", 100<<10)
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_LOCALE", "zh")
	v.SetDefault("LINK_LENGTH", 10)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment:     v.GetString("GO_ENV"),
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBMaxOpenConns:  v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:  v.GetInt("DB_MAX_IDLE_CONNS"),
		AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DefaultLocale:   v.GetString("DEFAULT_LOCALE"),
		LinkLength:      v.GetInt("LINK_LENGTH"),
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = postgresURL(v)
		}
	case DriverMySQL:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for driver %q", cfg.DBDriver)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func postgresURL(v *viper.Viper) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(v.GetString("POSTGRES_USER"), v.GetString("POSTGRES_PASSWORD")),
		Host:     v.GetString("POSTGRES_HOST") + ":" + v.GetString("POSTGRES_PORT"),
		Path:     "/" + v.GetString("POSTGRES_DB"),
		RawQuery: "sslmode=" + v.GetString("POSTGRES_SSLMODE"),
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSuffix(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
