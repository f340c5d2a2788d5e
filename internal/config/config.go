// Package config loads settings from defaults, an optional zavetisce.yaml,
// a .env file and ZAVETISCE_* environment variables, in increasing
// precedence. Command-line flags are bound on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/erazemk/zavetisce/internal/db"
)

// EnvPrefix prefixes every environment variable, e.g. ZAVETISCE_DB_DSN.
const EnvPrefix = "ZAVETISCE"

// Config is the full process configuration.
type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
	Notify NotifyConfig `mapstructure:"notify"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Admin  AdminConfig  `mapstructure:"admin"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type NotifyConfig struct {
	QueueSize int           `mapstructure:"queue_size"`
	Workers   int           `mapstructure:"workers"`
	Grace     time.Duration `mapstructure:"grace"`
}

type AuthConfig struct {
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type AdminConfig struct {
	Email string `mapstructure:"email"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "zavetisce.sqlite3")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("notify.queue_size", 256)
	v.SetDefault("notify.workers", 1)
	v.SetDefault("notify.grace", time.Second)
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("admin.email", "admin@zavetisce.local")

	v.SetConfigName("zavetisce")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the .env file at envFile (skipped when missing), the config
// file at path or the default search path when path is empty, and returns
// the validated result.
func Load(v *viper.Viper, path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	dialect, err := db.ParseDialect(c.DB.Driver)
	if err != nil {
		return err
	}
	c.DB.Driver = string(dialect)

	var errs []error
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("db.dsn is required"))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.Notify.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("notify.queue_size must be positive, got %d", c.Notify.QueueSize))
	}
	if c.Notify.Workers <= 0 {
		errs = append(errs, fmt.Errorf("notify.workers must be positive, got %d", c.Notify.Workers))
	}
	if c.Notify.Grace < 0 {
		errs = append(errs, fmt.Errorf("notify.grace must not be negative, got %s", c.Notify.Grace))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if !strings.Contains(c.Admin.Email, "@") {
		errs = append(errs, fmt.Errorf("admin.email %q is not an email address", c.Admin.Email))
	}
	return errors.Join(errs...)
}
