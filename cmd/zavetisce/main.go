// Command zavetisce runs the shelter backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/erazemk/zavetisce/internal/config"
	"github.com/erazemk/zavetisce/internal/db"
	"github.com/erazemk/zavetisce/internal/logging"
	"github.com/erazemk/zavetisce/internal/model"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile, envFile string

	root := &cobra.Command{
		Use:          "zavetisce",
		Short:        "Stray-animal rescue backend",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default: ./zavetisce.yaml when present)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("db-driver", "sqlite", "database driver: sqlite or postgres")
	flags.StringP("db", "d", "zavetisce.sqlite3", "database DSN (SQLite path or Postgres URL)")
	flags.StringP("addr", "a", ":8080", "listen address")
	flags.StringP("log", "l", "", "log file path (default: stdout/stderr only)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")
	flags.StringP("admin-email", "u", "admin@zavetisce.local", "admin account email on first run")

	for key, flag := range map[string]string{
		"db.driver":   "db-driver",
		"db.dsn":      "db",
		"http.addr":   "addr",
		"log.file":    "log",
		"log.level":   "log-level",
		"log.format":  "log-format",
		"admin.email": "admin-email",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	load := func() (*env, error) {
		return loadEnv(v, configFile, envFile)
	}

	root.AddCommand(
		newServeCmd(load),
		newInitCmd(load),
		newVersionCmd(),
	)
	return root
}

// env is what every command needs once configuration is loaded.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	cleanup func()
}

func loadEnv(v *viper.Viper, configFile, envFile string) (*env, error) {
	cfg, err := config.Load(v, configFile, envFile)
	if err != nil {
		return nil, err
	}
	log, cleanup, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, cleanup: cleanup}, nil
}

// openDatabase connects, checks the store is reachable and ensures the
// schema exists.
func openDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*db.DB, error) {
	database, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := database.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.DB.Driver))
	return database, nil
}

// printInitResult prints the first-run admin account.
func printInitResult(w io.Writer, cfg *config.Config, admin *model.User) {
	fmt.Fprintf(w, "Database initialized (%s).\n", cfg.DB.Driver)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Admin account created:")
	fmt.Fprintf(w, "  Email: %s\n", admin.Email)
	fmt.Fprintf(w, "  Role:  %s\n", admin.Role)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Log in with POST /api/auth/login using this email and role.")
}
