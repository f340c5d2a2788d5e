package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "zavetisce.sqlite3", cfg.DB.DSN)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 256, cfg.Notify.QueueSize)
	assert.Equal(t, 1, cfg.Notify.Workers)
	assert.Equal(t, time.Second, cfg.Notify.Grace)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
}

func TestFileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zavetisce.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  driver: postgresql
  dsn: postgres://shelter@localhost/zavetisce
notify:
  workers: 4
  grace: 250ms
log:
  format: json
`), 0o644))

	t.Setenv("ZAVETISCE_NOTIFY_WORKERS", "2")
	t.Setenv("ZAVETISCE_HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := Load(New(), path, "")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver, "driver aliases are normalised")
	assert.Equal(t, "postgres://shelter@localhost/zavetisce", cfg.DB.DSN)
	assert.Equal(t, 2, cfg.Notify.Workers, "environment beats the file")
	assert.Equal(t, 250*time.Millisecond, cfg.Notify.Grace)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("ZAVETISCE_ADMIN_EMAIL=boss@zavetisce.si\n"), 0o644))
	t.Setenv("ZAVETISCE_ADMIN_EMAIL", "")
	os.Unsetenv("ZAVETISCE_ADMIN_EMAIL")
	chdir(t, dir)

	cfg, err := Load(New(), "", envFile)
	require.NoError(t, err)
	assert.Equal(t, "boss@zavetisce.si", cfg.Admin.Email)

	_, err = Load(New(), "", filepath.Join(dir, "missing.env"))
	assert.NoError(t, err, "a missing .env is not an error")
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DB:     DBConfig{Driver: "sqlite", DSN: ":memory:"},
			HTTP:   HTTPConfig{Addr: ":8080"},
			Notify: NotifyConfig{QueueSize: 1, Workers: 1},
			Auth:   AuthConfig{TokenTTL: time.Hour},
			Admin:  AdminConfig{Email: "a@b.si"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }},
		{"empty dsn", func(c *Config) { c.DB.DSN = "" }},
		{"zero queue", func(c *Config) { c.Notify.QueueSize = 0 }},
		{"negative workers", func(c *Config) { c.Notify.Workers = -1 }},
		{"negative grace", func(c *Config) { c.Notify.Grace = -time.Second }},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }},
		{"bad admin email", func(c *Config) { c.Admin.Email = "admin" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
