package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithEnv_FileValuesAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := `
env:
  env: local
  serviceName: teamed
  log:
    pretty: true
    level: debug
http:
  port: 5000
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
    idleTimeout: 60s
auth:
  bcryptCost: 12
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("ENV_LOG_LEVEL", "warn")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Env.ServiceName != "teamed" {
		t.Errorf("serviceName = %q, want %q", cfg.Env.ServiceName, "teamed")
	}
	if cfg.HTTP.Port != 9000 {
		t.Errorf("http.port = %d, want env override 9000", cfg.HTTP.Port)
	}
	if cfg.Env.Log.Level != "warn" {
		t.Errorf("log.level = %q, want env override %q", cfg.Env.Log.Level, "warn")
	}
	if cfg.HTTP.Timeouts.ReadTimeout != 5*time.Second {
		t.Errorf("readTimeout = %v, want 5s", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("nonexistent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
