package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("unexpected DB defaults: %q:%q", cfg.DBHost, cfg.DBPort)
	}
	if cfg.SessionSecret != "test-secret" {
		t.Errorf("SessionSecret = %q", cfg.SessionSecret)
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without SESSION_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "school")
	t.Setenv("APP_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBHost != "db.internal" || cfg.DBName != "school" || cfg.Addr != ":9999" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "pw",
		DBName:     "classhub",
		DBSSLMode:  "disable",
	}

	dsn := cfg.DSN()
	for _, part := range []string{"host=localhost", "port=5432", "user=app", "password=pw", "dbname=classhub", "sslmode=disable"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}
