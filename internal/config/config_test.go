package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.SessionSecret == "" {
			t.Error("dev deve receber um secret de fallback")
		}
	})

	t.Run("ProductionValidation", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("APP_ENV", "prod")
		_, err := Load()
		if err == nil {
			t.Error("expected error when SESSION_SECRET is missing in production")
		}
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("PORT", "9000")
		os.Setenv("DATABASE_URL", "/tmp/other.db")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Port != "9000" {
			t.Errorf("expected port 9000, got %s", cfg.Port)
		}
		if cfg.DatabaseURL != "/tmp/other.db" {
			t.Errorf("expected custom database url, got %s", cfg.DatabaseURL)
		}
	})
}

func TestGetSQLiteConfig(t *testing.T) {
	os.Clearenv()
	os.Setenv("SQLITE_CACHE_SIZE", "-8000")
	os.Setenv("SQLITE_SYNC_LEVEL", "full")
	os.Setenv("SQLITE_BUSY_TIMEOUT", "1000")

	cfg := GetSQLiteConfig()
	if cfg.CacheSizeKB != -8000 {
		t.Errorf("expected cache -8000, got %d", cfg.CacheSizeKB)
	}
	if cfg.SyncLevel != "FULL" {
		t.Errorf("expected FULL, got %s", cfg.SyncLevel)
	}
	if cfg.BusyTimeout != 1000 {
		t.Errorf("expected busy_timeout 1000, got %d", cfg.BusyTimeout)
	}
}
