package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("expected env 'dev', got %q", cfg.Env)
	}
	if cfg.StoragePath != "inventory.db" {
		t.Errorf("expected storage path 'inventory.db', got %q", cfg.StoragePath)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("expected addr ':8000', got %q", cfg.HTTPAddr)
	}
	if cfg.EnableDelay {
		t.Error("expected delay disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STORAGE_PATH", "/tmp/test-inventory.db")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("ENABLE_DELAY", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected env 'prod', got %q", cfg.Env)
	}
	if cfg.StoragePath != "/tmp/test-inventory.db" {
		t.Errorf("unexpected storage path %q", cfg.StoragePath)
	}
	if cfg.HTTPAddr != ":9000" {
		t.Errorf("unexpected addr %q", cfg.HTTPAddr)
	}
	if !cfg.EnableDelay {
		t.Error("expected delay enabled")
	}
}
