package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "3001" {
		t.Errorf("got port %q, want default 3001", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30 || cfg.Server.WriteTimeout != 30 {
		t.Errorf("got timeouts %d/%d, want 30/30", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Server.CORSAllowedOrigins == "" {
		t.Error("CORS origins default must not be empty")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT_SEC", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("got port %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("got read timeout %d, want 5", cfg.Server.ReadTimeout)
	}
	if cfg.Server.CORSAllowedOrigins != "*" {
		t.Errorf("got origins %q, want *", cfg.Server.CORSAllowedOrigins)
	}
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("READ_TIMEOUT_SEC", "not a number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.ReadTimeout != 30 {
		t.Errorf("got read timeout %d, want fallback 30", cfg.Server.ReadTimeout)
	}
}
