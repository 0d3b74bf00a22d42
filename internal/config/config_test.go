package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "learnhub-portal" {
		t.Fatalf("unexpected app name: %q", cfg.App.Name)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("unexpected default storage driver: %q", cfg.Storage.Driver)
	}
	if cfg.Routes.SignPath != "/auth/sign" {
		t.Fatalf("unexpected sign path: %q", cfg.Routes.SignPath)
	}
	if cfg.API.AdminPathPrefix != "/admin" {
		t.Fatalf("unexpected admin prefix: %q", cfg.API.AdminPathPrefix)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_STORAGE_DRIVER", "redis")
	t.Setenv("API_BASE_URL", "https://api.learnhub.example/api")
	t.Setenv("API_REQUEST_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Storage.Driver != "redis" {
		t.Fatalf("driver override not applied: %q", cfg.Storage.Driver)
	}
	if cfg.API.BaseURL != "https://api.learnhub.example/api" {
		t.Fatalf("base url override not applied: %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout().Seconds() != 3 {
		t.Fatalf("timeout override not applied: %v", cfg.API.RequestTimeout())
	}
}
