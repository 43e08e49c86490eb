package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LABELSCAN_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Server.Port = %s, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
	}
	if cfg.Server.MaxUploadBytes != 16*1024*1024 {
		t.Errorf("Server.MaxUploadBytes = %d, want 16 MB", cfg.Server.MaxUploadBytes)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Errorf("Gemini.APIKey = %s, want test-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("Gemini.BaseURL = %s", cfg.Gemini.BaseURL)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %s", cfg.Gemini.Model)
	}
	if cfg.Search.BaseURL != "https://www.googleapis.com" {
		t.Errorf("Search.BaseURL = %s", cfg.Search.BaseURL)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Session.TTL = %s, want 30m", cfg.Session.TTL)
	}
	if cfg.RateLimit.PerIPRPS != 2.0 {
		t.Errorf("RateLimit.PerIPRPS = %v, want 2.0", cfg.RateLimit.PerIPRPS)
	}
	if cfg.RateLimit.PerIPBurst != 5 {
		t.Errorf("RateLimit.PerIPBurst = %d, want 5", cfg.RateLimit.PerIPBurst)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LABELSCAN_GEMINI_API_KEY", "custom-api-key")
	t.Setenv("LABELSCAN_SERVER_PORT", "9090")
	t.Setenv("LABELSCAN_SERVER_ENVIRONMENT", "production")
	t.Setenv("LABELSCAN_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("LABELSCAN_SEARCH_API_KEY", "search-key")
	t.Setenv("LABELSCAN_SEARCH_ENGINE_ID", "engine-123")
	t.Setenv("LABELSCAN_SESSION_TTL", "5m")
	t.Setenv("LABELSCAN_RATELIMIT_PER_IP_RPS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
	}
	if cfg.Gemini.APIKey != "custom-api-key" {
		t.Errorf("Gemini.APIKey = %s, want custom-api-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Gemini.Model = %s, want gemini-2.5-pro", cfg.Gemini.Model)
	}
	if cfg.Search.APIKey != "search-key" {
		t.Errorf("Search.APIKey = %s, want search-key", cfg.Search.APIKey)
	}
	if cfg.Search.EngineID != "engine-123" {
		t.Errorf("Search.EngineID = %s, want engine-123", cfg.Search.EngineID)
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Errorf("Session.TTL = %s, want 5m", cfg.Session.TTL)
	}
	if cfg.RateLimit.PerIPRPS != 10 {
		t.Errorf("RateLimit.PerIPRPS = %v, want 10", cfg.RateLimit.PerIPRPS)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("LABELSCAN_GEMINI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded without a Gemini API key")
	}
	if !strings.Contains(err.Error(), "Gemini API key") {
		t.Errorf("error = %v, want mention of the Gemini API key", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{MaxUploadBytes: 1024},
			Gemini:  GeminiConfig{APIKey: "test-key"},
			Session: SessionConfig{TTL: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing api key", func(c *Config) { c.Gemini.APIKey = "" }, true},
		{"zero upload limit", func(c *Config) { c.Server.MaxUploadBytes = 0 }, true},
		{"negative upload limit", func(c *Config) { c.Server.MaxUploadBytes = -1 }, true},
		{"negative ttl", func(c *Config) { c.Session.TTL = -time.Second }, true},
		{"zero ttl allowed", func(c *Config) { c.Session.TTL = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
