package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Provider != ProviderGoogle {
		t.Errorf("expected google provider, got %s", cfg.Provider)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %g", cfg.Temperature)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".neonfolio.yml")
	content := "port: 9090\nprovider: openai\nmodel: gpt-4o\nowner:\n  name: Alice\n  role: Engineer\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected openai, got %s", cfg.Provider)
	}
	if cfg.Owner.Name != "Alice" {
		t.Errorf("expected owner Alice, got %q", cfg.Owner.Name)
	}
	// Untouched fields keep defaults.
	if cfg.AccessKey == "" {
		t.Error("expected default access key to survive overlay")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NEONFOLIO_PORT", "3000")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("expected env override port 3000, got %d", cfg.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad provider", func(c *Config) { c.Provider = "bedrock" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"negative temperature", func(c *Config) { c.Temperature = -1 }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"empty owner", func(c *Config) { c.Owner.Name = "" }},
		{"empty access key", func(c *Config) { c.AccessKey = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".neonfolio.yml")
	cfg := DefaultConfig()
	cfg.Port = 4242
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Port != 4242 {
		t.Errorf("expected 4242 after round trip, got %d", loaded.Port)
	}
}
