package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hy4ri/items-tui/internal/api"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.BaseURL != api.DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", api.DefaultBaseURL, cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout != api.DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", api.DefaultTimeout, cfg.Server.Timeout)
	}
	if !cfg.UI.MarkdownNotes {
		t.Error("markdown notes should be on by default")
	}
	if cfg.UI.Notifications {
		t.Error("notifications should be off by default")
	}
}

func TestLoadFrom(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "full file",
			content: "server:\n  base_url: http://localhost:3000\n  timeout: 5s\nui:\n  notifications: true\n  markdown_notes: false\n  debug_log: /tmp/items.log\n",
			want: func(t *testing.T, cfg *Config) {
				if cfg.Server.BaseURL != "http://localhost:3000" {
					t.Errorf("unexpected base URL %q", cfg.Server.BaseURL)
				}
				if cfg.Server.Timeout != 5*time.Second {
					t.Errorf("unexpected timeout %v", cfg.Server.Timeout)
				}
				if !cfg.UI.Notifications || cfg.UI.MarkdownNotes {
					t.Errorf("unexpected ui settings %+v", cfg.UI)
				}
				if cfg.UI.DebugLog != "/tmp/items.log" {
					t.Errorf("unexpected debug log %q", cfg.UI.DebugLog)
				}
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "ui:\n  notifications: true\n",
			want: func(t *testing.T, cfg *Config) {
				if cfg.Server.BaseURL != api.DefaultBaseURL {
					t.Errorf("unexpected base URL %q", cfg.Server.BaseURL)
				}
				if cfg.Server.Timeout != api.DefaultTimeout {
					t.Errorf("unexpected timeout %v", cfg.Server.Timeout)
				}
				if !cfg.UI.MarkdownNotes {
					t.Error("markdown default lost")
				}
			},
		},
		{
			name:    "blank base url falls back",
			content: "server:\n  base_url: \"\"\n",
			want: func(t *testing.T, cfg *Config) {
				if cfg.Server.BaseURL != api.DefaultBaseURL {
					t.Errorf("unexpected base URL %q", cfg.Server.BaseURL)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: "server: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFrom(path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.want(t, cfg)
		})
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != api.DefaultBaseURL {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Server.BaseURL = "http://localhost:4000"
	cfg.Server.Timeout = 2 * time.Minute
	cfg.UI.Notifications = true

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Server != cfg.Server || loaded.UI != cfg.UI {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", cfg, loaded)
	}
}

func TestLoadUsesHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(home, ".config", "items-tui", "config.yaml") {
		t.Errorf("unexpected config path %s", path)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != api.DefaultBaseURL {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvServer, " http://localhost:7070 ")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Server.BaseURL != "http://localhost:7070" {
		t.Errorf("expected env override, got %q", cfg.Server.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		baseURL string
		wantErr bool
	}{
		{baseURL: "http://localhost:8080", wantErr: false},
		{baseURL: "https://items.example.org", wantErr: false},
		{baseURL: "localhost:8080", wantErr: true},
		{baseURL: "ftp://host", wantErr: true},
		{baseURL: "http://", wantErr: true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Server.BaseURL = tt.baseURL
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
		}
	}
}
