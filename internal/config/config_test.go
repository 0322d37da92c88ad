package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "evals/datasets/ragas_docs" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Fetch.UserAgent != "Mozilla/5.0" {
		t.Errorf("Fetch.UserAgent = %q", cfg.Fetch.UserAgent)
	}
	if cfg.Fetch.GetTimeout() != 0 {
		t.Errorf("GetTimeout() = %v, want 0", cfg.Fetch.GetTimeout())
	}
	if cfg.Fetch.GetMinInterval() != 0 {
		t.Errorf("GetMinInterval() = %v, want 0", cfg.Fetch.GetMinInterval())
	}
	if cfg.History.Enabled() {
		t.Error("history should be disabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: /tmp/docs
fetch:
  user_agent: docfetch/1.0
  timeout: 45s
  min_interval: 500ms
history:
  path: /tmp/docs/history.db
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Dir != "/tmp/docs" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Fetch.UserAgent != "docfetch/1.0" {
		t.Errorf("Fetch.UserAgent = %q", cfg.Fetch.UserAgent)
	}
	if cfg.Fetch.GetTimeout() != 45*time.Second {
		t.Errorf("GetTimeout() = %v", cfg.Fetch.GetTimeout())
	}
	if cfg.Fetch.GetMinInterval() != 500*time.Millisecond {
		t.Errorf("GetMinInterval() = %v", cfg.Fetch.GetMinInterval())
	}
	if !cfg.History.Enabled() || cfg.History.Path != "/tmp/docs/history.db" {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Output.Dir != "evals/datasets/ragas_docs" || cfg.Fetch.UserAgent != "Mozilla/5.0" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of missing explicit file should fail")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty output dir", "output:\n  dir: \"\"\n", "output.dir"},
		{"empty user agent", "fetch:\n  user_agent: \" \"\n", "fetch.user_agent"},
		{"bad timeout", "fetch:\n  timeout: soon\n", "fetch.timeout"},
		{"negative timeout", "fetch:\n  timeout: -1s\n", "fetch.timeout"},
		{"bad interval", "fetch:\n  min_interval: often\n", "fetch.min_interval"},
		{"bad level", "logging:\n  level: loud\n", "logging.level"},
		{"bad format", "logging:\n  format: xml\n", "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
