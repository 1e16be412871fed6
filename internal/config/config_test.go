package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if !cfg.IgnoreDotFile {
		t.Error("expected IgnoreDotFile to default true")
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.Cache.Path == "" {
		t.Error("expected a non-empty default cache path")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".seqscan.yaml")
	content := `
log_level: debug
negative: true
ignore_dot_file: false
filters:
  - "*.exr"
  - "*.dpx"
cache:
  enabled: false
  path: /tmp/custom.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.Negative {
		t.Error("expected Negative true")
	}
	if cfg.IgnoreDotFile {
		t.Error("expected IgnoreDotFile false, explicitly overridden")
	}
	if len(cfg.Filters) != 2 || cfg.Filters[0] != "*.exr" {
		t.Errorf("unexpected filters: %+v", cfg.Filters)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache disabled")
	}
	if cfg.Cache.Path != "/tmp/custom.db" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".seqscan.yaml")
	if err := os.WriteFile(path, []byte("not: [valid yaml"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	logDir := "/var/log/seqscan"
	negative := true

	cfg.MergeWithFlags(&logDir, &negative, nil, nil, nil)

	if cfg.LogDir != logDir {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, logDir)
	}
	if !cfg.Negative {
		t.Error("expected Negative true after merge")
	}
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestValidate_RejectsEmptyCachePathWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty cache path")
	}
}
