package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("default backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr == "" {
		t.Error("default redis addr is empty")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[cache]
backend = "redis"

[cache.redis]
addr = "cache.internal:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "cache.internal:6379" {
		t.Errorf("redis addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("redis db = %d, want 2", cfg.Cache.Redis.DB)
	}
	// Untouched sections keep their defaults
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr = %q, want default :8080", cfg.Server.Addr)
	}
	if cfg.Cache.Mongo.URI == "" {
		t.Error("mongo uri default lost")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig() of missing file should error")
	}
}

func TestLoadConfigOrDefault_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfigOrDefault()
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("backend = %q, want file default", cfg.Cache.Backend)
	}
}

func TestLoadConfigOrDefault_ReadsFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfigOrDefault()
	if cfg.Cache.Backend != CacheBackendNone {
		t.Errorf("backend = %q, want none", cfg.Cache.Backend)
	}
}
