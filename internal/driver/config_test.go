package driver

import (
	"path/filepath"
	"testing"

	"github.com/shellbridge/shellbridge/internal/platform"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvForceDownload, "true")
	t.Setenv(EnvCacheRoot, "/tmp/driver-cache")
	t.Setenv(EnvPlatform, "darwin")
	t.Setenv(EnvArch, "arm64")

	cfg := FromEnv()

	if !cfg.ForceDownload {
		t.Error("ForceDownload not picked up from environment")
	}
	if cfg.CacheRoot != "/tmp/driver-cache" {
		t.Errorf("CacheRoot = %q", cfg.CacheRoot)
	}
	if cfg.Platform != platform.Darwin {
		t.Errorf("Platform = %q", cfg.Platform)
	}
	if cfg.Arch != platform.ARM64 {
		t.Errorf("Arch = %q", cfg.Arch)
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv(EnvForceDownload, "")
	t.Setenv(EnvCacheRoot, "")
	t.Setenv(EnvPlatform, "")
	t.Setenv(EnvArch, "")

	cfg := FromEnv()
	if cfg.ForceDownload || cfg.CacheRoot != "" || cfg.Platform != "" || cfg.Arch != "" {
		t.Errorf("expected zero config from empty environment, got %+v", cfg)
	}
}

func TestFromEnvBadForceValue(t *testing.T) {
	t.Setenv(EnvForceDownload, "not-a-bool")

	if FromEnv().ForceDownload {
		t.Error("unparseable force value must not enable ForceDownload")
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg, err := Config{}.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults failed: %v", err)
	}

	if !cfg.Platform.Supported() {
		t.Errorf("default platform %q not supported", cfg.Platform)
	}
	if cfg.Arch == "" {
		t.Error("default arch not filled")
	}
	if cfg.CacheRoot == "" {
		t.Error("default cache root not filled")
	}
	if cfg.InstallDir != filepath.Join(cfg.CacheRoot, "bin") {
		t.Errorf("InstallDir = %q, want <cache>/bin", cfg.InstallDir)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.FeedURL != DefaultFeedURL {
		t.Errorf("FeedURL = %q", cfg.FeedURL)
	}
}

func TestConfigWithDefaultsKeepsExplicitValues(t *testing.T) {
	in := Config{
		CacheRoot:  "/custom/cache",
		InstallDir: "/custom/bin",
		Platform:   platform.Win32,
		Arch:       platform.IA32,
		BaseURL:    "https://mirror.example.com",
		FeedURL:    "https://feed.example.com",
	}

	out, err := in.withDefaults()
	if err != nil {
		t.Fatalf("withDefaults failed: %v", err)
	}
	if out != in {
		t.Errorf("explicit values were overwritten:\ngot:  %+v\nwant: %+v", out, in)
	}
}
