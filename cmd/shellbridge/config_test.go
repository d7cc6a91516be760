package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shellbridge.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
app_name: myapp
dist_path: /builds/dist
app_args:
  - --no-sandbox
cache: /var/cache/shellbridge
platform: darwin
arch: arm64
base_url: https://mirror.example.com
skip_verify: true
keyring: /etc/shellbridge/keyring.gpg
signature_suffix: .asc
`)

	cfg, err := loadConfigFile(path, true)
	if err != nil {
		t.Fatalf("loadConfigFile failed: %v", err)
	}

	if cfg.AppName != "myapp" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.DistPath != "/builds/dist" {
		t.Errorf("DistPath = %q", cfg.DistPath)
	}
	if len(cfg.AppArgs) != 1 || cfg.AppArgs[0] != "--no-sandbox" {
		t.Errorf("AppArgs = %v", cfg.AppArgs)
	}
	if cfg.CacheRoot != "/var/cache/shellbridge" {
		t.Errorf("CacheRoot = %q", cfg.CacheRoot)
	}
	if cfg.Platform != "darwin" || cfg.Arch != "arm64" {
		t.Errorf("target = %s-%s", cfg.Platform, cfg.Arch)
	}
	if !cfg.SkipVerify {
		t.Error("SkipVerify not parsed")
	}
	if cfg.KeyringPath != "/etc/shellbridge/keyring.gpg" || cfg.SignatureSuffix != ".asc" {
		t.Errorf("signing config = %q %q", cfg.KeyringPath, cfg.SignatureSuffix)
	}
}

func TestLoadConfigFileMissingDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shellbridge.yaml")

	cfg, err := loadConfigFile(path, false)
	if err != nil {
		t.Fatalf("missing default config must not error: %v", err)
	}
	if cfg.AppName != "" || cfg.CacheRoot != "" || cfg.AppArgs != nil {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigFileMissingExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	if _, err := loadConfigFile(path, true); err == nil {
		t.Error("missing explicit config file must error")
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := writeConfig(t, "app_name: [unclosed")

	if _, err := loadConfigFile(path, true); err == nil {
		t.Error("malformed YAML must error")
	}
}

func TestDriverConfigLayering(t *testing.T) {
	t.Setenv("SHELLBRIDGE_CACHE", "/env/cache")
	t.Setenv("SHELLBRIDGE_PLATFORM", "linux")
	t.Setenv("SHELLBRIDGE_ARCH", "")
	t.Setenv("SHELLBRIDGE_FORCE_DOWNLOAD", "")

	file := fileConfig{
		CacheRoot: "/file/cache",
		Arch:      "arm64",
	}

	cfg := file.driverConfig()

	// File values win over environment values
	if cfg.CacheRoot != "/file/cache" {
		t.Errorf("CacheRoot = %q, want file value", cfg.CacheRoot)
	}
	// Environment fills what the file leaves unset
	if string(cfg.Platform) != "linux" {
		t.Errorf("Platform = %q, want env value", cfg.Platform)
	}
	if string(cfg.Arch) != "arm64" {
		t.Errorf("Arch = %q, want file value", cfg.Arch)
	}
}
