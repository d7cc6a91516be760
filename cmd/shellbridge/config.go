package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shellbridge/shellbridge/internal/driver"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// defaultConfigFile is looked for in the working directory when --config
// is not given. A missing default file is not an error.
const defaultConfigFile = "shellbridge.yaml"

// fileConfig is the YAML configuration file shape. All fields are
// optional; command-line flags override file values, which override
// environment variables.
type fileConfig struct {
	AppName  string   `yaml:"app_name"`
	DistPath string   `yaml:"dist_path"`
	AppArgs  []string `yaml:"app_args"`

	CacheRoot     string `yaml:"cache"`
	InstallDir    string `yaml:"install_dir"`
	ForceDownload bool   `yaml:"force_download"`
	Platform      string `yaml:"platform"`
	Arch          string `yaml:"arch"`
	BaseURL       string `yaml:"base_url"`
	FeedURL       string `yaml:"feed_url"`
	SkipVerify    bool   `yaml:"skip_verify"`
	ExtractAll    bool   `yaml:"extract_all"`

	KeyringPath     string `yaml:"keyring"`
	SignatureSuffix string `yaml:"signature_suffix"`
}

// loadConfigFile reads and parses a YAML config file. When explicit is
// false the path is the conventional default and a missing file yields an
// empty config.
func loadConfigFile(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// driverConfig layers the file values over the environment overrides and
// returns a driver.Config ready for flag overrides on top.
func (f fileConfig) driverConfig() driver.Config {
	cfg := driver.FromEnv()

	if f.CacheRoot != "" {
		cfg.CacheRoot = f.CacheRoot
	}
	if f.InstallDir != "" {
		cfg.InstallDir = f.InstallDir
	}
	if f.ForceDownload {
		cfg.ForceDownload = true
	}
	if f.Platform != "" {
		cfg.Platform = platform.Platform(f.Platform)
	}
	if f.Arch != "" {
		cfg.Arch = platform.Arch(f.Arch)
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.FeedURL != "" {
		cfg.FeedURL = f.FeedURL
	}
	if f.SkipVerify {
		cfg.SkipVerify = true
	}
	if f.ExtractAll {
		cfg.ExtractAll = true
	}
	if f.KeyringPath != "" {
		cfg.KeyringPath = f.KeyringPath
	}
	if f.SignatureSuffix != "" {
		cfg.SignatureSuffix = f.SignatureSuffix
	}

	return cfg
}
