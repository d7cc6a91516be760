package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/shellbridge/shellbridge/internal/platform"
)

// Environment variables honored by FromEnv. All are optional overrides;
// unset values leave the corresponding Config field at its zero value and
// the provisioner's defaults apply downstream.
const (
	EnvForceDownload = "SHELLBRIDGE_FORCE_DOWNLOAD"
	EnvCacheRoot     = "SHELLBRIDGE_CACHE"
	EnvPlatform      = "SHELLBRIDGE_PLATFORM"
	EnvArch          = "SHELLBRIDGE_ARCH"
)

// Config holds caller-supplied provisioning configuration. The zero value
// is usable: every field has a sensible default applied by the provisioner.
type Config struct {
	// CacheRoot is where downloaded archives are kept.
	// Default: <user cache dir>/shellbridge.
	CacheRoot string

	// InstallDir is where the driver binary is extracted.
	// Default: <CacheRoot>/bin. This is a shared, process-wide location;
	// concurrent provisioning calls race on it (see package doc).
	InstallDir string

	// ForceDownload bypasses the archive cache.
	ForceDownload bool

	// Platform and Arch override the ambient host values.
	Platform platform.Platform
	Arch     platform.Arch

	// BaseURL is the artifact host's release download root.
	BaseURL string

	// FeedURL is the version metadata feed endpoint.
	FeedURL string

	// SkipVerify disables checksum verification of downloaded archives.
	SkipVerify bool

	// ExtractAll extracts the entire release archive (license and notice
	// files included) into InstallDir instead of just the driver binary.
	ExtractAll bool

	// KeyringPath points at a GPG keyring used to verify detached archive
	// signatures. Only meaningful together with SignatureSuffix; the
	// default artifact host does not sign archives, mirrors may.
	KeyringPath string

	// SignatureSuffix is appended to the archive URL to locate its
	// detached signature (e.g. ".asc"). Empty disables GPG verification.
	SignatureSuffix string
}

// FromEnv builds a Config from the documented environment overrides.
// Values are read as-is and not validated here.
func FromEnv() Config {
	cfg := Config{
		CacheRoot: os.Getenv(EnvCacheRoot),
		Platform:  platform.Platform(os.Getenv(EnvPlatform)),
		Arch:      platform.Arch(os.Getenv(EnvArch)),
	}

	if v := os.Getenv(EnvForceDownload); v != "" {
		force, err := strconv.ParseBool(v)
		cfg.ForceDownload = err == nil && force
	}

	return cfg
}

// withDefaults returns a copy of the config with every unset field filled
// in from the host environment.
func (c Config) withDefaults() (Config, error) {
	if c.Platform == "" {
		p, err := platform.FromGOOS(runtime.GOOS)
		if err != nil {
			return c, fmt.Errorf("default platform: %w", err)
		}
		c.Platform = p
	}

	if c.Arch == "" {
		a, err := platform.FromGOARCH(runtime.GOARCH)
		if err != nil {
			return c, fmt.Errorf("default arch: %w", err)
		}
		c.Arch = a
	}

	if c.CacheRoot == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return c, fmt.Errorf("resolve cache dir: %w", err)
		}
		c.CacheRoot = filepath.Join(userCache, "shellbridge")
	}

	if c.InstallDir == "" {
		c.InstallDir = filepath.Join(c.CacheRoot, "bin")
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.FeedURL == "" {
		c.FeedURL = DefaultFeedURL
	}

	return c, nil
}
