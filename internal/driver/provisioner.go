package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shellbridge/shellbridge/internal/logging"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// driverArtifact is the logical artifact name on the release host.
const driverArtifact = "chromedriver"

// Provisioner orchestrates driver version resolution, download,
// verification, and installation.
type Provisioner struct {
	cfg        Config
	resolver   *Resolver
	downloader *Downloader
	verifier   *Verifier
	extractor  *Extractor
	logger     logging.Logger
}

// NewProvisioner creates a provisioner from the given configuration,
// filling unset fields with host defaults.
func NewProvisioner(cfg Config, logger logging.Logger) (*Provisioner, error) {
	logger = logging.OrNop(logger)

	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}

	return &Provisioner{
		cfg:        cfg,
		resolver:   NewResolver(cfg.FeedURL, logger),
		downloader: NewDownloader(cfg.BaseURL, logger),
		verifier:   NewVerifier(cfg.KeyringPath, logger),
		extractor:  NewExtractor(),
		logger:     logger,
	}, nil
}

// Config returns the resolved configuration the provisioner operates with.
func (p *Provisioner) Config() Config {
	return p.cfg
}

// DriverName returns the driver binary filename for the configured platform.
func (p *Provisioner) DriverName() string {
	if p.cfg.Platform == platform.Win32 {
		return driverArtifact + ".exe"
	}
	return driverArtifact
}

// DriverPath returns the fixed location the driver binary is installed to.
func (p *Provisioner) DriverPath() string {
	return filepath.Join(p.cfg.InstallDir, p.DriverName())
}

// ResolveChromeVersion maps a runtime version to its engine-compatible
// version, falling back to the bundled table when the feed is unreachable.
func (p *Provisioner) ResolveChromeVersion(ctx context.Context, runtimeVersion string) (string, error) {
	return p.resolver.ChromeVersion(ctx, runtimeVersion)
}

// Provision downloads, verifies, and installs the driver binary matching
// targetVersion.
//
// When an attempt fails, it retries exactly once against the MAJOR.MINOR.0
// baseline of the attempted version. A failure at the baseline itself is
// terminal: it is logged and the underlying error is returned unchanged so
// callers see the true root cause.
func (p *Provisioner) Provision(ctx context.Context, targetVersion string) error {
	version := targetVersion
	for {
		err := p.provisionOnce(ctx, version)
		if err == nil {
			return nil
		}

		base := minorBaseline(version)
		if base == version {
			p.logger.Error("driver provisioning failed",
				"version", version, "target", targetVersion, "error", err)
			return err
		}

		p.logger.Warn("driver provisioning failed, retrying at minor baseline",
			"version", version, "baseline", base, "error", err)
		version = base
	}
}

// provisionOnce runs a single provisioning attempt for one exact version.
func (p *Provisioner) provisionOnce(ctx context.Context, version string) error {
	// The engine mapping informs capability decoration; the artifact itself
	// is addressed by runtime version, so a missing mapping is only a warning.
	if chrome, err := p.resolver.ChromeVersion(ctx, version); err != nil {
		p.logger.Warn("no engine version mapping for runtime version",
			"version", version, "error", err)
	} else {
		p.logger.Debug("resolved engine version", "runtime", version, "engine", chrome)
	}

	dlCfg := DownloadConfig{
		Version:      version,
		ArtifactName: driverArtifact,
		Force:        p.cfg.ForceDownload,
		CacheRoot:    p.cfg.CacheRoot,
		Platform:     p.cfg.Platform,
		Arch:         p.cfg.Arch,
	}

	archivePath, err := p.downloader.DownloadArtifact(ctx, dlCfg)
	if err != nil {
		return err
	}

	if !p.cfg.SkipVerify {
		checksumPath, err := p.downloader.DownloadChecksums(ctx, dlCfg)
		if err != nil {
			// Integrity check downgraded, not fatal: some mirrors do not
			// publish the manifest.
			p.logger.Warn("checksum manifest unavailable", "version", version, "error", err)
		} else if err := p.verifier.VerifyChecksum(archivePath, checksumPath); err != nil {
			return err
		}
	}

	if p.cfg.SignatureSuffix != "" {
		signaturePath, err := p.downloader.DownloadSignature(ctx, dlCfg, p.cfg.SignatureSuffix)
		if err != nil {
			return err
		}
		if err := p.verifier.VerifySignature(archivePath, signaturePath); err != nil {
			return err
		}
	}

	if p.cfg.ExtractAll {
		if err := p.extractor.ExtractAll(archivePath, p.cfg.InstallDir); err != nil {
			return err
		}
	} else if err := p.extractor.ExtractBinary(archivePath, p.DriverPath(), p.DriverName()); err != nil {
		return err
	}

	if p.cfg.Platform != platform.Win32 {
		if err := SetExecutable(p.DriverPath()); err != nil {
			return err
		}
	}

	p.logger.Info("driver provisioned", "version", version, "path", p.DriverPath())
	return nil
}

// minorBaseline returns the MAJOR.MINOR.0 baseline of a version. Versions
// with fewer than two segments have no baseline and are returned unchanged.
func minorBaseline(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1] + ".0"
}
