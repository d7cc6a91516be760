package driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/shellbridge/shellbridge/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 5 * time.Minute
	// DefaultRetries is the default number of download retries
	DefaultRetries = 3
	// DefaultUserAgent is the User-Agent header sent with requests
	DefaultUserAgent = "shellbridge/1.0"
	// DefaultBaseURL is the artifact host's release download root
	DefaultBaseURL = "https://github.com/electron/electron/releases/download"
	// checksumManifest is the per-release SHA256 manifest filename
	checksumManifest = "SHASUMS256.txt"
)

// Downloader handles HTTP downloads with retry logic and a local cache.
type Downloader struct {
	client    *http.Client
	baseURL   string
	userAgent string
	retries   int
	logger    logging.Logger
}

// NewDownloader creates a new downloader against the given artifact host.
// An empty baseURL selects the default host.
func NewDownloader(baseURL string, logger logging.Logger) *Downloader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Downloader{
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Allow up to 10 redirects
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		retries:   DefaultRetries,
		logger:    logging.OrNop(logger),
	}
}

// ArchiveName returns the artifact filename for a download request.
// Pattern: {artifact}-v{version}-{platform}-{arch}.zip
func ArchiveName(cfg DownloadConfig) string {
	return fmt.Sprintf("%s-v%s-%s-%s.zip", cfg.ArtifactName, cfg.Version, cfg.Platform, cfg.Arch)
}

// ArchiveURL returns the release download URL for a request.
func (d *Downloader) ArchiveURL(cfg DownloadConfig) string {
	return fmt.Sprintf("%s/v%s/%s", d.baseURL, cfg.Version, ArchiveName(cfg))
}

// ChecksumURL returns the URL of the release's SHA256 manifest.
func (d *Downloader) ChecksumURL(cfg DownloadConfig) string {
	return fmt.Sprintf("%s/v%s/%s", d.baseURL, cfg.Version, checksumManifest)
}

// DownloadArtifact downloads the driver archive described by cfg into the
// cache and returns the local archive path. A cached archive is reused
// unless cfg.Force is set.
func (d *Downloader) DownloadArtifact(ctx context.Context, cfg DownloadConfig) (string, error) {
	cachePath := filepath.Join(cfg.CacheRoot, cfg.ArtifactName, cfg.Version, ArchiveName(cfg))

	if !cfg.Force && fileExists(cachePath) {
		d.logger.Debug("artifact cache hit", "path", cachePath)
		return cachePath, nil
	}

	if err := d.DownloadToFile(ctx, d.ArchiveURL(cfg), cachePath); err != nil {
		return "", fmt.Errorf("download artifact: %w", err)
	}

	return cachePath, nil
}

// DownloadChecksums downloads the release's SHA256 manifest and returns
// its local path.
func (d *Downloader) DownloadChecksums(ctx context.Context, cfg DownloadConfig) (string, error) {
	cachePath := filepath.Join(cfg.CacheRoot, cfg.ArtifactName, cfg.Version, checksumManifest)

	if !cfg.Force && fileExists(cachePath) {
		return cachePath, nil
	}

	if err := d.DownloadToFile(ctx, d.ChecksumURL(cfg), cachePath); err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}

	return cachePath, nil
}

// DownloadSignature downloads the archive's detached signature, located by
// appending suffix to the archive URL. Used for mirrors that sign artifacts.
func (d *Downloader) DownloadSignature(ctx context.Context, cfg DownloadConfig, suffix string) (string, error) {
	if suffix == "" {
		return "", fmt.Errorf("no signature suffix configured")
	}

	cachePath := filepath.Join(cfg.CacheRoot, cfg.ArtifactName, cfg.Version, ArchiveName(cfg)+suffix)

	if !cfg.Force && fileExists(cachePath) {
		return cachePath, nil
	}

	if err := d.DownloadToFile(ctx, d.ArchiveURL(cfg)+suffix, cachePath); err != nil {
		return "", fmt.Errorf("download signature: %w", err)
	}

	return cachePath, nil
}

// DownloadToFile downloads a URL to a specific file path
func (d *Downloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	var lastErr error

	for attempt := 0; attempt <= d.retries; attempt++ {
		// Check context before each attempt
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := d.downloadOnce(ctx, url, destPath)
		if err == nil {
			return nil
		}

		lastErr = err
		d.logger.Debug("download attempt failed", "url", url, "attempt", attempt, "error", err)

		// Don't retry on context cancellation
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("download failed after %d retries: %w", d.retries, lastErr)
}

// downloadOnce performs a single download attempt
func (d *Downloader) downloadOnce(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Create destination directory
	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	// Download to a temp file, then rename into place
	tmpPath := destPath + ".tmp"
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		tmpFile.Close()
		if cleanupNeeded {
			os.Remove(tmpPath) // Clean up on error
		}
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("copy response body: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	cleanupNeeded = false
	return nil
}

// fileExists checks if a file exists and is not empty
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
