package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"golang.org/x/mod/semver"

	"github.com/shellbridge/shellbridge/internal/logging"
)

const (
	// DefaultFeedURL is the canonical runtime release metadata feed.
	DefaultFeedURL = "https://electronjs.org/headers/index.json"
	// feedTimeout bounds a single feed fetch.
	feedTimeout = 10 * time.Second
)

// Resolver maps runtime versions to their engine-compatible versions.
// The remote feed is authoritative and refreshed per call; the bundled
// static table is the fallback when the feed cannot be fetched or parsed.
type Resolver struct {
	client  *http.Client
	feedURL string
	logger  logging.Logger
}

// NewResolver creates a resolver for the given feed URL. An empty URL
// selects the default feed.
func NewResolver(feedURL string, logger logging.Logger) *Resolver {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Resolver{
		client:  &http.Client{Timeout: feedTimeout},
		feedURL: feedURL,
		logger:  logging.OrNop(logger),
	}
}

// VersionMap builds the runtime-version to engine-version mapping.
// Feed failures are absorbed: they are logged and the bundled static
// table is returned instead. This method never fails.
func (r *Resolver) VersionMap(ctx context.Context) map[string]string {
	releases, err := r.fetchReleases(ctx)
	if err != nil {
		r.logger.Debug("version feed unavailable, using bundled table",
			"url", r.feedURL, "error", err)
		return staticVersionMap()
	}

	sortReleases(releases)

	versions := make(map[string]string, len(releases))
	for _, release := range releases {
		versions[release.Version] = release.Chrome
	}
	return versions
}

// ChromeVersion resolves the engine version for a single runtime version.
// It returns ErrVersionNotFound when the version is absent from both the
// feed and the static table.
func (r *Resolver) ChromeVersion(ctx context.Context, runtimeVersion string) (string, error) {
	chrome, ok := r.VersionMap(ctx)[runtimeVersion]
	if !ok || chrome == "" {
		return "", fmt.Errorf("%w: %s", ErrVersionNotFound, runtimeVersion)
	}
	return chrome, nil
}

// fetchReleases fetches and decodes the remote feed.
func (r *Resolver) fetchReleases(ctx context.Context) ([]Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	return releases, nil
}

// sortReleases orders releases ascending by semantic version. The sort is
// stable so identical input always yields an identical mapping.
func sortReleases(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return semver.Compare("v"+releases[i].Version, "v"+releases[j].Version) < 0
	})
}
