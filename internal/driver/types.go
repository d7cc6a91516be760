package driver

import (
	"errors"

	"github.com/shellbridge/shellbridge/internal/platform"
)

// ErrVersionNotFound indicates a runtime version absent from both the
// remote feed and the bundled static table.
var ErrVersionNotFound = errors.New("no engine version mapping for runtime version")

// Release is one record of the remote version feed: a runtime release and
// the engine version bundled with it.
type Release struct {
	Version string `json:"version"`
	Chrome  string `json:"chrome"`
}

// DownloadConfig describes a single artifact-fetch request. It is built
// fresh per provisioning attempt from the target version and the
// provisioner's configuration.
type DownloadConfig struct {
	Version      string
	ArtifactName string
	Force        bool
	CacheRoot    string
	Platform     platform.Platform
	Arch         platform.Arch
}
