// Package driver provisions the browser-driver binary that matches a given
// desktop-shell runtime version.
//
// # Provisioning Pipeline
//
// One call to Provisioner.Provision walks the full pipeline:
//
//  1. Resolve: map the runtime version to its engine-compatible (Chrome)
//     version using the remote headers feed, falling back silently to a
//     bundled static table when the feed is unreachable.
//  2. Download: fetch the version-matched driver archive from the artifact
//     host into the local cache, with retries and atomic writes.
//  3. Verify: check the archive against the release's SHA256 manifest, and
//     optionally against a detached GPG signature for mirrored hosts.
//  4. Extract: pull the driver binary out of the zip archive into the
//     install directory and set execute permissions on non-Windows hosts.
//
// # Fallback
//
// When an exact patch version fails to download or extract, the pipeline
// retries exactly once against the MAJOR.MINOR.0 baseline of that version.
// If the baseline attempt also fails (or the target already was the
// baseline), the underlying error is returned to the caller unchanged so
// the true root cause is visible.
//
// # Components
//
//   - Provisioner: high-level orchestration and the fallback loop
//   - Resolver: version feed fetch, sort, and mapping
//   - Downloader: HTTP download with retry logic and caching
//   - Verifier: SHA256 manifest and optional GPG verification
//   - Extractor: zip archive extraction
package driver
