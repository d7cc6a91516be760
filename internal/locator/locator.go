// Package locator computes the path to the platform-specific executable
// inside a packaged desktop application build.
//
// The layouts mirror what the application packager produces: a nested .app
// bundle on macOS (with a separate folder for arm64 builds), and flat
// unpacked directories on Linux and Windows. Path computation is a pure
// function of its inputs; the package performs no I/O and never checks
// that the computed path exists.
package locator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shellbridge/shellbridge/internal/platform"
)

// helperSuffix is the packaging convention for helper-process binaries on
// macOS: the outer bundle name keeps the suffix, the inner binary drops it.
const helperSuffix = " Helper"

// UnsupportedPlatformError reports a platform outside the supported set.
type UnsupportedPlatformError struct {
	Platform platform.Platform
}

// Error implements the error interface.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// AppBinaryPath computes the absolute path to the application executable
// inside a packaged build rooted at distPath.
//
// Layouts by platform:
//   - darwin: <dist>/mac/<app>.app/Contents/MacOS/<exec> (arm64 builds live
//     under mac-arm64 instead of mac; a trailing " Helper" is stripped from
//     the inner executable name but kept on the bundle)
//   - linux:  <dist>/linux-unpacked/<app>
//   - win32:  <dist>/win-unpacked/<app>.exe
//
// Any other platform fails with *UnsupportedPlatformError.
func AppBinaryPath(p platform.Platform, a platform.Arch, distPath, appName string) (string, error) {
	switch p {
	case platform.Darwin:
		folder := "mac"
		if a == platform.ARM64 {
			folder = "mac-arm64"
		}
		execName := strings.TrimSuffix(appName, helperSuffix)
		return filepath.Join(distPath, folder, appName+".app", "Contents", "MacOS", execName), nil

	case platform.Linux:
		return filepath.Join(distPath, "linux-unpacked", appName), nil

	case platform.Win32:
		return filepath.Join(distPath, "win-unpacked", appName+".exe"), nil

	default:
		return "", &UnsupportedPlatformError{Platform: p}
	}
}
