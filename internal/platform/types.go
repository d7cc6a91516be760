// Package platform models the operating systems and architectures the
// desktop-shell artifact host publishes builds for, and detects which of
// them the current host is.
//
// Platform and architecture names follow the artifact host's conventions
// ("darwin", "linux", "win32" / "x64", "arm64", "ia32", "armv7l") rather
// than Go's GOOS/GOARCH values; FromGOOS and FromGOARCH translate between
// the two. Components that need platform information take it as an explicit
// parameter so they stay pure and testable; Detect exists for callers that
// want the ambient host values.
package platform

import "context"

// Platform identifies an operating system in the artifact host's naming.
type Platform string

// Supported platforms. Anything else is a hard error, never a default.
const (
	Darwin Platform = "darwin"
	Linux  Platform = "linux"
	Win32  Platform = "win32"
)

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// Supported reports whether the platform is one of the three supported targets.
func (p Platform) Supported() bool {
	switch p {
	case Darwin, Linux, Win32:
		return true
	default:
		return false
	}
}

// Arch identifies a CPU architecture in the artifact host's naming.
type Arch string

// Supported architectures.
const (
	X64    Arch = "x64"
	ARM64  Arch = "arm64"
	IA32   Arch = "ia32"
	ARMv7l Arch = "armv7l"
)

// String returns the string representation of the architecture.
func (a Arch) String() string {
	return string(a)
}

// Info contains host platform detection information.
type Info struct {
	Platform Platform // "darwin", "linux", "win32"
	Arch     Arch     // "x64", "arm64", ...
	OS       string   // raw GOOS ("darwin", "linux", "windows")
	ArchRaw  string   // raw GOARCH ("amd64", "arm64", ...)
	Distro   string   // distro ID (Linux only, e.g. "ubuntu")
	Version  string   // distro version (Linux only, e.g. "22.04")
}

// Detector is the interface for host platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
