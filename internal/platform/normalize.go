package platform

import (
	"fmt"
	"strings"
)

// FromGOOS maps a Go GOOS value to the artifact host's platform name.
// Any OS outside the supported set is a hard error.
func FromGOOS(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return Darwin, nil
	case "linux":
		return Linux, nil
	case "windows":
		return Win32, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// FromGOARCH maps a Go GOARCH value to the artifact host's architecture name.
func FromGOARCH(goarch string) (Arch, error) {
	switch goarch {
	case "amd64":
		return X64, nil
	case "arm64":
		return ARM64, nil
	case "386":
		return IA32, nil
	case "arm":
		return ARMv7l, nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

// ParsePlatform validates a user-supplied platform override.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(normalize(s))
	if !p.Supported() {
		return "", fmt.Errorf("unsupported platform: %s", s)
	}
	return p, nil
}

// ParseArch validates a user-supplied architecture override.
func ParseArch(s string) (Arch, error) {
	switch a := Arch(normalize(s)); a {
	case X64, ARM64, IA32, ARMv7l:
		return a, nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", s)
	}
}

// normalize lowercases and trims a platform or architecture string.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
