package locator

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shellbridge/shellbridge/internal/platform"
)

func TestAppBinaryPath(t *testing.T) {
	dist := filepath.Join("home", "project", "dist")

	tests := []struct {
		name     string
		platform platform.Platform
		arch     platform.Arch
		appName  string
		want     string
	}{
		{
			name:     "darwin_x64",
			platform: platform.Darwin,
			arch:     platform.X64,
			appName:  "My App",
			want:     filepath.Join(dist, "mac", "My App.app", "Contents", "MacOS", "My App"),
		},
		{
			name:     "darwin_arm64_uses_arm_folder",
			platform: platform.Darwin,
			arch:     platform.ARM64,
			appName:  "My App",
			want:     filepath.Join(dist, "mac-arm64", "My App.app", "Contents", "MacOS", "My App"),
		},
		{
			name:     "darwin_ia32_uses_generic_folder",
			platform: platform.Darwin,
			arch:     platform.IA32,
			appName:  "My App",
			want:     filepath.Join(dist, "mac", "My App.app", "Contents", "MacOS", "My App"),
		},
		{
			name:     "darwin_helper_suffix_stripped_from_executable_only",
			platform: platform.Darwin,
			arch:     platform.X64,
			appName:  "My App Helper",
			want:     filepath.Join(dist, "mac", "My App Helper.app", "Contents", "MacOS", "My App"),
		},
		{
			name:     "linux",
			platform: platform.Linux,
			arch:     platform.X64,
			appName:  "my-app",
			want:     filepath.Join(dist, "linux-unpacked", "my-app"),
		},
		{
			name:     "win32",
			platform: platform.Win32,
			arch:     platform.X64,
			appName:  "My App",
			want:     filepath.Join(dist, "win-unpacked", "My App.exe"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppBinaryPath(tt.platform, tt.arch, dist, tt.appName)
			if err != nil {
				t.Fatalf("AppBinaryPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("path mismatch:\ngot:  %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestAppBinaryPathUnsupportedPlatform(t *testing.T) {
	for _, p := range []platform.Platform{"freebsd", "sunos", "aix", ""} {
		t.Run("platform_"+string(p), func(t *testing.T) {
			got, err := AppBinaryPath(p, platform.X64, "dist", "app")
			if err == nil {
				t.Fatalf("expected error for platform %q, got path %q", p, got)
			}
			if got != "" {
				t.Errorf("expected empty path on error, got %q", got)
			}

			var unsupported *UnsupportedPlatformError
			if !errors.As(err, &unsupported) {
				t.Fatalf("expected *UnsupportedPlatformError, got %T: %v", err, err)
			}
			if unsupported.Platform != p {
				t.Errorf("error carries platform %q, want %q", unsupported.Platform, p)
			}
		})
	}
}

func TestAppBinaryPathHelperSuffixOnlyAtEnd(t *testing.T) {
	// " Helper" in the middle of a name is not the packaging convention and
	// must survive untouched.
	got, err := AppBinaryPath(platform.Darwin, platform.X64, "dist", "My Helper App")
	if err != nil {
		t.Fatalf("AppBinaryPath failed: %v", err)
	}

	want := filepath.Join("dist", "mac", "My Helper App.app", "Contents", "MacOS", "My Helper App")
	if got != want {
		t.Errorf("path mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}
