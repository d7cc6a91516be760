package platform

import (
	"context"
	"runtime"
	"testing"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		want    Platform
		wantErr bool
	}{
		{name: "darwin", goos: "darwin", want: Darwin},
		{name: "linux", goos: "linux", want: Linux},
		{name: "windows_maps_to_win32", goos: "windows", want: Win32},
		{name: "freebsd_unsupported", goos: "freebsd", wantErr: true},
		{name: "plan9_unsupported", goos: "plan9", wantErr: true},
		{name: "empty_unsupported", goos: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGOOS(tt.goos)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromGOOS(%q) expected error, got %q", tt.goos, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromGOOS(%q) unexpected error: %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("FromGOOS(%q) = %q, want %q", tt.goos, got, tt.want)
			}
		})
	}
}

func TestFromGOARCH(t *testing.T) {
	tests := []struct {
		name    string
		goarch  string
		want    Arch
		wantErr bool
	}{
		{name: "amd64_maps_to_x64", goarch: "amd64", want: X64},
		{name: "arm64", goarch: "arm64", want: ARM64},
		{name: "386_maps_to_ia32", goarch: "386", want: IA32},
		{name: "arm_maps_to_armv7l", goarch: "arm", want: ARMv7l},
		{name: "riscv64_unsupported", goarch: "riscv64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGOARCH(tt.goarch)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromGOARCH(%q) expected error, got %q", tt.goarch, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromGOARCH(%q) unexpected error: %v", tt.goarch, err)
			}
			if got != tt.want {
				t.Errorf("FromGOARCH(%q) = %q, want %q", tt.goarch, got, tt.want)
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Platform
		wantErr bool
	}{
		{name: "exact", input: "darwin", want: Darwin},
		{name: "mixed_case", input: "Win32", want: Win32},
		{name: "whitespace", input: " linux ", want: Linux},
		{name: "goos_windows_rejected", input: "windows", wantErr: true},
		{name: "garbage", input: "beos", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlatform(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlatform(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArch(t *testing.T) {
	for _, valid := range []string{"x64", "arm64", "ia32", "armv7l", "X64"} {
		if _, err := ParseArch(valid); err != nil {
			t.Errorf("ParseArch(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"amd64", "mips", ""} {
		if got, err := ParseArch(invalid); err == nil {
			t.Errorf("ParseArch(%q) expected error, got %q", invalid, got)
		}
	}
}

func TestPlatformSupported(t *testing.T) {
	for _, p := range []Platform{Darwin, Linux, Win32} {
		if !p.Supported() {
			t.Errorf("%s should be supported", p)
		}
	}
	if Platform("android").Supported() {
		t.Error("android should not be supported")
	}
}

func TestDetect(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", info.OS, runtime.GOOS)
	}
	if info.ArchRaw != runtime.GOARCH {
		t.Errorf("ArchRaw = %q, want %q", info.ArchRaw, runtime.GOARCH)
	}
	if !info.Platform.Supported() {
		t.Errorf("detected platform %q not in supported set", info.Platform)
	}
}
