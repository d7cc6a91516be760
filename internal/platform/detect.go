package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual host detection.
type RealDetector struct{}

// NewDetector creates a new host platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs host detection and returns platform information.
// It maps runtime.GOOS and runtime.GOARCH to the artifact host's naming,
// and uses gopsutil for Linux distribution details.
//
// Distro detection is diagnostic only: if gopsutil fails, the distro
// fields stay empty and detection still succeeds. An unsupported OS or
// architecture is a hard failure.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		ArchRaw: runtime.GOARCH,
	}

	p, err := FromGOOS(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.Platform = p

	a, err := FromGOARCH(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.Arch = a

	// Distro details are only meaningful on Linux
	if runtime.GOOS == "linux" {
		distro, _, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Cancellation is a hard failure; detection failures are not
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			return info, nil
		}

		info.Distro = normalize(distro)
		info.Version = normalize(version)
	}

	return info, nil
}
