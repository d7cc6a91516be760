// Package shellbridge bridges a browser-automation test runner with a
// packaged desktop-shell application, letting end-to-end tests drive the
// application as though it were a browser target.
//
// The service resolves the application's platform-specific binary path,
// assembles browser-engine launch options, and provisions the
// version-matched driver binary (downloading it when absent). Capability
// records in the runner's configuration are classified and decorated in
// place so each desktop-shell target picks up the right binary and driver
// version.
package shellbridge

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shellbridge/shellbridge/internal/driver"
	"github.com/shellbridge/shellbridge/internal/locator"
	"github.com/shellbridge/shellbridge/internal/logging"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// Logger is the logging capability callers may inject. The default is a
// no-op logger.
type Logger = logging.Logger

// DriverConfig configures driver provisioning. See driver.Config for the
// field documentation; the zero value uses host defaults.
type DriverConfig = driver.Config

// Platform identifies an operating system in the artifact host's naming
// ("darwin", "linux", "win32").
type Platform = platform.Platform

// Arch identifies a CPU architecture in the artifact host's naming
// ("x64", "arm64", "ia32", "armv7l").
type Arch = platform.Arch

// UnsupportedPlatformError reports a platform outside the supported set.
type UnsupportedPlatformError = locator.UnsupportedPlatformError

// DriverConfigFromEnv builds a DriverConfig from the documented
// environment overrides.
func DriverConfigFromEnv() DriverConfig {
	return driver.FromEnv()
}

// Options configures a Service.
type Options struct {
	// AppName is the product name the application was packaged with.
	AppName string

	// DistPath is the root of the unpacked/packaged application build.
	DistPath string

	// AppArgs are extra command-line arguments passed to the application
	// when the runner launches it.
	AppArgs []string

	// Platform and Arch override the ambient host values. Both default to
	// the running host.
	Platform Platform
	Arch     Arch

	// Driver configures driver provisioning.
	Driver DriverConfig

	// Logger receives the service's log output. Defaults to a no-op.
	Logger Logger
}

// Service is the plugin facade: binary location, launch-option assembly,
// and driver provisioning for one application under test.
type Service struct {
	appName  string
	distPath string
	appArgs  []string
	platform Platform
	arch     Arch

	provisioner *driver.Provisioner
	logger      Logger
}

// New creates a Service for the given application.
func New(opts Options) (*Service, error) {
	if opts.AppName == "" {
		return nil, fmt.Errorf("AppName is required")
	}
	if opts.DistPath == "" {
		return nil, fmt.Errorf("DistPath is required")
	}

	logger := logging.OrNop(opts.Logger)

	if opts.Platform == "" {
		p, err := platform.FromGOOS(runtime.GOOS)
		if err != nil {
			return nil, fmt.Errorf("detect platform: %w", err)
		}
		opts.Platform = p
	}
	if opts.Arch == "" {
		a, err := platform.FromGOARCH(runtime.GOARCH)
		if err != nil {
			return nil, fmt.Errorf("detect arch: %w", err)
		}
		opts.Arch = a
	}

	// The provisioner fetches artifacts for the same target the locator
	// computes paths for, unless explicitly overridden.
	if opts.Driver.Platform == "" {
		opts.Driver.Platform = opts.Platform
	}
	if opts.Driver.Arch == "" {
		opts.Driver.Arch = opts.Arch
	}

	provisioner, err := driver.NewProvisioner(opts.Driver, logger)
	if err != nil {
		return nil, fmt.Errorf("create provisioner: %w", err)
	}

	return &Service{
		appName:     opts.AppName,
		distPath:    opts.DistPath,
		appArgs:     opts.AppArgs,
		platform:    opts.Platform,
		arch:        opts.Arch,
		provisioner: provisioner,
		logger:      logger,
	}, nil
}

// BinaryPath computes the path to the packaged application executable.
func (s *Service) BinaryPath() (string, error) {
	return locator.AppBinaryPath(s.platform, s.arch, s.distPath, s.appName)
}

// ChromeOptions assembles the browser-engine launch options for the
// application: the binary to launch and its arguments.
func (s *Service) ChromeOptions() (map[string]interface{}, error) {
	binaryPath, err := s.BinaryPath()
	if err != nil {
		return nil, err
	}

	args := make([]string, len(s.appArgs))
	copy(args, s.appArgs)

	return map[string]interface{}{
		"binary": binaryPath,
		"args":   args,
	}, nil
}

// ProvisionDriver downloads, verifies, and installs the driver binary
// matching the given runtime version.
func (s *Service) ProvisionDriver(ctx context.Context, runtimeVersion string) error {
	return s.provisioner.Provision(ctx, runtimeVersion)
}

// DriverPath returns the fixed location the driver binary is installed to.
func (s *Service) DriverPath() string {
	return s.provisioner.DriverPath()
}

// ResolveChromeVersion maps a runtime version to its engine-compatible
// version using the remote feed, falling back to the bundled table.
func (s *Service) ResolveChromeVersion(ctx context.Context, runtimeVersion string) (string, error) {
	return s.provisioner.ResolveChromeVersion(ctx, runtimeVersion)
}

// DecorateCapabilities rewrites every desktop-shell capability entry in
// caps so the runner launches the packaged application: browserName is
// switched to the engine's name, browserVersion is set to the
// engine-compatible version when one is known, and the launch options are
// injected under the vendor-prefixed options key. Existing args in an
// entry's options are preserved ahead of the service's AppArgs.
func (s *Service) DecorateCapabilities(ctx context.Context, caps map[string]interface{}, runtimeVersion string) error {
	binaryPath, err := s.BinaryPath()
	if err != nil {
		return err
	}

	chromeVersion, err := s.ResolveChromeVersion(ctx, runtimeVersion)
	if err != nil {
		// Decoration still proceeds; the runner may match any driver version.
		s.logger.Warn("no engine version mapping for runtime version",
			"version", runtimeVersion)
		chromeVersion = ""
	}

	ForEachShellEntry(caps, func(entry map[string]interface{}) {
		entry["browserName"] = "chrome"
		if chromeVersion != "" {
			entry["browserVersion"] = chromeVersion
		}

		options, _ := entry[ChromeOptionsKey].(map[string]interface{})
		if options == nil {
			options = make(map[string]interface{})
		}

		options["binary"] = binaryPath

		// Hand-built capability objects carry []string args; anything that
		// went through a JSON or YAML decoder carries []interface{}.
		var args []string
		switch existing := options["args"].(type) {
		case []string:
			args = append(args, existing...)
		case []interface{}:
			for _, raw := range existing {
				if s, ok := raw.(string); ok {
					args = append(args, s)
				}
			}
		}
		args = append(args, s.appArgs...)
		options["args"] = args

		entry[ChromeOptionsKey] = options
	})

	return nil
}
