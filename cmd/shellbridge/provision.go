package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shellbridge/shellbridge/internal/driver"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// runProvision handles the `shellbridge provision` subcommand
func runProvision(args []string) error {
	showHelp := false
	verbose := false
	force := false
	skipVerify := false
	extractAll := false
	configPath := defaultConfigFile
	configExplicit := false
	overridePlatform := ""
	overrideArch := ""
	cacheRoot := ""

	var version string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--verbose", "-v":
			verbose = true
		case "--force", "-f":
			force = true
		case "--skip-verify":
			skipVerify = true
		case "--full":
			extractAll = true
		case "--config", "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("--config requires a path")
			}
			configPath = args[i]
			configExplicit = true
		case "--platform":
			i++
			if i >= len(args) {
				return fmt.Errorf("--platform requires a value")
			}
			overridePlatform = args[i]
		case "--arch":
			i++
			if i >= len(args) {
				return fmt.Errorf("--arch requires a value")
			}
			overrideArch = args[i]
		case "--cache":
			i++
			if i >= len(args) {
				return fmt.Errorf("--cache requires a path")
			}
			cacheRoot = args[i]
		default:
			if len(arg) > 0 && arg[0] != '-' && version == "" {
				version = arg
			} else {
				return fmt.Errorf("unknown option: %s\nRun 'shellbridge provision --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printProvisionHelp()
		return nil
	}

	if version == "" {
		return fmt.Errorf("no runtime version specified; run 'shellbridge provision --help' for usage")
	}

	file, err := loadConfigFile(configPath, configExplicit)
	if err != nil {
		return err
	}

	cfg := file.driverConfig()
	if force {
		cfg.ForceDownload = true
	}
	if skipVerify {
		cfg.SkipVerify = true
	}
	if extractAll {
		cfg.ExtractAll = true
	}
	if overridePlatform != "" {
		p, err := platform.ParsePlatform(overridePlatform)
		if err != nil {
			return err
		}
		cfg.Platform = p
	}
	if overrideArch != "" {
		a, err := platform.ParseArch(overrideArch)
		if err != nil {
			return err
		}
		cfg.Arch = a
	}
	if cacheRoot != "" {
		cfg.CacheRoot = cacheRoot
	}

	provisioner, err := driver.NewProvisioner(cfg, &stderrLogger{verbose: verbose})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := provisioner.Provision(ctx, version); err != nil {
		return err
	}

	fmt.Println(provisioner.DriverPath())
	return nil
}

func printProvisionHelp() {
	fmt.Println("Usage: shellbridge provision [options] <runtime-version>")
	fmt.Println()
	fmt.Println("Download, verify, and install the driver binary matching the given")
	fmt.Println("runtime version. Prints the installed driver path on success.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -c, --config <path>   Config file (default: shellbridge.yaml)")
	fmt.Println("  -f, --force           Re-download even when the archive is cached")
	fmt.Println("      --skip-verify     Skip checksum verification")
	fmt.Println("      --full            Extract the full archive, not just the driver binary")
	fmt.Println("      --platform <p>    Target platform (darwin, linux, win32)")
	fmt.Println("      --arch <a>        Target architecture (x64, arm64, ia32, armv7l)")
	fmt.Println("      --cache <path>    Cache directory root")
	fmt.Println("  -v, --verbose         Enable debug output")
	fmt.Println("  -h, --help            Show this help")
}
