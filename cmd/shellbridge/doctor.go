package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shellbridge/shellbridge/internal/driver"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// runDoctor handles the `shellbridge doctor` subcommand
func runDoctor(args []string) error {
	showHelp := false
	configPath := defaultConfigFile
	configExplicit := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--config", "-c":
			i++
			if i >= len(args) {
				return fmt.Errorf("--config requires a path")
			}
			configPath = args[i]
			configExplicit = true
		default:
			return fmt.Errorf("unknown option: %s\nRun 'shellbridge doctor --help' for usage", arg)
		}
	}

	if showHelp {
		printDoctorHelp()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("Host")
	fmt.Println("────")
	info, err := platform.NewDetector().Detect(ctx)
	if err != nil {
		return fmt.Errorf("detect host platform: %w", err)
	}
	fmt.Printf("  platform:  %s (%s)\n", info.Platform, info.OS)
	fmt.Printf("  arch:      %s (%s)\n", info.Arch, info.ArchRaw)
	if info.Distro != "" {
		fmt.Printf("  distro:    %s %s\n", info.Distro, info.Version)
	}

	file, err := loadConfigFile(configPath, configExplicit)
	if err != nil {
		return err
	}

	provisioner, err := driver.NewProvisioner(file.driverConfig(), nil)
	if err != nil {
		return fmt.Errorf("resolve driver configuration: %w", err)
	}
	cfg := provisioner.Config()

	fmt.Println()
	fmt.Println("Driver")
	fmt.Println("──────")
	fmt.Printf("  cache:     %s\n", cfg.CacheRoot)
	fmt.Printf("  install:   %s\n", cfg.InstallDir)
	fmt.Printf("  target:    %s-%s\n", cfg.Platform, cfg.Arch)

	driverPath := provisioner.DriverPath()
	if stat, err := os.Stat(driverPath); err == nil {
		fmt.Printf("  binary:    %s (installed, %d bytes)\n", driverPath, stat.Size())
	} else {
		fmt.Printf("  binary:    %s (not installed)\n", driverPath)
	}

	fmt.Println()
	fmt.Println("Feed")
	fmt.Println("────")
	resolver := driver.NewResolver(cfg.FeedURL, nil)
	versions := resolver.VersionMap(ctx)
	fmt.Printf("  endpoint:  %s\n", cfg.FeedURL)
	fmt.Printf("  mappings:  %d runtime versions known\n", len(versions))

	return nil
}

func printDoctorHelp() {
	fmt.Println("Usage: shellbridge doctor [options]")
	fmt.Println()
	fmt.Println("Report the detected host platform, driver cache state, and version")
	fmt.Println("feed reachability.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -c, --config <path>   Config file (default: shellbridge.yaml)")
	fmt.Println("  -h, --help            Show this help")
}
