package main

import (
	"fmt"
	"runtime"

	"github.com/shellbridge/shellbridge/internal/locator"
	"github.com/shellbridge/shellbridge/internal/platform"
)

// runLocate handles the `shellbridge locate` subcommand
func runLocate(args []string) error {
	showHelp := false
	configPath := defaultConfigFile
	configExplicit := false
	appName := ""
	distPath := ""
	overridePlatform := ""
	overrideArch := ""

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
		case "--app":
			i++
			if i >= len(args) {
				return fmt.Errorf("--app requires a name")
			}
			appName = args[i]
		case "--dist":
			i++
			if i >= len(args) {
				return fmt.Errorf("--dist requires a path")
			}
			distPath = args[i]
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
		default:
			return fmt.Errorf("unknown option: %s\nRun 'shellbridge locate --help' for usage", arg)
		}
	}

	if showHelp {
		printLocateHelp()
		return nil
	}

	file, err := loadConfigFile(configPath, configExplicit)
	if err != nil {
		return err
	}

	if appName == "" {
		appName = file.AppName
	}
	if distPath == "" {
		distPath = file.DistPath
	}
	if appName == "" {
		return fmt.Errorf("no application name; pass --app or set app_name in the config file")
	}
	if distPath == "" {
		return fmt.Errorf("no dist path; pass --dist or set dist_path in the config file")
	}

	if overridePlatform == "" {
		overridePlatform = file.Platform
	}
	if overrideArch == "" {
		overrideArch = file.Arch
	}

	var p platform.Platform
	if overridePlatform != "" {
		p, err = platform.ParsePlatform(overridePlatform)
	} else {
		p, err = platform.FromGOOS(runtime.GOOS)
	}
	if err != nil {
		return err
	}

	var a platform.Arch
	if overrideArch != "" {
		a, err = platform.ParseArch(overrideArch)
	} else {
		a, err = platform.FromGOARCH(runtime.GOARCH)
	}
	if err != nil {
		return err
	}

	binaryPath, err := locator.AppBinaryPath(p, a, distPath, appName)
	if err != nil {
		return err
	}

	fmt.Println(binaryPath)
	return nil
}

func printLocateHelp() {
	fmt.Println("Usage: shellbridge locate [options]")
	fmt.Println()
	fmt.Println("Print the path to the packaged application executable.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -c, --config <path>   Config file (default: shellbridge.yaml)")
	fmt.Println("      --app <name>      Application product name")
	fmt.Println("      --dist <path>     Packaged build root directory")
	fmt.Println("      --platform <p>    Target platform (darwin, linux, win32)")
	fmt.Println("      --arch <a>        Target architecture (x64, arm64, ia32, armv7l)")
	fmt.Println("  -h, --help            Show this help")
}
