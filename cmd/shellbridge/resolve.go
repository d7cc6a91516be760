package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shellbridge/shellbridge/internal/driver"
)

// runResolve handles the `shellbridge resolve` subcommand
func runResolve(args []string) error {
	showHelp := false
	verbose := false
	feedURL := driver.DefaultFeedURL

	var version string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			showHelp = true
		case "--verbose", "-v":
			verbose = true
		case "--feed":
			i++
			if i >= len(args) {
				return fmt.Errorf("--feed requires a URL")
			}
			feedURL = args[i]
		default:
			if len(arg) > 0 && arg[0] != '-' && version == "" {
				version = arg
			} else {
				return fmt.Errorf("unknown option: %s\nRun 'shellbridge resolve --help' for usage", arg)
			}
		}
	}

	if showHelp {
		printResolveHelp()
		return nil
	}

	if version == "" {
		return fmt.Errorf("no runtime version specified; run 'shellbridge resolve --help' for usage")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resolver := driver.NewResolver(feedURL, &stderrLogger{verbose: verbose})
	chromeVersion, err := resolver.ChromeVersion(ctx, version)
	if err != nil {
		return err
	}

	fmt.Println(chromeVersion)
	return nil
}

func printResolveHelp() {
	fmt.Println("Usage: shellbridge resolve [options] <runtime-version>")
	fmt.Println()
	fmt.Println("Print the engine version compatible with the given runtime version.")
	fmt.Println("The remote feed is consulted first; a bundled table covers feed outages.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("      --feed <url>   Version feed endpoint")
	fmt.Println("  -v, --verbose      Enable debug output")
	fmt.Println("  -h, --help         Show this help")
}
