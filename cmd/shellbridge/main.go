package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("shellbridge %s\n", Version)
			return
		case "provision":
			if err := runProvision(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "resolve":
			if err := runResolve(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "locate":
			if err := runLocate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "doctor":
			if err := runDoctor(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("shellbridge - driver provisioning for packaged desktop-shell apps")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shellbridge --version              Show version information")
	fmt.Println("  shellbridge provision <version>    Download and install the matching driver")
	fmt.Println("  shellbridge resolve <version>      Print the engine version for a runtime version")
	fmt.Println("  shellbridge locate [options]       Print the packaged application binary path")
	fmt.Println("  shellbridge doctor                 Report host platform and cache state")
}
