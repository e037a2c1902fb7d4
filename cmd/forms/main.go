// Package main provides the CLI tool for the forms layout engine.
//
// Usage:
//
//	forms resolve <file.toml>   Resolve a layout and print node bounds
//	forms check <file.toml>     Validate a layout file
//	forms help                  Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `forms - layout resolver for declarative node trees

Usage:
  forms <command> [options] <file.toml>

Commands:
  resolve     Resolve a layout file and print every node's bounds
  check       Validate a layout file without printing geometry
  version     Print version information
  help        Show this help message

Options:
  -w <width>    Override the root width before resolving
  -h <height>   Override the root height before resolving

Examples:
  forms resolve form.toml           Resolve with the declared root size
  forms resolve -w 800 -h 600 form.toml
  forms check form.toml             Report configuration errors only
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "resolve":
		if err := runResolve(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("forms version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
