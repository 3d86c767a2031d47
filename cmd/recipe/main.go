// Package main is the entry point for the recipe command-line client.
package main

import (
	"github.com/phrazzld/recipe-ai/internal/cli"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	cli.Execute(cli.Options{Version: Version})
}
