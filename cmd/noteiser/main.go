// Package main provides the noteiser CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/noteiser/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
