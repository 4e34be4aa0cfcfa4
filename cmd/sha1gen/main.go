package main

import (
	"os"

	"github.com/sha1gen/sha1gen/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
