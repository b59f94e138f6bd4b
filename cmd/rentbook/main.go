package main

import (
	"os"

	"github.com/cleared-dev/rentbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
