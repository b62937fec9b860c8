package main

import (
	"os"

	"github.com/zenmoney/zenmoney-cli/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
