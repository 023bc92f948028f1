package main

import (
	"os"

	"github.com/tilldesk/tilldesk/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
