package main

import (
	"os"

	"github.com/renproject/checkdigit/cmd/bchctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
