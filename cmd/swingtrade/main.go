package main

import (
	"os"

	"github.com/rustyeddy/swingtrade/cmd/swingtrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
