package main

import (
	"os"

	"github.com/rustyeddy/derivpricer/cmd/derivpricer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
