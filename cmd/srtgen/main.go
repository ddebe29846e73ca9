package main

import (
	"os"

	"github.com/yhzhou/srtgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
