package main

import (
	"os"

	"github.com/rentwheels-dev/rentwheels/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
